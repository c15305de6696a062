// Package metrics exports cache activity as Prometheus metrics.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "jyotish"

// CacheMetrics implements ports.CacheObserver with Prometheus collectors.
type CacheMetrics struct {
	gatherer  prometheus.Gatherer
	hits      *prometheus.CounterVec
	misses    prometheus.Counter
	evictions *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

var _ ports.CacheObserver = (*CacheMetrics)(nil)

// NewCacheMetrics registers the cache collectors on a fresh registry.
func NewCacheMetrics() (*CacheMetrics, error) {
	return NewCacheMetricsWith(prometheus.NewRegistry())
}

// NewCacheMetricsWith registers the cache collectors on reg.
func NewCacheMetricsWith(reg prometheus.Registerer) (*CacheMetrics, error) {
	m := &CacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache lookups served from a live entry.",
		}, []string{"category"}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache lookups that found no live entry.",
		}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Entries removed to respect a category capacity.",
		}, []string{"category"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Live entries per category.",
		}, []string{"category"}),
	}

	for _, c := range []prometheus.Collector{m.hits, m.misses, m.evictions, m.entries} {
		if err := reg.Register(c); err != nil {
			return nil, zerr.Wrap(err, "register cache metrics")
		}
	}
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m, nil
}

// Hit counts a cache hit.
func (m *CacheMetrics) Hit(category domain.CacheCategory) {
	m.hits.WithLabelValues(string(category)).Inc()
}

// Miss counts a cache miss.
func (m *CacheMetrics) Miss() {
	m.misses.Inc()
}

// Evicted counts a capacity eviction.
func (m *CacheMetrics) Evicted(category domain.CacheCategory) {
	m.evictions.WithLabelValues(string(category)).Inc()
}

// Resized records the current size of a category.
func (m *CacheMetrics) Resized(category domain.CacheCategory, size int) {
	m.entries.WithLabelValues(string(category)).Set(float64(size))
}

// WriteText writes all gathered metrics in the Prometheus text format.
func (m *CacheMetrics) WriteText(w io.Writer) error {
	if m.gatherer == nil {
		return nil
	}

	families, err := m.gatherer.Gather()
	if err != nil {
		return zerr.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.Wrap(err, "write metrics")
		}
	}
	return nil
}
