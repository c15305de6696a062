package app

import (
	"context"

	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/core/ports"
	"go.trai.ch/jyotish/internal/engine/koota"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CalculateCompatibility scores two profiles. The groom is the first argument
// since several kootas are directional.
func (a *App) CalculateCompatibility(ctx context.Context, groom, bride domain.MatchProfile) (*domain.CompatibilityResult, error) {
	result := a.validator.ValidateMatchProfile("groom", groom).
		Merge(a.validator.ValidateMatchProfile("bride", bride))
	if !result.IsValid() {
		return nil, &domain.ValidationError{Result: result}
	}

	key := CompatibilityKey(groom, bride)
	if res, ok := cached[*domain.CompatibilityResult](a, key); ok {
		return res, nil
	}

	_, span := a.tracer.Start(ctx, "compatibility.score", ports.WithAttribute("key", key))
	defer span.End()

	res := koota.Score(groom, bride)
	span.SetAttribute("total", res.Total)
	span.SetAttribute("level", string(res.Level))

	a.cache.Set(key, &res, a.cfg.TTL(domain.CategoryCompatibility), domain.CategoryCompatibility)
	return &res, nil
}

// MatchBirths computes both Moon-only profiles concurrently and scores them.
func (a *App) MatchBirths(ctx context.Context, groom, bride domain.BirthRequest) (*domain.MatchResult, error) {
	var g, b *domain.MinimalBirthData

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		g, err = a.GetMinimalBirthData(egCtx, groom)
		if err != nil {
			return zerr.Wrap(err, "groom profile")
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		b, err = a.GetMinimalBirthData(egCtx, bride)
		if err != nil {
			return zerr.Wrap(err, "bride profile")
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res, err := a.CalculateCompatibility(ctx, g.MatchProfile(), b.MatchProfile())
	if err != nil {
		return nil, err
	}
	return &domain.MatchResult{Groom: g, Bride: b, Result: res}, nil
}
