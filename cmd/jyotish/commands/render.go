package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/jyotish/internal/core/domain"
	"go.trai.ch/jyotish/internal/ui/output"
	"go.trai.ch/jyotish/internal/ui/style"
	"go.trai.ch/zerr"
)

// renderer writes human readable results. Styling is dropped on colourless profiles.
type renderer struct {
	w     io.Writer
	color bool
}

func newRenderer(w io.Writer) *renderer {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)
	return &renderer{w: w, color: out.Profile != termenv.Ascii}
}

func (r *renderer) paint(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *renderer) heading(format string, args ...any) {
	_, _ = fmt.Fprintln(r.w, r.paint(style.Heading, fmt.Sprintf(format, args...)))
}

func (r *renderer) field(label, value string) {
	_, _ = fmt.Fprintf(r.w, "  %s %s\n", r.paint(style.Label, fmt.Sprintf("%-12s", label)), r.paint(style.Value, value))
}

func (r *renderer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *renderer) blank() {
	_, _ = fmt.Fprintln(r.w)
}

func (r *renderer) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	if r.color {
		t = t.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return style.Label.Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	} else {
		t = t.StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}
	_, _ = fmt.Fprintln(r.w, t.String())
}

func (r *renderer) warnings(issues []domain.ValidationIssue) {
	for _, w := range issues {
		r.line("%s %s", r.paint(style.Caution, style.Warning), w.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "encode json")
	}
	return nil
}

func formatDegrees(longitude float64) string {
	return fmt.Sprintf("%.4f°", longitude)
}

// formatDMS renders the position inside its sign as degrees, minutes and seconds.
func formatDMS(degrees float64) string {
	d := int(degrees)
	rest := (degrees - float64(d)) * 60
	m := int(rest)
	s := int((rest - float64(m)) * 60)
	return fmt.Sprintf("%2d°%02d′%02d″", d, m, s)
}

func rashiLabel(r domain.RashiData) string {
	return fmt.Sprintf("%s (%s)", r.Name, r.EnglishName)
}

func nakshatraLabel(n domain.NakshatraData, p domain.PadaData) string {
	return fmt.Sprintf("%s pada %d", n.Name, p.Number)
}

func dateLabel(p domain.DashaPeriod) string {
	return p.Start.Format(dateLayout) + " " + style.Arrow + " " + p.End.Format(dateLayout)
}

func levelLabel(l domain.CompatibilityLevel) string {
	var b strings.Builder
	for i, r := range string(l) {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
