// Package style holds the palette, icons and text styles shared by the CLI
// renderers and the pretty log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Saffron = lipgloss.Color("#F59E0B")
	Slate   = lipgloss.Color("#667085")
	Indigo  = lipgloss.Color("#6366F1")
	Green   = lipgloss.Color("#22A06B")
	Red     = lipgloss.Color("#D93025")
	Yellow  = lipgloss.Color("#EAB308")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// Text styles.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Saffron)
	Label   = lipgloss.NewStyle().Foreground(Slate)
	Value   = lipgloss.NewStyle().Foreground(Indigo)
	Good    = lipgloss.NewStyle().Foreground(Green)
	Bad     = lipgloss.NewStyle().Foreground(Red)
	Caution = lipgloss.NewStyle().Foreground(Yellow)
)
