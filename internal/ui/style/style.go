// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Text styles for status listings.
var (
	Fresh  = lipgloss.NewStyle().Foreground(Green)
	Stale  = lipgloss.NewStyle().Foreground(Yellow)
	Failed = lipgloss.NewStyle().Foreground(Red)
	Accent = lipgloss.NewStyle().Foreground(Iris)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
	Bold   = lipgloss.NewStyle().Bold(true)
)
