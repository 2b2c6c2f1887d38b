// Package theme holds the palette and shared lipgloss styles. Dark navy
// background, indigo for focus, teal for progress and amber for streaks.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary      = lipgloss.Color("#6366F1")
	Secondary    = lipgloss.Color("#14B8A6")
	Accent       = lipgloss.Color("#F59E0B")
	Success      = lipgloss.Color("#22C55E")
	Error        = lipgloss.Color("#F43F5E")
	Text         = lipgloss.Color("#F8FAFC")
	TextDim      = lipgloss.Color("#94A3B8")
	BgDark       = lipgloss.Color("#0F172A")
	BgCard       = lipgloss.Color("#1E293B")
	Border       = lipgloss.Color("#334155")
	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Disabled   = lipgloss.NewStyle().Foreground(TextDim)
	Done       = lipgloss.NewStyle().Foreground(Success)

	Correct   = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Score colors a quiz score: green when the set was passed, amber when it
// needs another try.
func Score(passed bool) lipgloss.Style {
	if passed {
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(Accent).Bold(true)
}
