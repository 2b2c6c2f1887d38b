package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/ui/theme"
)

// ProgressBar shows how far a learner is through a flashcard deck or quiz.
type ProgressBar struct {
	Done  int
	Total int
	Width int
	// ShowCount appends "done/total".
	ShowCount bool
}

// NewProgressBar returns a bar for done of total items.
func NewProgressBar(done, total, width int) ProgressBar {
	return ProgressBar{Done: done, Total: total, Width: width}
}

// Ratio is Done/Total clamped to [0, 1]. An empty bar is 0.
func (p ProgressBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

func (p ProgressBar) View() string {
	count := ""
	if p.ShowCount {
		count = fmt.Sprintf(" %d/%d", p.Done, p.Total)
	}
	cells := max(p.Width-lipgloss.Width(count), 4)
	filled := int(float64(cells)*p.Ratio() + 0.5)

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", cells-filled))
	if count != "" {
		bar += lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
	}
	return bar
}
