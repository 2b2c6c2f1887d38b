package components

import (
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/ui/theme"
)

const (
	maxContentWidth = 60
	minContentWidth = 20
)

// ContentWidth is the inner width shared by every card on a screen, so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContentWidth), maxContentWidth)
}

// Frame centers content inside a double border filling width x height.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border).
	Align(lipgloss.Center).
	Padding(1, 2)

// Card is a rounded box cw cells wide, used for flashcard faces and the
// recommendation.
func Card(content string, cw int) string {
	return cardStyle.Width(cw - 2).Render(content)
}

var (
	buttonStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	buttonIdle     = buttonStyle.Foreground(theme.Text).BorderForeground(theme.Border)
	buttonSelected = buttonStyle.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
	buttonDisabled = buttonStyle.Foreground(theme.TextDim).BorderForeground(theme.BgCard)
)

// ButtonState picks how a Button is drawn.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// Button renders a fixed-width bordered label.
func Button(label string, state ButtonState, width int) string {
	switch state {
	case ButtonSelected:
		return buttonSelected.Width(width).Render("▸ " + label)
	case ButtonDisabled:
		return buttonDisabled.Width(width).Render(label)
	}
	return buttonIdle.Width(width).Render(label)
}
