package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/ui/theme"
)

// MultiChoice is a numbered option picker. Options can be chosen with the
// arrows or the number keys 1-9. After Reveal the correct option is shown
// in green and a wrong choice in red.
type MultiChoice struct {
	Options  []string
	Selected int // -1 until the learner picks something
	Cursor   int
	Revealed bool
	Correct  int // index of the correct option, used after Reveal
}

// NewMultiChoice creates a picker over options with nothing selected.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:  options,
		Selected: -1,
		Correct:  -1,
	}
}

// Update handles navigation and selection keys. Enter is left to the
// caller.
func (m MultiChoice) Update(msg tea.Msg) MultiChoice {
	if m.Revealed {
		return m
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		m.Selected = m.Cursor
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		m.Selected = m.Cursor
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Cursor = i
				m.Selected = i
			}
		}
	}
	return m
}

// Choice returns the selected option text.
func (m MultiChoice) Choice() (string, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Selected], true
}

// Reveal freezes the picker and marks correct as the right option.
func (m *MultiChoice) Reveal(correct string) {
	m.Revealed = true
	m.Correct = -1
	for i, opt := range m.Options {
		if opt == correct {
			m.Correct = i
			break
		}
	}
}

// View renders the options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.Correct:
			style = style.Foreground(theme.Success).Bold(true)
		case m.Revealed && i == m.Selected:
			style = style.Foreground(theme.Error).Bold(true)
		case m.Revealed:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
