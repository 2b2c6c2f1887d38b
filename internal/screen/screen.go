// Package screen defines what the router stacks: one Screen per page of the
// TUI, plus the shared dependencies they are built from.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/aidu/english/internal/ui/layout"
)

// Screen is one page. View draws only the area between header and footer;
// Title goes in the header.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Hints returns s's own hints, or fallback when it has none.
func Hints(s Screen, fallback []layout.KeyHint) []layout.KeyHint {
	if p, ok := s.(KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	return fallback
}
