package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aidu/english/internal/ui/theme"
)

// MenuItem is one row. Note is dim text after the label ("준비중").
type MenuItem struct {
	Label    string
	Note     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list whose cursor only lands on enabled items. It
// does not wrap.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu puts the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	if next, ok := m.nextEnabled(-1, 1); ok {
		m.Selected = next
	}
	return m
}

// Select moves the cursor to i when i is an enabled item.
func (m *Menu) Select(i int) {
	if m.enabled(i) {
		m.Selected = i
	}
}

func (m Menu) enabled(i int) bool {
	return i >= 0 && i < len(m.Items) && !m.Items[i].Disabled
}

// nextEnabled walks from i in steps of dir to the next enabled item.
func (m Menu) nextEnabled(i, dir int) (int, bool) {
	for i += dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i, true
		}
	}
	return i, false
}

// Update moves on ↑↓ or k/j and runs the selected action on Enter.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if i, ok := m.nextEnabled(m.Selected, -1); ok {
			m.Selected = i
		}
	case "down", "j":
		if i, ok := m.nextEnabled(m.Selected, 1); ok {
			m.Selected = i
		}
	case "enter":
		if m.enabled(m.Selected) && m.Items[m.Selected].Action != nil {
			return m, m.Items[m.Selected].Action()
		}
	}
	return m, nil
}

// View draws one line per item with a ▸ cursor.
func (m Menu) View() string {
	if len(m.Items) == 0 {
		return ""
	}
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		var line string
		switch {
		case item.Disabled:
			line = theme.Disabled.Render("    " + item.Label)
		case i == m.Selected:
			line = theme.Selected.Render("  ▸ " + item.Label)
		default:
			line = theme.Unselected.Render("    " + item.Label)
		}
		if item.Note != "" {
			line += "  " + theme.Disabled.Render(item.Note)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n") + "\n"
}
