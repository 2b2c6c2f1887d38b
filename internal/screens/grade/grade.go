// Package grade lists the units of a grade.
package grade

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/unit"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
)

// GradeScreen shows a grade's units. Units without content are listed but
// cannot be opened.
type GradeScreen struct {
	deps  screen.Deps
	grade curriculum.Grade
	units []curriculum.Unit
	menu  components.Menu
}

var _ screen.Screen = (*GradeScreen)(nil)
var _ screen.KeyHintProvider = (*GradeScreen)(nil)

// New creates a GradeScreen for g.
func New(deps screen.Deps, g curriculum.Grade) *GradeScreen {
	s := &GradeScreen{deps: deps.WithDefaults(), grade: g, units: deps.Catalog.Units(g.ID)}
	s.reload()
	return s
}

func (s *GradeScreen) reload() {
	doc := s.deps.Progress.Load(context.Background())
	selected := s.menu.Selected

	items := make([]components.MenuItem, 0, len(s.units))
	for _, u := range s.units {
		if u.Mock || !u.HasContent() {
			items = append(items, components.MenuItem{Label: u.Label(), Note: "준비중", Disabled: true})
			continue
		}
		sets := u.Sets()
		up := doc.Unit(s.grade.ID, u.ID)
		done := 0
		for _, set := range sets {
			if up.Completed(set.ID) {
				done++
			}
		}
		items = append(items, components.MenuItem{
			Label: u.Title,
			Note:  fmt.Sprintf("%d/%d 완료", done, len(sets)),
			Action: func() tea.Cmd {
				next := unit.New(s.deps, u)
				return router.Open(next)
			},
		})
	}
	s.menu = components.NewMenu(items)
	if selected > 0 {
		s.menu.Select(selected)
	}
}

func (s *GradeScreen) Init() tea.Cmd {
	return nil
}

func (s *GradeScreen) Title() string {
	return s.grade.Name
}

func (s *GradeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "단원 열기"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *GradeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.ResumedMsg); ok {
		s.reload()
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *GradeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.grade.Name))
	b.WriteString("\n\n")
	if len(s.units) == 0 {
		b.WriteString(theme.Subtitle.Width(width).Render("아직 단원이 없어요."))
		return b.String()
	}
	b.WriteString(s.menu.View())
	return b.String()
}
