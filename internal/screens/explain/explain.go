// Package explain shows a grammar point explained by the tutor.
package explain

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/tutor"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
)

const explainTimeout = 60 * time.Second

type explainedMsg struct {
	owner       *ExplainScreen
	explanation tutor.Explanation
}

// ExplainScreen loads one explanation and lets the student scroll it.
type ExplainScreen struct {
	deps    screen.Deps
	unit    curriculum.Unit
	gp      curriculum.GrammarPoint
	result  *tutor.Explanation
	loading bool
	offset  int
}

var _ screen.Screen = (*ExplainScreen)(nil)
var _ screen.KeyHintProvider = (*ExplainScreen)(nil)

// New creates the screen for gp of unit.
func New(deps screen.Deps, unit curriculum.Unit, gp curriculum.GrammarPoint) *ExplainScreen {
	return &ExplainScreen{deps: deps.WithDefaults(), unit: unit, gp: gp}
}

// Explanation returns the loaded explanation, or nil while loading.
func (s *ExplainScreen) Explanation() *tutor.Explanation {
	return s.result
}

func (s *ExplainScreen) Init() tea.Cmd {
	if s.loading || s.result != nil {
		return nil
	}
	s.loading = true
	svc, gp := s.deps.Tutor, s.gp
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
		defer cancel()
		return explainedMsg{owner: s, explanation: svc.GrammarExplanation(ctx, gp)}
	}
}

func (s *ExplainScreen) Title() string {
	return s.unit.Label() + " · 문법 설명"
}

func (s *ExplainScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "스크롤"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *ExplainScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explainedMsg:
		if msg.owner == s {
			s.loading = false
			s.result = &msg.explanation
			s.offset = 0
		}
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		}
	}
	return s, nil
}

func (s *ExplainScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.result == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("설명을 준비하고 있어요..."))
	}

	lines := s.lines(cw)
	if last := len(lines) - height; last < 0 {
		s.offset = 0
	} else if s.offset > last {
		s.offset = last
	}
	end := min(len(lines), s.offset+height)
	return strings.Join(lines[s.offset:end], "\n")
}

func (s *ExplainScreen) lines(cw int) []string {
	ex := s.result
	body := theme.Body.Width(cw)
	heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(ex.Title))
	b.WriteString("\n")
	if s.gp.Title != "" && s.gp.Title != ex.Title {
		b.WriteString(theme.Subtitle.Width(cw).Render(s.gp.Title))
		b.WriteString("\n")
	}
	if !ex.Generated {
		b.WriteString(theme.Subtitle.Width(cw).Render("교재 설명"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(body.Render(ex.Explanation))
	b.WriteString("\n")

	section := func(name string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n" + heading.Render(name) + "\n")
		for _, it := range items {
			b.WriteString(body.Render("• "+it) + "\n")
		}
	}
	section("예문", ex.Examples)
	section("학습 팁", ex.Tips)
	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}
