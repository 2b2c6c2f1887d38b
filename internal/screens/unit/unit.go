// Package unit lists a unit's sets with their unlock state and starts
// them.
package unit

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/chat"
	"github.com/aidu/english/internal/screens/explain"
	"github.com/aidu/english/internal/screens/flashcard"
	"github.com/aidu/english/internal/screens/quiz"
	"github.com/aidu/english/internal/tutor"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
	"github.com/aidu/english/internal/unlock"
)

// OpenSet builds the screen that plays set: the flashcard pass or a quiz.
func OpenSet(deps screen.Deps, unit curriculum.Unit, set curriculum.SetDef) screen.Screen {
	if set.IsFlashcard() {
		return flashcard.New(deps, unit)
	}
	return quiz.New(deps, unit, set)
}

// UnitScreen shows the sets of one unit grouped by area.
type UnitScreen struct {
	deps   screen.Deps
	unit   curriculum.Unit
	sets   []curriculum.SetDef
	status []unlock.Status
	scores []string
	menu   components.Menu
	notice string
}

var _ screen.Screen = (*UnitScreen)(nil)
var _ screen.KeyHintProvider = (*UnitScreen)(nil)

// New creates a UnitScreen and reads the unit's progress.
func New(deps screen.Deps, unit curriculum.Unit) *UnitScreen {
	s := &UnitScreen{deps: deps.WithDefaults(), unit: unit, sets: unit.Sets()}
	s.reload()
	return s
}

// reload re-reads progress and rebuilds the set list, keeping the cursor.
func (s *UnitScreen) reload() {
	up := s.deps.Progress.UnitProgress(context.Background(), s.unit.ID)
	selected := s.menu.Selected

	s.status = make([]unlock.Status, len(s.sets))
	s.scores = make([]string, len(s.sets))
	items := make([]components.MenuItem, len(s.sets))
	for i, set := range s.sets {
		st := unlock.StatusOf(set, up)
		s.status[i] = st
		s.scores[i] = scoreText(set, up)
		items[i] = components.MenuItem{Label: set.Name, Action: s.startAction(set, st)}
	}
	s.menu = components.NewMenu(items)
	s.menu.Select(selected)
}

func scoreText(set curriculum.SetDef, up *progress.UnitProgress) string {
	if set.IsFlashcard() {
		return ""
	}
	if score, ok := up.Score(set.ID); ok {
		return fmt.Sprintf("%d점", score)
	}
	return ""
}

func (s *UnitScreen) startAction(set curriculum.SetDef, st unlock.Status) func() tea.Cmd {
	return func() tea.Cmd {
		if st == unlock.Locked {
			s.notice = "이전 세트를 먼저 완료해야 열려요."
			return nil
		}
		s.notice = ""
		next := OpenSet(s.deps, s.unit, set)
		return router.Open(next)
	}
}

// Status returns the displayed status of set id.
func (s *UnitScreen) Status(setID string) (unlock.Status, bool) {
	for i, set := range s.sets {
		if set.ID == setID {
			return s.status[i], true
		}
	}
	return unlock.Locked, false
}

func (s *UnitScreen) Init() tea.Cmd {
	return nil
}

func (s *UnitScreen) Title() string {
	return s.unit.Label()
}

func (s *UnitScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "시작"},
	}
	if _, ok := s.selectedGrammar(); ok {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "문법 설명"})
	}
	return append(hints,
		layout.KeyHint{Key: "T", Description: "AI 튜터"},
		layout.KeyHint{Key: "Esc", Description: "뒤로"},
	)
}

// selectedGrammar is the grammar point of the highlighted set.
func (s *UnitScreen) selectedGrammar() (curriculum.GrammarPoint, bool) {
	i := s.menu.Selected
	if i < 0 || i >= len(s.sets) || s.sets[i].Activity != curriculum.ActivityGrammar {
		return curriculum.GrammarPoint{}, false
	}
	return s.unit.GrammarPoint(s.sets[i].GrammarID)
}

func (s *UnitScreen) tutorContext() tutor.Context {
	g, err := s.deps.Catalog.Grade(s.unit.GradeID)
	if err != nil {
		g = curriculum.Grade{}
	}
	return tutor.ContextFor(g, s.unit)
}

func (s *UnitScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case router.ResumedMsg:
		s.reload()
		return s, nil
	case tea.KeyPressMsg:
		switch msg.String() {
		case "e":
			if gp, ok := s.selectedGrammar(); ok {
				next := explain.New(s.deps, s.unit, gp)
				return s, router.Open(next)
			}
			return s, nil
		case "t":
			next := chat.New(s.deps, s.tutorContext())
			return s, router.Open(next)
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *UnitScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(s.unit.Title))
	b.WriteString("\n")
	if s.unit.Topic != "" {
		b.WriteString(theme.Subtitle.Width(width).Render(s.unit.Topic))
		b.WriteString("\n")
	}

	var area curriculum.Activity
	var grammarID string
	for i, set := range s.sets {
		if set.Activity != area || set.GrammarID != grammarID {
			area, grammarID = set.Activity, set.GrammarID
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  " + s.areaHeading(set)))
			b.WriteString("\n")
		}
		b.WriteString(s.renderSet(i, set))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.notice))
	}
	return b.String()
}

func (s *UnitScreen) areaHeading(set curriculum.SetDef) string {
	if set.Activity == curriculum.ActivityGrammar {
		if gp, ok := s.unit.GrammarPoint(set.GrammarID); ok {
			return fmt.Sprintf("%s · %s", set.Activity.DisplayName(), gp.TitleKorean)
		}
	}
	return set.Activity.DisplayName()
}

func (s *UnitScreen) renderSet(i int, set curriculum.SetDef) string {
	icon, style := "▶", theme.Unselected
	switch s.status[i] {
	case unlock.Locked:
		icon, style = "🔒", theme.Disabled
	case unlock.Completed:
		icon, style = "✓", theme.Done
	}
	cursor := "   "
	if i == s.menu.Selected {
		cursor = " ▸ "
		if s.status[i] != unlock.Locked {
			style = theme.Selected
		}
	}

	line := fmt.Sprintf("%s%s %s", cursor, icon, set.Name)
	if set.Problems > 0 {
		line += fmt.Sprintf("  (%d문제)", set.Problems)
	}
	out := style.Render(line)
	if s.scores[i] != "" {
		out += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.scores[i])
	}
	return out
}
