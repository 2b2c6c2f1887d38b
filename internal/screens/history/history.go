// Package history lists past quiz attempts, newest first.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/quiz"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/result"
	"github.com/aidu/english/internal/store"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
)

const historyLimit = 50

type loadedMsg struct {
	attempts []store.Attempt
	err      error
}

// HistoryScreen shows up to historyLimit attempts. Enter toggles the list
// of wrong question ids under the selected row.
type HistoryScreen struct {
	deps     screen.Deps
	attempts []store.Attempt
	selected int
	offset   int
	expanded map[int]bool
	loaded   bool
	err      error
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

func New(deps screen.Deps) *HistoryScreen {
	return &HistoryScreen{deps: deps.WithDefaults(), expanded: map[int]bool{}}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.deps.Attempts
	return func() tea.Msg {
		if repo == nil {
			return loadedMsg{}
		}
		attempts, err := repo.Recent(context.Background(), store.QueryOpts{Limit: historyLimit})
		return loadedMsg{attempts: attempts, err: err}
	}
}

func (s *HistoryScreen) Title() string { return "학습 기록" }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "자세히"},
		{Key: "↑↓", Description: "이동"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		s.err = msg.err
		if msg.err == nil {
			s.attempts = msg.attempts
		}
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			s.selected = max(s.selected-1, 0)
		case "down", "j":
			s.selected = min(s.selected+1, max(len(s.attempts)-1, 0))
		case "enter":
			if len(s.attempts) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func message(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.err != nil:
		return message(width, lipgloss.NewStyle().Foreground(theme.Error),
			fmt.Sprintf("기록을 불러오지 못했어요: %v", s.err))
	case !s.loaded:
		return message(width, theme.Disabled, "기록을 불러오는 중...")
	case len(s.attempts) == 0:
		return message(width, theme.Hint, "아직 푼 문제가 없어요. 첫 세트를 시작해 보세요!")
	}

	s.scrollTo(max(height-2, 1))
	lines := []string{""}
	for i := s.offset; i < len(s.attempts) && len(lines) < height; i++ {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, s.row(i)))
		if s.expanded[i] {
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(wrongDetail(s.attempts[i]))))
		}
	}
	return strings.Join(lines, "\n")
}

// scrollTo keeps the selected row inside a window of rows lines.
func (s *HistoryScreen) scrollTo(rows int) {
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+rows {
		s.offset = s.selected - rows + 1
	}
}

func (s *HistoryScreen) row(i int) string {
	a := s.attempts[i]
	cursor, style := "  ", theme.Unselected
	if i == s.selected {
		cursor, style = "▸ ", theme.Selected
	}
	grade := quiz.Result{Score: a.Score}.Letter()
	return style.Render(fmt.Sprintf("%s%s  %s  %d점 %-2s  %d/%d  %s",
		cursor, a.CreatedAt.Format("2006-01-02 15:04"), s.setLabel(a),
		a.Score, grade, a.CorrectCount, a.Total, result.FormatDuration(a.ElapsedSeconds)))
}

func wrongDetail(a store.Attempt) string {
	if len(a.WrongIDs) == 0 {
		return "    틀린 문제 없음"
	}
	return "    틀린 문제: " + strings.Join(a.WrongIDs, ", ")
}

// setLabel names the unit and set from the catalog, or falls back to the
// stored ids when the unit no longer exists.
func (s *HistoryScreen) setLabel(a store.Attempt) string {
	fallback := a.UnitID + " " + a.SetID
	if s.deps.Catalog == nil {
		return fallback
	}
	u, err := s.deps.Catalog.Unit(a.UnitID)
	if err != nil {
		return fallback
	}
	name := a.SetID
	if set, ok := u.Set(a.SetID); ok {
		name = set.Name
	}
	return u.Label() + " " + name
}
