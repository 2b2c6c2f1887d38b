// Package home is the main menu: today's stats, the recommended next set
// and the grade list.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/recommend"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/chat"
	"github.com/aidu/english/internal/screens/grade"
	"github.com/aidu/english/internal/screens/history"
	"github.com/aidu/english/internal/screens/unit"
	"github.com/aidu/english/internal/tutor"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
)

const allDoneText = "모든 학습을 완료했어요! 복습으로 실력을 다져 보세요."

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps    screen.Deps
	stats   progress.TodayStats
	rec     *recommend.Recommendation
	allDone bool
	menu    components.Menu
	mascot  MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps.WithDefaults()}
	h.reload()
	return h
}

// Recommendation returns the set suggested on the home screen, or nil when
// everything is complete.
func (h *HomeScreen) Recommendation() *recommend.Recommendation {
	return h.rec
}

func (h *HomeScreen) reload() {
	ctx := context.Background()
	doc := h.deps.Progress.Load(ctx)
	h.stats = h.deps.Progress.TodayStats(ctx)

	h.allDone = false
	if hasPlayable(h.deps.Catalog) {
		h.rec = recommend.Next(doc, h.deps.Catalog)
		h.allDone = h.rec == nil
	} else {
		h.rec = recommend.Fallback()
	}
	h.mascot = mascotFor(h.stats.StreakDays, h.stats.CompletedSets, h.allDone)

	selected := h.menu.Selected
	h.menu = components.NewMenu(h.menuItems())
	if selected > 0 {
		h.menu.Select(selected)
	}
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := []components.MenuItem{h.startItem()}

	for _, g := range h.deps.Catalog.Grades() {
		item := components.MenuItem{
			Label: g.Name,
			Action: func() tea.Cmd {
				next := grade.New(h.deps, g)
				return router.Open(next)
			},
		}
		if g.Mock {
			item.Note = "준비중"
		}
		items = append(items, item)
	}

	items = append(items,
		components.MenuItem{Label: "AI 튜터", Action: func() tea.Cmd {
			next := chat.New(h.deps, h.tutorContext())
			return router.Open(next)
		}},
		components.MenuItem{Label: "학습 기록", Action: func() tea.Cmd {
			next := history.New(h.deps)
			return router.Open(next)
		}},
		components.MenuItem{Label: "종료", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)
	return items
}

// startItem opens the recommended set. It is disabled when there is nothing
// left or the recommendation does not resolve to a catalog set.
func (h *HomeScreen) startItem() components.MenuItem {
	item := components.MenuItem{Label: "추천 학습 시작", Disabled: true}
	if h.rec == nil {
		return item
	}
	u, err := h.deps.Catalog.Unit(h.rec.UnitID)
	if err != nil {
		return item
	}
	set, ok := u.Set(h.rec.SetID)
	if !ok {
		return item
	}
	item.Disabled = false
	item.Action = func() tea.Cmd {
		next := unit.OpenSet(h.deps, u, set)
		return router.Open(next)
	}
	return item
}

// tutorContext is the recommended unit, or nothing when there is none.
func (h *HomeScreen) tutorContext() tutor.Context {
	if h.rec == nil {
		return tutor.Context{}
	}
	u, err := h.deps.Catalog.Unit(h.rec.UnitID)
	if err != nil {
		return tutor.Context{}
	}
	g, _ := h.deps.Catalog.Grade(u.GradeID)
	return tutor.ContextFor(g, u)
}

func hasPlayable(c *curriculum.Catalog) bool {
	for _, g := range c.Grades() {
		for _, u := range c.Units(g.ID) {
			if len(u.Sets()) > 0 {
				return true
			}
		}
	}
	return false
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "홈"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "선택"},
		{Key: "Ctrl+C", Description: "종료"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.ResumedMsg); ok {
		h.reload()
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height excludes the header and footer bars.
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+8)
	cw := components.ContentWidth(width)

	sections := []string{renderLogo(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))

	text := allDoneText
	if h.rec != nil {
		text = h.rec.Message
	}
	sections = append(sections, renderRecommendation(text, h.allDone, cw))

	// Bordered buttons take three rows each.
	lines := compact || len(h.menu.Items)*3 > height/2
	sections = append(sections, renderMenu(h.menu, cw, lines))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}
