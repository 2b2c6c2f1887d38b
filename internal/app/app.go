// Package app wires the screen router into a Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/home"
	"github.com/aidu/english/internal/screens/welcome"
	"github.com/aidu/english/internal/store"
	"github.com/aidu/english/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Deps screen.Deps

	// SkipWelcome starts on the home screen without the splash.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   screen.Deps
	stats  progress.TodayStats
	width  int
	height int

	// setsToday counts distinct sets with a quiz attempt since midnight.
	setsToday int
}

// newAppModel creates a new AppModel starting on the welcome or home screen.
func newAppModel(opts Options) AppModel {
	deps := opts.Deps.WithDefaults()
	homeFactory := func() screen.Screen { return home.New(deps) }

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	m := AppModel{router: router.New(initial), deps: deps}
	m.refreshStats()
	return m
}

func (m *AppModel) refreshStats() {
	ctx := context.Background()
	m.stats = m.deps.Progress.TodayStats(ctx)
	m.setsToday = setsToday(ctx, m.deps, time.Now())
}

func setsToday(ctx context.Context, deps screen.Deps, now time.Time) int {
	if deps.Attempts == nil {
		return 0
	}
	y, mo, d := now.Date()
	attempts, err := deps.Attempts.Recent(ctx, store.QueryOpts{Since: time.Date(y, mo, d, 0, 0, 0, 0, now.Location())})
	if err != nil {
		deps.Log.Warn("count today's sets", "error", err)
		return 0
	}
	sets := make(map[string]bool, len(attempts))
	for _, a := range attempts {
		sets[a.UnitID+"/"+a.SetID] = true
	}
	return len(sets)
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		}
	}

	// Progress only changes inside a screen; the header follows along
	// whenever the stack moves.
	if router.IsNavigation(msg) {
		m.refreshStats()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

var (
	rootHints = []layout.KeyHint{
		{Key: "↑↓", Description: "이동"},
		{Key: "Enter", Description: "선택"},
		{Key: "Ctrl+C", Description: "종료"},
	}
	nestedHints = []layout.KeyHint{
		{Key: "Esc", Description: "뒤로"},
		{Key: "Ctrl+C", Description: "종료"},
	}
)

func (m AppModel) footerHints() []layout.KeyHint {
	fallback := rootHints
	if m.router.Depth() > 1 {
		fallback = nestedHints
	}
	return screen.Hints(m.router.Active(), fallback)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(layout.Header{
		Title:     title,
		Streak:    m.stats.StreakDays,
		Words:     m.stats.WordsLearned,
		SetsToday: m.setsToday,
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
