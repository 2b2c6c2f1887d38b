package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/home"
	"github.com/aidu/english/internal/screens/welcome"
	"github.com/aidu/english/internal/store"
)

type memBackend struct {
	data map[string][]byte
}

func (m *memBackend) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }

func (m *memBackend) Put(_ context.Context, key string, value []byte) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value
	return nil
}

func (m *memBackend) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func testModel(t *testing.T, skipWelcome bool) (AppModel, *progress.Store) {
	t.Helper()
	ps := progress.NewStore(&memBackend{}, nil)
	m := newAppModel(Options{
		Deps:        screen.Deps{Catalog: curriculum.Default(), Progress: ps},
		SkipWelcome: skipWelcome,
	})
	return m, ps
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestStartsOnWelcome(t *testing.T) {
	m, _ := testModel(t, false)
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.NotNil(t, m.Init(), "welcome animation ticks")

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscPopsOnlyAboveHome(t *testing.T) {
	m, _ := testModel(t, true)

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	m, _ = update(t, m, router.PushScreenMsg{Screen: home.New(m.deps)})
	require.Equal(t, 2, m.router.Depth())

	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := testModel(t, true)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHeaderStatsRefreshOnNavigation(t *testing.T) {
	m, ps := testModel(t, true)
	assert.Equal(t, 0, m.stats.StreakDays)

	ps.SaveFlashcard(context.Background(), "middle-1", "middle-1-lesson-1", []string{"m1-l1-w1", "m1-l1-w2"}, nil, true)
	m, _ = update(t, m, router.ResumedMsg{})
	assert.Equal(t, 1, m.stats.StreakDays)
	assert.Equal(t, 2, m.stats.WordsLearned)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.True(t, strings.Contains(m.render(), "📚 2단어"))
}

type todayAttempts struct {
	attempts []store.Attempt
	since    time.Time
}

func (f *todayAttempts) Record(context.Context, store.Attempt) error { return nil }

func (f *todayAttempts) Recent(_ context.Context, opts store.QueryOpts) ([]store.Attempt, error) {
	f.since = opts.Since
	return f.attempts, nil
}

func TestSetsToday_CountsDistinctSetsSinceMidnight(t *testing.T) {
	repo := &todayAttempts{attempts: []store.Attempt{
		{UnitID: "middle-1-lesson-1", SetID: "vocab-set-a"},
		{UnitID: "middle-1-lesson-1", SetID: "vocab-set-a"},
		{UnitID: "middle-1-lesson-1", SetID: "vocab-set-b"},
	}}
	now := time.Date(2026, 3, 2, 16, 30, 0, 0, time.Local)

	got := setsToday(context.Background(), screen.Deps{Attempts: repo}.WithDefaults(), now)
	assert.Equal(t, 2, got)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local), repo.since)

	assert.Zero(t, setsToday(context.Background(), screen.Deps{}.WithDefaults(), now))
}

func TestHeaderShowsSetsFromAttempts(t *testing.T) {
	ps := progress.NewStore(&memBackend{}, nil)
	ps.MarkSetCompleted(context.Background(), "middle-1", "middle-1-lesson-1", "vocab-set-a", curriculum.ActivityVocabulary, 90, nil)
	repo := &todayAttempts{attempts: []store.Attempt{{UnitID: "middle-1-lesson-1", SetID: "vocab-set-a"}}}
	m := newAppModel(Options{
		Deps:        screen.Deps{Catalog: curriculum.Default(), Progress: ps, Attempts: repo},
		SkipWelcome: true,
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	assert.Contains(t, m.render(), "✓ 1세트")

	repo.attempts = nil
	m, _ = update(t, m, router.ResumedMsg{})
	assert.NotContains(t, m.render(), "✓ 1세트", "yesterday's completions are not today's sets")
}

func TestFooterUsesScreenHints(t *testing.T) {
	m, _ := testModel(t, true)
	hints := m.footerHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Ctrl+C", hints[len(hints)-1].Key)
	assert.Equal(t, "종료", hints[len(hints)-1].Description)
}

func TestTooSmall(t *testing.T) {
	m, _ := testModel(t, true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "터미널 창이 너무 작아요")
}
