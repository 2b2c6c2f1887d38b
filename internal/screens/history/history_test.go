package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/store"
)

type fakeAttempts struct {
	attempts []store.Attempt
	err      error
	opts     store.QueryOpts
}

func (f *fakeAttempts) Record(context.Context, store.Attempt) error { return nil }

func (f *fakeAttempts) Recent(_ context.Context, opts store.QueryOpts) ([]store.Attempt, error) {
	f.opts = opts
	return f.attempts, f.err
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func sampleAttempts() []store.Attempt {
	at := time.Date(2026, 3, 2, 16, 30, 0, 0, time.Local)
	return []store.Attempt{
		{
			CreatedAt: at, GradeID: "middle-1", UnitID: "middle-1-lesson-1", SetID: curriculum.SetVocabA,
			Score: 80, CorrectCount: 8, Total: 10, ElapsedSeconds: 95,
			WrongIDs: []string{"vocab-set-a-q3", "vocab-set-a-q7"},
		},
		{
			CreatedAt: at.Add(-time.Hour), GradeID: "middle-1", UnitID: "middle-1-lesson-1", SetID: curriculum.SetVocabA,
			Score: 100, CorrectCount: 10, Total: 10, ElapsedSeconds: 60,
		},
	}
}

func TestInit_RequestsRecentAttempts(t *testing.T) {
	repo := &fakeAttempts{}
	s := New(screen.Deps{Attempts: repo})
	load(t, s)
	assert.Equal(t, historyLimit, repo.opts.Limit)
}

func TestView_Empty(t *testing.T) {
	s := New(screen.Deps{Attempts: &fakeAttempts{}})
	load(t, s)
	assert.Contains(t, s.View(80, 24), "아직 푼 문제가 없어요")
}

func TestView_NoRepository(t *testing.T) {
	s := New(screen.Deps{})
	load(t, s)
	assert.Contains(t, s.View(80, 24), "아직 푼 문제가 없어요")
}

func TestView_Loading(t *testing.T) {
	s := New(screen.Deps{Attempts: &fakeAttempts{}})
	assert.Contains(t, s.View(80, 24), "불러오는 중")
}

func TestView_Error(t *testing.T) {
	s := New(screen.Deps{Attempts: &fakeAttempts{err: errors.New("disk gone")}})
	load(t, s)
	assert.Contains(t, s.View(80, 24), "disk gone")
}

func TestView_ListsAttempts(t *testing.T) {
	s := New(screen.Deps{Catalog: curriculum.Default(), Attempts: &fakeAttempts{attempts: sampleAttempts()}})
	load(t, s)

	view := s.View(120, 24)
	assert.Contains(t, view, "2026-03-02 16:30")
	assert.Contains(t, view, "Lesson 1 Set A: 단어 테스트")
	assert.Contains(t, view, "80점")
	assert.Contains(t, view, "8/10")
	assert.Contains(t, view, "1:35")
	assert.Contains(t, view, "100점")
	assert.NotContains(t, view, "vocab-set-a-q3")
}

func TestView_UnknownUnitFallsBackToIDs(t *testing.T) {
	attempts := []store.Attempt{{CreatedAt: time.Now(), UnitID: "gone-unit", SetID: "vocab-set-a", Total: 1}}
	s := New(screen.Deps{Catalog: curriculum.Default(), Attempts: &fakeAttempts{attempts: attempts}})
	load(t, s)
	assert.Contains(t, s.View(120, 24), "gone-unit vocab-set-a")
}

func TestEnter_ExpandsWrongAnswers(t *testing.T) {
	s := New(screen.Deps{Attempts: &fakeAttempts{attempts: sampleAttempts()}})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	view := s.View(120, 24)
	assert.Contains(t, view, "vocab-set-a-q3, vocab-set-a-q7")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(120, 24), "틀린 문제 없음")

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.NotContains(t, s.View(120, 24), "vocab-set-a-q3")
}

func TestCursorStaysInRange(t *testing.T) {
	s := New(screen.Deps{Attempts: &fakeAttempts{attempts: sampleAttempts()}})
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, s.selected)
	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 1, s.selected)
}

func TestView_ScrollsWithCursor(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	var attempts []store.Attempt
	for i := range 20 {
		attempts = append(attempts, store.Attempt{
			CreatedAt: start.Add(-time.Duration(i) * time.Hour), UnitID: "u", SetID: "s", Total: 10,
		})
	}
	s := New(screen.Deps{Attempts: &fakeAttempts{attempts: attempts}})
	load(t, s)

	for range 15 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(120, 10)
	assert.Equal(t, 15, s.selected)
	assert.Positive(t, s.offset)
	assert.NotContains(t, view, "2026-03-02 09:00")
	assert.Contains(t, view, attempts[15].CreatedAt.Format("2006-01-02 15:04"))
}
