package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/recommend"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/flashcard"
	"github.com/aidu/english/internal/screens/chat"
	"github.com/aidu/english/internal/screens/grade"
	"github.com/aidu/english/internal/screens/history"
	"github.com/aidu/english/internal/screens/quiz"
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

func newTestHome(t *testing.T, catalog *curriculum.Catalog) (*HomeScreen, *progress.Store) {
	t.Helper()
	ps := progress.NewStore(&memBackend{}, nil)
	return New(screen.Deps{Catalog: catalog, Progress: ps}), ps
}

func press(t *testing.T, h *HomeScreen, key tea.KeyPressMsg) tea.Msg {
	t.Helper()
	_, cmd := h.Update(key)
	require.NotNil(t, cmd)
	return cmd()
}

func completeUnit(t *testing.T, ps *progress.Store, catalog *curriculum.Catalog, unitID string) {
	t.Helper()
	ctx := context.Background()
	u, err := catalog.Unit(unitID)
	require.NoError(t, err)
	for _, set := range u.Sets() {
		if set.IsFlashcard() {
			ps.SaveFlashcard(ctx, u.GradeID, u.ID, nil, nil, true)
			continue
		}
		ps.MarkSetCompleted(ctx, u.GradeID, u.ID, set.ID, set.Activity, 90, nil)
	}
}

func TestFreshLearnerIsSentToFlashcards(t *testing.T) {
	h, _ := newTestHome(t, curriculum.Default())

	rec := h.Recommendation()
	require.NotNil(t, rec)
	assert.Equal(t, "middle-1-lesson-1", rec.UnitID)
	assert.Equal(t, curriculum.SetFlashcard, rec.SetID)
	assert.Contains(t, h.View(120, 60), "중1 - Lesson 1 - 플래시카드로 단어 외우기")

	msg := press(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "got %T", msg)
	assert.IsType(t, &flashcard.FlashcardScreen{}, push.Screen)
}

func TestResumedRefreshesRecommendation(t *testing.T) {
	h, ps := newTestHome(t, curriculum.Default())
	ps.SaveFlashcard(context.Background(), "middle-1", "middle-1-lesson-1", []string{"m1-l1-w1"}, nil, true)

	h.Update(router.ResumedMsg{})
	require.NotNil(t, h.Recommendation())
	assert.Equal(t, curriculum.SetVocabA, h.Recommendation().SetID)
	assert.Equal(t, 1, h.stats.StreakDays)
	assert.Equal(t, 1, h.stats.WordsLearned)

	msg := press(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	push := msg.(router.PushScreenMsg)
	assert.IsType(t, &quiz.QuizScreen{}, push.Screen)
}

func TestEverythingComplete(t *testing.T) {
	catalog := curriculum.Default()
	h, ps := newTestHome(t, catalog)
	completeUnit(t, ps, catalog, "middle-1-lesson-1")

	h.Update(router.ResumedMsg{})
	assert.Nil(t, h.Recommendation())
	assert.True(t, h.menu.Items[0].Disabled)
	assert.Contains(t, h.View(120, 60), "모든 학습을 완료했어요")
	assert.Equal(t, MascotCelebrating, h.mascot)
}

func TestNoPlayableContentUsesFallback(t *testing.T) {
	catalog, err := curriculum.New([]curriculum.Grade{
		{ID: "middle-1", Name: "중학교 1학년", ShortName: "중1", Order: 1, TotalUnits: 1},
	}, nil)
	require.NoError(t, err)
	h, _ := newTestHome(t, catalog)

	assert.Equal(t, recommend.Fallback().Message, h.Recommendation().Message)
	assert.True(t, h.menu.Items[0].Disabled, "fallback set is not in this catalog")
	assert.Contains(t, h.View(120, 60), recommend.Fallback().Message)
}

func TestGradeItemsOpenGradeScreen(t *testing.T) {
	h, _ := newTestHome(t, curriculum.Default())
	require.Len(t, h.menu.Items, 1+6+3)
	assert.Equal(t, "중학교 1학년", h.menu.Items[1].Label)
	assert.Equal(t, "준비중", h.menu.Items[3].Note)
	assert.False(t, h.menu.Items[3].Disabled)

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	msg := press(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	push := msg.(router.PushScreenMsg)
	assert.IsType(t, &grade.GradeScreen{}, push.Screen)
}

func TestHistoryAndQuit(t *testing.T) {
	h, _ := newTestHome(t, curriculum.Default())
	n := len(h.menu.Items)

	h.menu.Select(n - 2)
	msg := press(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.IsType(t, &history.HistoryScreen{}, msg.(router.PushScreenMsg).Screen)

	h.menu.Select(n - 1)
	msg = press(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.IsType(t, tea.QuitMsg{}, msg)
}

func TestTutorItemUsesRecommendedUnit(t *testing.T) {
	h, _ := newTestHome(t, curriculum.Default())
	n := len(h.menu.Items)
	require.Equal(t, "AI 튜터", h.menu.Items[n-3].Label)

	h.menu.Select(n - 3)
	msg := press(t, h, tea.KeyPressMsg{Code: tea.KeyEnter})
	next := msg.(router.PushScreenMsg).Screen
	require.IsType(t, &chat.ChatScreen{}, next)
	assert.Equal(t, "AI 튜터 · Lesson 1. My Daily Life", next.Title())
}

func TestCompactViewListsMenu(t *testing.T) {
	h, _ := newTestHome(t, curriculum.Default())
	view := h.View(80, 20)
	assert.Contains(t, view, "A · I · D · U")
	assert.Contains(t, view, "고등학교 3학년 (준비중)")
	assert.Contains(t, view, "🔥 0일")
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotSleepy, mascotFor(0, 0, false))
	assert.Equal(t, MascotIdle, mascotFor(3, 0, false))
	assert.Equal(t, MascotCelebrating, mascotFor(3, 2, false))
	assert.Equal(t, MascotCelebrating, mascotFor(0, 0, true))
}
