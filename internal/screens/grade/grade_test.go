package grade

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/unit"
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

func newTestScreen(t *testing.T, gradeID string) (*GradeScreen, *progress.Store) {
	t.Helper()
	catalog := curriculum.Default()
	g, err := catalog.Grade(gradeID)
	require.NoError(t, err)
	ps := progress.NewStore(&memBackend{}, nil)
	return New(screen.Deps{Catalog: catalog, Progress: ps}, g), ps
}

func TestMockUnitsAreDisabled(t *testing.T) {
	s, _ := newTestScreen(t, "middle-1")
	require.Len(t, s.menu.Items, 10)
	assert.False(t, s.menu.Items[0].Disabled)
	for _, item := range s.menu.Items[1:] {
		assert.True(t, item.Disabled)
		assert.Equal(t, "준비중", item.Note)
	}
	assert.Contains(t, s.View(80, 30), "준비중")

	// The cursor cannot reach a disabled unit.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, s.menu.Selected)
}

func TestEnterOpensUnit(t *testing.T) {
	s, _ := newTestScreen(t, "middle-1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &unit.UnitScreen{}, msg.Screen)
}

func TestCompletionCountRefreshesOnResume(t *testing.T) {
	s, ps := newTestScreen(t, "middle-1")
	total := len(mustUnit(t).Sets())
	assert.Contains(t, s.menu.Items[0].Note, "0/")

	ps.SaveFlashcard(context.Background(), "middle-1", "middle-1-lesson-1", nil, nil, true)
	s.Update(router.ResumedMsg{})
	assert.Equal(t, fmt.Sprintf("1/%d 완료", total), s.menu.Items[0].Note)
}

func TestAllMockGrade(t *testing.T) {
	s, _ := newTestScreen(t, "high-3")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func mustUnit(t *testing.T) curriculum.Unit {
	t.Helper()
	u, err := curriculum.Default().Unit("middle-1-lesson-1")
	require.NoError(t, err)
	return u
}
