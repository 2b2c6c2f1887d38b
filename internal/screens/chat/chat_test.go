package chat

import (
	"encoding/json"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/tutor"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func newChat(t *testing.T, mock *llm.MockProvider, lc tutor.Context) *ChatScreen {
	t.Helper()
	var provider llm.Provider
	if mock != nil {
		provider = mock
	}
	return New(screen.Deps{Tutor: tutor.New(provider, tutor.DefaultConfig(), nil)}, lc)
}

// ask types text, sends it and delivers the answer.
func ask(t *testing.T, s *ChatScreen, text string) {
	t.Helper()
	for _, r := range text {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enter())
	require.NotNil(t, cmd)
	assert.True(t, s.Waiting())
	s.Update(cmd())
	assert.False(t, s.Waiting())
}

func reply(text string) llm.MockResponse {
	b, _ := json.Marshal(map[string]string{"reply": text})
	return llm.MockResponse{Content: b}
}

func TestChat_AnswersAndKeepsHistory(t *testing.T) {
	mock := llm.NewMockProvider(reply("always means 항상."), reply("Yes, exactly."))
	s := newChat(t, mock, tutor.Context{Unit: "Lesson 1. My Daily Life"})
	assert.Equal(t, "AI 튜터 · Lesson 1. My Daily Life", s.Title())

	ask(t, s, "what is always")
	assert.Contains(t, s.View(80, 30), "always means 항상.")
	assert.Empty(t, s.input.Value())

	ask(t, s, "like usually")
	req, ok := mock.LastRequest()
	require.True(t, ok)
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "what is always", req.Messages[0].Content)
	assert.Equal(t, llm.RoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "like usually", req.Messages[2].Content)
	assert.Contains(t, req.System, "Lesson 1. My Daily Life")
}

func TestChat_FailedAnswerLeavesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("overloaded")}, reply("ok"))
	s := newChat(t, mock, tutor.Context{})

	ask(t, s, "first")
	assert.Contains(t, s.View(80, 30), "문제가 생겼어요")

	ask(t, s, "second")
	req, _ := mock.LastRequest()
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "second", req.Messages[0].Content)
}

func TestChat_IgnoresBlankAndBusy(t *testing.T) {
	mock := llm.NewMockProvider(reply("ok"))
	s := newChat(t, mock, tutor.Context{})

	_, cmd := s.Update(enter())
	assert.Nil(t, cmd)

	s.Update(keyPress('a'))
	_, cmd = s.Update(enter())
	require.NotNil(t, cmd)

	s.Update(keyPress('b'))
	_, again := s.Update(enter())
	assert.Nil(t, again, "no second request while one is in flight")
}

func TestChat_IgnoresOtherScreensReplies(t *testing.T) {
	s := newChat(t, llm.NewMockProvider(), tutor.Context{})
	other := newChat(t, llm.NewMockProvider(), tutor.Context{})

	before := len(s.entries)
	s.Update(replyMsg{owner: other, reply: tutor.Reply{Text: "stray"}})
	assert.Len(t, s.entries, before)
}

func TestChat_WithoutModel(t *testing.T) {
	s := newChat(t, nil, tutor.Context{})
	assert.Equal(t, "AI 튜터", s.Title())
	assert.Contains(t, s.View(80, 30), "AI 모델이 설정되지 않아")

	ask(t, s, "hello")
	view := s.View(80, 30)
	assert.Contains(t, view, "설정하면")
	assert.Empty(t, s.history())
}

func TestChat_ViewKeepsLatestLines(t *testing.T) {
	var script []llm.MockResponse
	for i := 0; i < 8; i++ {
		script = append(script, reply("answer"))
	}
	s := newChat(t, llm.NewMockProvider(script...), tutor.Context{})
	for i := 0; i < 7; i++ {
		ask(t, s, "q")
	}
	ask(t, s, "last one")

	view := s.View(60, 10)
	assert.Contains(t, view, "last one")
	assert.NotContains(t, view, "안녕하세요")
}
