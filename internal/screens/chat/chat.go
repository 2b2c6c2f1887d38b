// Package chat is the AI tutor conversation screen.
package chat

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/tutor"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
)

// replyTimeout bounds one tutor answer.
const replyTimeout = 60 * time.Second

const greeting = "안녕하세요! 영어 튜터예요. 문법, 단어, 작문 무엇이든 물어보세요."

// entry is one line of the transcript. Local entries are never sent to
// the model.
type entry struct {
	role  llm.Role
	text  string
	local bool
}

// replyMsg carries the tutor's answer back to the screen that asked.
type replyMsg struct {
	owner *ChatScreen
	reply tutor.Reply
	err   error
}

// ChatScreen is a scrolling conversation with the tutor above a one-line
// input.
type ChatScreen struct {
	deps    screen.Deps
	lc      tutor.Context
	entries []entry
	input   textinput.Model
	waiting bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New opens a chat about lc. A zero lc is a general conversation.
func New(deps screen.Deps, lc tutor.Context) *ChatScreen {
	deps = deps.WithDefaults()
	ti := textinput.New()
	ti.Placeholder = "질문을 입력하세요"
	ti.CharLimit = 500
	ti.Focus()

	s := &ChatScreen{deps: deps, lc: lc, input: ti}
	s.entries = append(s.entries, entry{role: llm.RoleAssistant, text: greeting, local: true})
	if !deps.Tutor.Available() {
		s.entries = append(s.entries, entry{role: llm.RoleAssistant, text: "(AI 모델이 설정되지 않아 답변이 제한돼요.)", local: true})
	}
	return s
}

// Waiting reports whether an answer is in flight.
func (s *ChatScreen) Waiting() bool {
	return s.waiting
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Focus()
}

func (s *ChatScreen) Title() string {
	if s.lc.Unit != "" {
		return "AI 튜터 · " + s.lc.Unit
	}
	return "AI 튜터"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "보내기"},
		{Key: "Esc", Description: "뒤로"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.owner != s {
			return s, nil
		}
		s.handleReply(msg)
		return s, nil

	case tea.KeyPressMsg:
		if msg.String() == "enter" {
			return s, s.send()
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) send() tea.Cmd {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.waiting {
		return nil
	}
	history := s.history()
	s.entries = append(s.entries, entry{role: llm.RoleUser, text: text})
	s.input.SetValue("")
	s.waiting = true

	svc, lc := s.deps.Tutor, s.lc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		r, err := svc.Reply(ctx, lc, history, text)
		return replyMsg{owner: s, reply: r, err: err}
	}
}

func (s *ChatScreen) handleReply(msg replyMsg) {
	s.waiting = false
	if msg.err != nil {
		s.deps.Log.Warn("tutor chat failed", "error", msg.err)
		return
	}
	if msg.reply.Fallback {
		// The question went unanswered; keep it out of later requests.
		if n := len(s.entries); n > 0 && s.entries[n-1].role == llm.RoleUser {
			s.entries[n-1].local = true
		}
	}
	s.entries = append(s.entries, entry{role: llm.RoleAssistant, text: msg.reply.Text, local: msg.reply.Fallback})
}

// history is the answered part of the conversation.
func (s *ChatScreen) history() []tutor.Turn {
	var turns []tutor.Turn
	for _, e := range s.entries {
		if !e.local {
			turns = append(turns, tutor.Turn{Role: e.role, Text: e.text})
		}
	}
	return turns
}

var (
	studentStyle = lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	tutorStyle   = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
)

func (s *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	body := lipgloss.NewStyle().Width(cw)

	var lines []string
	for _, e := range s.entries {
		label := tutorStyle.Render("튜터")
		if e.role == llm.RoleUser {
			label = studentStyle.Render("나")
		}
		lines = append(lines, label)
		lines = append(lines, strings.Split(body.Render(e.text), "\n")...)
		lines = append(lines, "")
	}
	if s.waiting {
		lines = append(lines, theme.Hint.Render("튜터가 답을 생각하고 있어요..."), "")
	}

	// The input and its rule take two rows.
	if room := height - 2; room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	return strings.Join(lines, "\n") + "\n" + rule + "\n" + s.input.View()
}
