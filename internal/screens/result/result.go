// Package result shows the score of a finished quiz.
package result

import (
	"fmt"
	"net/url"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/quiz"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
)

// Info is what the result screen shows besides the score.
type Info struct {
	UnitTitle string
	SetName   string
	Questions []quiz.Question // used to show the wrong answers
}

// ResultScreen displays a quiz result.
type ResultScreen struct {
	result quiz.Result
	info   Info
	retry  func() screen.Screen
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New decodes params (see quiz.Result.Query) and builds the screen. retry,
// when non-nil, builds a fresh quiz for the same set.
func New(params url.Values, info Info, retry func() screen.Screen) *ResultScreen {
	return &ResultScreen{result: quiz.ParseResult(params), info: info, retry: retry}
}

// Result returns the decoded result.
func (s *ResultScreen) Result() quiz.Result {
	return s.result
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "결과"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "목록으로"}}
	if s.retry != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "다시 풀기"})
	}
	return hints
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter":
		return s, router.Back()
	case "r":
		if s.retry == nil {
			return s, nil
		}
		next := s.retry()
		return s, router.Swap(next)
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	r := s.result
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	if s.info.SetName != "" {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
			strings.TrimSpace(s.info.UnitTitle+"  ·  "+s.info.SetName)))
		b.WriteString("\n\n")
	}

	b.WriteString(center(theme.Score(r.Passed()),
		fmt.Sprintf("%d점  %s", r.Score, r.Letter())))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), r.Message()))
	b.WriteString("\n\n")

	verdict := "통과! 다음 세트가 열렸어요."
	if !r.Passed() {
		verdict = fmt.Sprintf("%d점 이상이면 통과예요. 다시 도전해 보세요!", quiz.PassingScore)
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), verdict))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("맞힌 문제 %d / %d        걸린 시간 %s", r.CorrectCount, r.Total, FormatDuration(r.ElapsedSeconds))))
	b.WriteString("\n")

	if wrong := s.wrongQuestions(); len(wrong) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "틀린 문제"))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, q := range wrong {
			line := fmt.Sprintf("  %s  →  %s", firstLine(q.Prompt), answerText(q))
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error), line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *ResultScreen) wrongQuestions() []quiz.Question {
	if len(s.result.WrongQuestionIDs) == 0 {
		return nil
	}
	byID := make(map[string]quiz.Question, len(s.info.Questions))
	for _, q := range s.info.Questions {
		byID[q.ID] = q
	}
	var out []quiz.Question
	for _, id := range s.result.WrongQuestionIDs {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

func answerText(q quiz.Question) string {
	if q.Answer == nil {
		return ""
	}
	return q.Answer.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
