package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/aidu/english/internal/quiz"
	"github.com/aidu/english/internal/screens/result"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)+"\n\n"+
				theme.Hint.Render("Esc를 눌러 돌아가세요"))
	}
	if s.session == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("문제를 준비하고 있어요..."))
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	sess := s.session
	q := sess.Current()
	inner := min(width-4, 76)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  문제 %d/%d", sess.Position()+1, sess.Len()))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("맞힌 문제 %d  ⏱ %s", sess.CorrectCount(), result.FormatDuration(sess.ElapsedSeconds())))
	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar(sess.Position(), sess.Len(), width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	if q.Passage != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(inner).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.TextDim).
			Padding(0, 1).
			Render(q.Passage))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if q.HasOptions() {
		b.WriteString(s.choice.View(inner))
	} else {
		b.WriteString("답: " + s.input.View())
		b.WriteString("\n")
	}

	if sess.Answered() {
		b.WriteString("\n")
		b.WriteString(renderFeedback(q, sess.LastCorrect(), inner))
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(b.String())
}

func renderFeedback(q qz.Question, correct bool, width int) string {
	var b strings.Builder
	if correct {
		b.WriteString(theme.Correct.Render("정답이에요!"))
	} else {
		b.WriteString(theme.Incorrect.Render("아쉬워요. 정답: " + answerText(q)))
	}
	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.TextDim).Render(q.Explanation))
	}
	return b.String()
}
