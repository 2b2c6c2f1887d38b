// Package flashcard is the screen that flips through a unit's words.
package flashcard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/aidu/english/internal/curriculum"
	fc "github.com/aidu/english/internal/flashcard"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/speech"
	"github.com/aidu/english/internal/tutor"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
	"github.com/aidu/english/internal/ui/theme"
)

const (
	buttonFinish = iota
	buttonRestart
)

var buttonLabels = []string{"학습 완료", "다시 학습"}

const exampleTimeout = 30 * time.Second

// exampleMsg carries a generated sentence for one word.
type exampleMsg struct {
	owner   *FlashcardScreen
	wordID  string
	example tutor.Example
}

// FlashcardScreen shows one card at a time and sorts words into mastered
// and needs-review.
type FlashcardScreen struct {
	deps    screen.Deps
	unit    curriculum.Unit
	session *fc.Session
	errMsg  string
	button  int

	// examples holds sentences fetched this pass, by word ID.
	examples map[string]tutor.Example
	fetching string
}

var _ screen.Screen = (*FlashcardScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardScreen)(nil)

// New loads the unit's stored flashcard lists and starts a pass.
func New(deps screen.Deps, unit curriculum.Unit) *FlashcardScreen {
	deps = deps.WithDefaults()
	s := &FlashcardScreen{deps: deps, unit: unit}
	sess, err := fc.New(context.Background(), deps.Progress, unit.GradeID, unit.ID, unit.Words)
	if err != nil {
		s.errMsg = "이 단원에는 단어가 없어요."
		deps.Log.Warn("flashcards unavailable", "unit_id", unit.ID, "error", err)
		return s
	}
	s.session = sess
	return s
}

// Session returns the running pass, or nil if the unit has no words.
func (s *FlashcardScreen) Session() *fc.Session {
	return s.session
}

func (s *FlashcardScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardScreen) Title() string {
	return s.unit.Label() + " · 플래시카드"
}

func (s *FlashcardScreen) KeyHints() []layout.KeyHint {
	if s.session == nil {
		return []layout.KeyHint{{Key: "Esc", Description: "돌아가기"}}
	}
	if s.session.Complete() {
		return []layout.KeyHint{
			{Key: "←→", Description: "선택"},
			{Key: "Enter", Description: "확인"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "뒤집기"},
		{Key: "M →", Description: "외웠어요"},
		{Key: "R ←", Description: "다시 볼래요"},
		{Key: "S", Description: "발음 듣기"},
		{Key: "X", Description: "새 예문"},
	}
}

func (s *FlashcardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if em, ok := msg.(exampleMsg); ok {
		if em.owner == s {
			s.fetching = ""
			if s.examples == nil {
				s.examples = map[string]tutor.Example{}
			}
			s.examples[em.wordID] = em.example
		}
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.session == nil {
		return s, nil
	}
	if s.session.Complete() {
		return s.handleSummaryKey(kmsg)
	}

	ctx := context.Background()
	switch kmsg.String() {
	case "space", " ", "enter":
		s.session.Flip()
	case "m", "right":
		s.session.MarkMastered(ctx)
	case "r", "left":
		s.session.MarkNeedsReview(ctx)
	case "s":
		s.speak()
	case "x":
		return s, s.fetchExample()
	}
	if s.session.Complete() {
		s.button = buttonFinish
	}
	return s, nil
}

// fetchExample asks the tutor for a new sentence using the current word
// and flips the card to show it.
func (s *FlashcardScreen) fetchExample() tea.Cmd {
	w, ok := s.session.Current()
	if !ok || s.fetching != "" {
		return nil
	}
	if !s.session.Flipped() {
		s.session.Flip()
	}
	s.fetching = w.ID
	svc, d := s.deps.Tutor, s.difficulty()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exampleTimeout)
		defer cancel()
		return exampleMsg{owner: s, wordID: w.ID, example: svc.ExampleSentence(ctx, w, d)}
	}
}

func (s *FlashcardScreen) difficulty() tutor.Difficulty {
	if s.deps.Catalog != nil {
		if g, err := s.deps.Catalog.Grade(s.unit.GradeID); err == nil {
			return tutor.DifficultyFor(g.Level)
		}
	}
	return tutor.DifficultyBasic
}

// example is the sentence shown on the back of w's card.
func (s *FlashcardScreen) example(w curriculum.Word) (sentence, translation string, generated bool) {
	if ex, ok := s.examples[w.ID]; ok {
		return ex.Sentence, ex.Translation, ex.Generated
	}
	return w.Example, w.ExampleKorean, false
}

func (s *FlashcardScreen) speak() {
	w, ok := s.session.Current()
	if !ok {
		return
	}
	text := w.English
	if sentence, _, _ := s.example(w); s.session.Flipped() && sentence != "" {
		text = sentence
	}
	s.deps.Speaker.Speak(text, speech.LocaleUS)
}

func (s *FlashcardScreen) handleSummaryKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "up", "h", "k":
		s.button = buttonFinish
	case "right", "down", "l", "j":
		s.button = buttonRestart
	case "enter":
		if s.button == buttonRestart {
			s.session.Restart()
			return s, nil
		}
		s.session.Finish(context.Background(), true)
		return s, router.Back()
	}
	return s, nil
}

func (s *FlashcardScreen) View(width, height int) string {
	if s.session == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	if s.session.Complete() {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.renderSummary(width))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.renderCard(width))
}

func (s *FlashcardScreen) renderCard(width int) string {
	w, _ := s.session.Current()
	cw := components.ContentWidth(width)

	counter := theme.Subtitle.Width(cw).Render(fmt.Sprintf("%d / %d", s.session.Position()+1, s.session.Len()))
	bar := components.NewProgressBar(s.session.Position(), s.session.Len(), cw)

	var face strings.Builder
	if !s.session.Flipped() {
		face.WriteString(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(w.English))
		if w.Pronunciation != "" {
			face.WriteString("\n" + theme.Hint.Render(w.Pronunciation))
		}
		if w.PartOfSpeech != "" {
			face.WriteString("\n" + theme.Hint.Render(w.PartOfSpeech))
		}
		face.WriteString("\n\n" + theme.Hint.Render("Space를 눌러 뜻 보기"))
	} else {
		face.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(w.Korean))
		sentence, translation, generated := s.example(w)
		if sentence != "" {
			face.WriteString("\n\n" + theme.Body.Render(sentence))
		}
		if translation != "" {
			face.WriteString("\n" + theme.Hint.Render(translation))
		}
		switch {
		case s.fetching == w.ID:
			face.WriteString("\n\n" + theme.Hint.Render("새 예문을 만드는 중..."))
		case generated:
			face.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Accent).Render("✨ AI 예문"))
		}
	}

	status := ""
	switch {
	case s.session.IsMastered(w.ID):
		status = theme.Correct.Render("✓ 외운 단어")
	case s.session.InReview(w.ID):
		status = lipgloss.NewStyle().Foreground(theme.Accent).Render("↺ 복습할 단어")
	}

	parts := []string{counter, bar.View(), "", components.Card(face.String(), cw)}
	if status != "" {
		parts = append(parts, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(status))
	}
	return strings.Join(parts, "\n")
}

func (s *FlashcardScreen) renderSummary(width int) string {
	cw := components.ContentWidth(width)
	mastered := len(s.session.Mastered())
	review := len(s.session.Review())

	lines := []string{
		theme.Title.Width(cw).Render("모든 카드를 다 봤어요!"),
		"",
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
			theme.Correct.Render(fmt.Sprintf("외운 단어 %d개", mastered)) + "    " +
				lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("복습할 단어 %d개", review))),
		"",
	}
	var buttons []string
	for i, label := range buttonLabels {
		buttons = append(buttons, components.Button(label, buttonState(i == s.button), 16))
	}
	lines = append(lines, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], "  ", buttons[1])))
	return strings.Join(lines, "\n")
}

func buttonState(selected bool) components.ButtonState {
	if selected {
		return components.ButtonSelected
	}
	return components.ButtonIdle
}
