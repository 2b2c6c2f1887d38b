// Package quiz is the screen that plays one quiz set.
package quiz

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/questions"
	qz "github.com/aidu/english/internal/quiz"
	"github.com/aidu/english/internal/router"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/screens/result"
	"github.com/aidu/english/internal/store"
	"github.com/aidu/english/internal/ui/components"
	"github.com/aidu/english/internal/ui/layout"
)

// generateTimeout bounds one question fetch.
const generateTimeout = 90 * time.Second

// QuizScreen loads questions for a set, runs a quiz.Session over them and
// hands the result to the result screen.
type QuizScreen struct {
	deps screen.Deps
	unit curriculum.Unit
	set  curriculum.SetDef

	loading   bool
	errMsg    string
	questions []qz.Question
	session   *qz.Session

	choice components.MultiChoice
	input  components.AnswerInput
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for set in unit.
func New(deps screen.Deps, unit curriculum.Unit, set curriculum.SetDef) *QuizScreen {
	return &QuizScreen{deps: deps.WithDefaults(), unit: unit, set: set}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.load()
}

func (s *QuizScreen) Title() string {
	return s.unit.Label() + " · " + s.set.Name
}

// Session returns the running quiz, or nil while loading.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

// Loading reports whether a question fetch is in flight.
func (s *QuizScreen) Loading() bool {
	return s.loading
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.session == nil:
		return []layout.KeyHint{{Key: "Esc", Description: "돌아가기"}}
	case s.session.Answered():
		return []layout.KeyHint{
			{Key: "Enter", Description: "다음 문제"},
			{Key: "Esc", Description: "그만하기"},
		}
	case s.session.Current().HasOptions():
		return []layout.KeyHint{
			{Key: "1-4 ↑↓", Description: "선택"},
			{Key: "Enter", Description: "제출"},
			{Key: "Esc", Description: "그만하기"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "제출"},
			{Key: "Esc", Description: "그만하기"},
		}
	}
}

// load starts the single question fetch of this screen.
func (s *QuizScreen) load() tea.Cmd {
	if s.loading || s.session != nil {
		return nil
	}
	req, err := questions.RequestFor(s.unit, s.set)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.loading = true
	src := s.deps.Questions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		qs, err := src.Questions(ctx, req)
		return questionsLoadedMsg{owner: s, Questions: qs, Err: err}
	}
}

func (s *QuizScreen) tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{owner: s}
	})
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if msg.owner != s {
			return s, nil
		}
		return s.handleLoaded(msg)

	case timerTickMsg:
		if msg.owner != s || s.session == nil || s.session.Result() != nil {
			return s, nil
		}
		s.session.Tick()
		return s, s.tick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.acceptsText() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err == nil && len(msg.Questions) == 0 {
		msg.Err = qz.ErrNoQuestions
	}
	if msg.Err != nil {
		s.deps.Log.Warn("quiz could not load questions", "set_id", s.set.ID, "unit_id", s.unit.ID, "error", msg.Err)
		s.errMsg = loadErrorText(msg.Err)
		return s, nil
	}

	sess, err := qz.NewSession(msg.Questions)
	if err != nil {
		s.errMsg = loadErrorText(err)
		return s, nil
	}
	s.questions = msg.Questions
	s.session = sess
	s.session.Start()
	return s, tea.Batch(s.prepareQuestion(), s.tick())
}

func loadErrorText(err error) string {
	switch {
	case errors.Is(err, questions.ErrNoMaterial), errors.Is(err, qz.ErrNoQuestions):
		return "이 세트에는 아직 문제가 없어요."
	default:
		return "문제를 불러오지 못했어요: " + err.Error()
	}
}

// prepareQuestion resets the answer widgets for the current question.
func (s *QuizScreen) prepareQuestion() tea.Cmd {
	q := s.session.Current()
	if q.HasOptions() {
		s.choice = components.NewMultiChoice(q.Options)
		return nil
	}
	placeholder := "답을 입력하세요"
	if q.Blanks() > 1 {
		placeholder = "빈칸의 답을 쉼표로 구분해 입력하세요"
	}
	s.input = components.NewAnswerInput(placeholder, 80)
	return s.input.Init()
}

func (s *QuizScreen) acceptsText() bool {
	return s.session != nil && !s.session.Answered() && !s.session.Current().HasOptions()
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, nil
	}

	if msg.String() == "enter" {
		if s.session.Answered() {
			return s.advance()
		}
		s.submit()
		return s, nil
	}

	if s.session.Answered() {
		return s, nil
	}
	if s.session.Current().HasOptions() {
		s.choice = s.choice.Update(msg)
		if text, ok := s.choice.Choice(); ok {
			s.session.SelectAnswer(qz.SingleAnswer(text))
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) submit() {
	q := s.session.Current()
	if !q.HasOptions() {
		if q.Blanks() > 0 {
			s.session.SelectAnswer(qz.MultiAnswer(s.input.Parts()))
		} else if v := s.input.Value(); v != "" {
			s.session.SelectAnswer(typedAnswer(q, v))
		}
	}

	s.session.Submit()
	if !s.session.Answered() {
		return
	}
	if q.HasOptions() {
		s.choice.Reveal(answerText(q))
	} else {
		s.input.Submit(s.session.LastCorrect())
	}
}

// typedAnswer matches a typed word to the answer ignoring letter case.
func typedAnswer(q qz.Question, typed string) qz.Answer {
	if want, ok := q.Answer.(qz.SingleAnswer); ok && strings.EqualFold(typed, string(want)) {
		return want
	}
	return qz.SingleAnswer(typed)
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	res := s.session.Next()
	if res == nil {
		return s, s.prepareQuestion()
	}

	ctx := context.Background()
	target := qz.Target{GradeID: s.unit.GradeID, UnitID: s.unit.ID, SetID: s.set.ID, Activity: s.set.Activity}
	if s.session.Commit(ctx, s.deps.Progress, target) {
		s.recordAttempt(ctx, *res)
	}

	info := result.Info{UnitTitle: s.unit.Title, SetName: s.set.Name, Questions: s.questions}
	deps, unit, set := s.deps, s.unit, s.set
	next := result.New(res.Query(), info, func() screen.Screen { return New(deps, unit, set) })
	return s, router.Swap(next)
}

func (s *QuizScreen) recordAttempt(ctx context.Context, res qz.Result) {
	if s.deps.Attempts == nil {
		return
	}
	err := s.deps.Attempts.Record(ctx, store.Attempt{
		GradeID:        s.unit.GradeID,
		UnitID:         s.unit.ID,
		SetID:          s.set.ID,
		Activity:       string(s.set.Activity),
		Score:          res.Score,
		CorrectCount:   res.CorrectCount,
		Total:          res.Total,
		ElapsedSeconds: res.ElapsedSeconds,
		WrongIDs:       res.WrongQuestionIDs,
	})
	if err != nil {
		s.deps.Log.Warn("quiz attempt not recorded", "set_id", s.set.ID, "error", err)
	}
}

func answerText(q qz.Question) string {
	if q.Answer == nil {
		return ""
	}
	return q.Answer.String()
}
