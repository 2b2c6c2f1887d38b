package quiz

import (
	"context"
	"errors"
	"slices"

	"github.com/aidu/english/internal/curriculum"
)

// ErrNoQuestions is returned when a session is created without questions.
var ErrNoQuestions = errors.New("quiz has no questions")

// Session is the state of one quiz pass. It is not safe for concurrent
// use; the TUI drives it from a single goroutine.
type Session struct {
	questions []Question

	pos         int
	selected    Answer
	answered    bool
	lastCorrect bool
	correct     int
	wrong       []string
	elapsed     int
	started     bool
	result      *Result
	committed   bool
}

// NewSession returns a session over questions.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	return &Session{questions: slices.Clone(questions)}, nil
}

// Start marks the first question ready and starts the clock.
func (s *Session) Start() { s.started = true }

// Tick adds one elapsed second while the quiz runs.
func (s *Session) Tick() {
	if s.started && s.result == nil {
		s.elapsed++
	}
}

// Current returns the question under the cursor.
func (s *Session) Current() Question { return s.questions[s.pos] }

func (s *Session) Position() int { return s.pos }
func (s *Session) Len() int { return len(s.questions) }
func (s *Session) Selected() Answer { return s.selected }
func (s *Session) Answered() bool { return s.answered }
func (s *Session) CorrectCount() int { return s.correct }
func (s *Session) ElapsedSeconds() int { return s.elapsed }
func (s *Session) Started() bool { return s.started }

// LastCorrect reports whether the most recent submission was correct.
func (s *Session) LastCorrect() bool { return s.lastCorrect }

// WrongIDs returns the ids of the questions answered wrongly so far.
func (s *Session) WrongIDs() []string { return slices.Clone(s.wrong) }

// Result returns the terminal result, or nil while the quiz runs.
func (s *Session) Result() *Result { return s.result }

// SelectAnswer records a choice for the current question. It is ignored
// once the question is answered.
func (s *Session) SelectAnswer(a Answer) {
	if s.answered || s.result != nil {
		return
	}
	s.selected = a
}

// Submit grades the selected answer. Nothing happens without a selection
// or when the question is already answered.
func (s *Session) Submit() {
	if s.selected == nil || s.answered || s.result != nil {
		return
	}
	s.answered = true
	q := s.questions[s.pos]
	s.lastCorrect = q.Answer != nil && q.Answer.Equal(s.selected)
	if s.lastCorrect {
		s.correct++
	} else {
		s.wrong = append(s.wrong, q.ID)
	}
}

// Next moves to the next question once the current one is answered. On
// the last question it finishes the quiz and returns the result; any other
// call returns nil.
func (s *Session) Next() *Result {
	if !s.answered || s.result != nil {
		return nil
	}
	if s.pos < len(s.questions)-1 {
		s.pos++
		s.selected = nil
		s.answered = false
		return nil
	}
	total := len(s.questions)
	s.result = &Result{
		Score:            Score(s.correct, total),
		CorrectCount:     s.correct,
		Total:            total,
		ElapsedSeconds:   s.elapsed,
		WrongQuestionIDs: slices.Clone(s.wrong),
	}
	return s.result
}

// Recorder persists a finished set. progress.Store implements it.
type Recorder interface {
	MarkSetCompleted(ctx context.Context, gradeID, unitID, setID string, activity curriculum.Activity, score int, wrongIDs []string)
}

// Target names the set a quiz was played for.
type Target struct {
	GradeID  string
	UnitID   string
	SetID    string
	Activity curriculum.Activity
}

// Commit records the terminal result through rec. It does so at most once
// and reports whether it did.
func (s *Session) Commit(ctx context.Context, rec Recorder, target Target) bool {
	if s.result == nil || s.committed {
		return false
	}
	s.committed = true
	rec.MarkSetCompleted(ctx, target.GradeID, target.UnitID, target.SetID, target.Activity,
		s.result.Score, slices.Clone(s.result.WrongQuestionIDs))
	return true
}
