// Package questions supplies quiz questions for a set, either generated by
// a language model or built deterministically from the unit's material.
package questions

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/logger"
	"github.com/aidu/english/internal/quiz"
)

// ErrNoMaterial is returned when a request carries nothing to build
// questions from.
var ErrNoMaterial = errors.New("no material for questions")

// ErrNoValidQuestions is returned when a generator produced nothing usable.
var ErrNoValidQuestions = errors.New("no valid questions generated")

// TypeMixed asks for a mix of eng-to-kor, kor-to-eng and fill-blank.
const TypeMixed quiz.QuestionType = "mixed"

// Source supplies the ordered questions of one quiz.
type Source interface {
	Questions(ctx context.Context, req Request) ([]quiz.Question, error)
}

// Request describes the quiz to build.
type Request struct {
	SetID    string
	Activity curriculum.Activity
	Words    []curriculum.Word
	Grammar  *curriculum.GrammarPoint
	Reading  *curriculum.Reading
	Count    int
	Type     quiz.QuestionType
}

// RequestFor builds the request for one of unit's quiz sets.
func RequestFor(unit curriculum.Unit, set curriculum.SetDef) (Request, error) {
	req := Request{SetID: set.ID, Activity: set.Activity, Count: set.Problems}
	switch set.Activity {
	case curriculum.ActivityVocabulary:
		req.Words = unit.Words
		req.Type = TypeMixed
		if set.ID == curriculum.SetVocabB {
			req.Type = quiz.TypeFillBlank
		}
	case curriculum.ActivityGrammar:
		gp, ok := unit.GrammarPoint(set.GrammarID)
		if !ok {
			return Request{}, fmt.Errorf("grammar point %q in unit %q: %w", set.GrammarID, unit.ID, curriculum.ErrNotFound)
		}
		req.Grammar = &gp
		req.Type = quiz.TypeMultipleChoice
	case curriculum.ActivityReading:
		req.Reading = unit.Reading
		req.Type = quiz.TypeComprehension
	}
	if err := req.check(); err != nil {
		return Request{}, err
	}
	return req, nil
}

func (r Request) check() error {
	switch r.Activity {
	case curriculum.ActivityVocabulary:
		if len(r.Words) == 0 {
			return fmt.Errorf("%s: no words: %w", r.SetID, ErrNoMaterial)
		}
	case curriculum.ActivityGrammar:
		if r.Grammar == nil {
			return fmt.Errorf("%s: no grammar point: %w", r.SetID, ErrNoMaterial)
		}
	case curriculum.ActivityReading:
		if r.Reading == nil || r.Reading.Passage == "" {
			return fmt.Errorf("%s: no passage: %w", r.SetID, ErrNoMaterial)
		}
	default:
		return fmt.Errorf("%s: unknown activity %q: %w", r.SetID, r.Activity, ErrNoMaterial)
	}
	return nil
}

func (r Request) count() int {
	if r.Count > 0 {
		return r.Count
	}
	switch r.Activity {
	case curriculum.ActivityGrammar:
		return 8
	case curriculum.ActivityReading:
		return 5
	default:
		return 10
	}
}

// questionID names the n-th (1-based) question of a set.
func questionID(setID string, n int) string {
	return fmt.Sprintf("%s-q%d", setID, n)
}

func renumber(setID string, qs []quiz.Question) {
	for i := range qs {
		qs[i].ID = questionID(setID, i+1)
	}
}

type fallbackSource struct {
	primary  Source
	fallback Source
	log      *logger.Logger
}

// WithFallback returns a Source that serves primary's questions and
// switches to fallback when primary fails or returns none.
func WithFallback(primary, fallback Source, log *logger.Logger) Source {
	if log == nil {
		log = logger.Nop()
	}
	return &fallbackSource{primary: primary, fallback: fallback, log: log}
}

func (f *fallbackSource) Questions(ctx context.Context, req Request) ([]quiz.Question, error) {
	qs, err := f.primary.Questions(ctx, req)
	if err == nil && len(qs) > 0 {
		return qs, nil
	}
	if errors.Is(err, ErrNoMaterial) {
		return nil, err
	}
	f.log.Warn("question generation failed, using static questions",
		"set_id", req.SetID, "activity", req.Activity, "error", err)
	return f.fallback.Questions(ctx, req)
}

// New returns the source the app uses: generated questions backed by the
// static set when provider is non-nil, otherwise static questions only.
func New(provider llm.Provider, log *logger.Logger) Source {
	static := NewStaticSource()
	if provider == nil {
		return static
	}
	return WithFallback(NewLLMSource(provider, DefaultConfig(), log), static, log)
}
