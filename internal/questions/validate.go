package questions

import (
	"fmt"
	"strings"

	"github.com/aidu/english/internal/quiz"
)

// Validator checks one question.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if q is usable.
	Validate(q *quiz.Question) *ValidationError
}

// ValidationError describes why a question was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks the shape every option question must have: a
// prompt, at least two distinct options and an answer equal to exactly one
// option. Spelling questions instead need no options and one typed word.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}

	if strings.TrimSpace(q.Prompt) == "" {
		return fail("question is empty")
	}
	if len(q.Prompt) > 1000 {
		return fail("question exceeds 1000 characters")
	}
	if q.Type == quiz.TypeSpelling {
		return v.validateTyped(q)
	}
	if len(q.Options) < 2 {
		return fail("fewer than 2 options")
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fail("empty option")
		}
		if seen[o] {
			return fail(fmt.Sprintf("duplicate option %q", o))
		}
		seen[o] = true
	}

	answer, ok := q.Answer.(quiz.SingleAnswer)
	if !ok {
		return fail("answer must be a single option")
	}
	if !seen[string(answer)] {
		return fail(fmt.Sprintf("answer %q is not one of the options", answer))
	}
	return nil
}

func (v *StructuralValidator) validateTyped(q *quiz.Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if len(q.Options) > 0 {
		return fail("spelling question has options")
	}
	answer, ok := q.Answer.(quiz.SingleAnswer)
	if !ok || strings.TrimSpace(string(answer)) == "" {
		return fail("spelling question needs one typed answer")
	}
	if strings.ContainsAny(string(answer), ",\n") {
		return fail(fmt.Sprintf("answer %q is not a single word or phrase", answer))
	}
	return nil
}

// TypeValidator rejects question types outside the allowed set.
type TypeValidator struct {
	Allowed []quiz.QuestionType
}

func (v *TypeValidator) Name() string { return "type" }

func (v *TypeValidator) Validate(q *quiz.Question) *ValidationError {
	if len(v.Allowed) == 0 {
		return nil
	}
	for _, t := range v.Allowed {
		if q.Type == t {
			return nil
		}
	}
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unexpected type %q", q.Type)}
}

func validate(q *quiz.Question, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
