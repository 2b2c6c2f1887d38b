// Package quiz runs one pass over an ordered list of questions and scores
// it.
package quiz

import (
	"slices"
	"strings"
)

// QuestionType is how a question is posed.
type QuestionType string

const (
	TypeEngToKor        QuestionType = "eng-to-kor"
	TypeKorToEng        QuestionType = "kor-to-eng"
	TypeFillBlank       QuestionType = "fill-blank"
	TypeMultipleChoice  QuestionType = "multiple-choice"
	TypeErrorCorrection QuestionType = "error-correction"
	TypeComprehension   QuestionType = "comprehension"
	TypeInference       QuestionType = "inference"
	TypeVocabulary      QuestionType = "vocabulary"
	TypeMultiBlank      QuestionType = "multi-blank"
	TypeSpelling        QuestionType = "spelling" // typed English word
)

// Answer is either a SingleAnswer or a MultiAnswer.
type Answer interface {
	// Equal reports exact equality with other. Different variants are
	// never equal.
	Equal(other Answer) bool
	String() string
	isAnswer()
}

// SingleAnswer is one option text or one typed word.
type SingleAnswer string

func (a SingleAnswer) Equal(other Answer) bool {
	o, ok := other.(SingleAnswer)
	return ok && a == o
}

func (a SingleAnswer) String() string { return string(a) }
func (SingleAnswer) isAnswer() {}

// MultiAnswer is the ordered fill-ins of a multi-blank question.
type MultiAnswer []string

func (a MultiAnswer) Equal(other Answer) bool {
	o, ok := other.(MultiAnswer)
	return ok && slices.Equal(a, o)
}

func (a MultiAnswer) String() string { return strings.Join(a, ", ") }
func (MultiAnswer) isAnswer() {}

// Question is one quiz item. For option based questions Answer is the
// SingleAnswer equal to exactly one of Options.
type Question struct {
	ID          string
	Type        QuestionType
	Prompt      string
	Passage     string // optional reading passage or example sentence
	Options     []string
	Answer      Answer
	Explanation string
}

// Blanks returns how many answers a multi-blank question expects, or 0.
func (q Question) Blanks() int {
	if m, ok := q.Answer.(MultiAnswer); ok {
		return len(m)
	}
	return 0
}

// HasOptions reports whether the question is answered by picking an
// option.
func (q Question) HasOptions() bool {
	return len(q.Options) > 0
}
