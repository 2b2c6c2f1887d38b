package tutor

import (
	"strings"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/llm"
)

// Context is what the student is studying while they talk to the tutor.
type Context struct {
	Grade   string
	Unit    string
	Topic   string
	Words   []string
	Grammar []string
}

// contextWords caps the vocabulary listed in a prompt.
const contextWords = 15

// ContextFor describes unit of grade.
func ContextFor(grade curriculum.Grade, unit curriculum.Unit) Context {
	c := Context{Grade: grade.Name, Unit: unit.Title, Topic: unit.Topic}
	for i, w := range unit.Words {
		if i == contextWords {
			break
		}
		c.Words = append(c.Words, w.English)
	}
	for _, gp := range unit.Grammar {
		c.Grammar = append(c.Grammar, gp.Title)
	}
	return c
}

// IsZero reports whether c names nothing.
func (c Context) IsZero() bool {
	return c.Grade == "" && c.Unit == "" && c.Topic == "" && len(c.Words) == 0 && len(c.Grammar) == 0
}

// String is the one-paragraph form used in prompts.
func (c Context) String() string {
	var parts []string
	if c.Grade != "" {
		parts = append(parts, "학년: "+c.Grade)
	}
	if c.Unit != "" {
		parts = append(parts, "단원: "+c.Unit)
	}
	if c.Topic != "" {
		parts = append(parts, "주제: "+c.Topic)
	}
	if len(c.Words) > 0 {
		parts = append(parts, "단어: "+strings.Join(c.Words, ", "))
	}
	if len(c.Grammar) > 0 {
		parts = append(parts, "문법: "+strings.Join(c.Grammar, ", "))
	}
	return strings.Join(parts, "\n")
}

// Turn is one earlier message of a chat.
type Turn struct {
	Role llm.Role
	Text string
}

// Reply is the tutor's answer to one chat message. Fallback is set when
// the text is a canned notice instead of a model answer.
type Reply struct {
	Text     string
	Fallback bool
}

// Explanation teaches one grammar point.
type Explanation struct {
	Title       string
	Explanation string
	Examples    []string
	Tips        []string
	// Generated is false when the explanation comes from the catalog.
	Generated bool
}

// Example is one sentence using a word, with its translation.
type Example struct {
	Sentence    string
	Translation string
	Generated   bool
}

// Difficulty is the level of a generated example sentence.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DifficultyFor picks the example level for a school level.
func DifficultyFor(level curriculum.Level) Difficulty {
	if level == curriculum.LevelHigh {
		return DifficultyIntermediate
	}
	return DifficultyBasic
}

func (d Difficulty) guide() string {
	switch d {
	case DifficultyIntermediate:
		return "고등학생 수준의 적절한"
	case DifficultyAdvanced:
		return "대학생 수준의 복잡한"
	default:
		return "중학생 수준의 간단한"
	}
}
