package curriculum

import (
	"errors"
	"strings"
)

// ErrNotFound is returned (wrapped) for unknown grade, unit or set ids.
var ErrNotFound = errors.New("not found")

// Level is the school level of a grade.
type Level string

const (
	LevelMiddle Level = "middle"
	LevelHigh   Level = "high"
	LevelCustom Level = "custom"
)

// Activity is one of the three study areas inside a unit.
type Activity string

const (
	ActivityVocabulary Activity = "vocabulary"
	ActivityGrammar    Activity = "grammar"
	ActivityReading    Activity = "reading"
)

// ParseActivity returns the activity for s, or false if s is not one.
func ParseActivity(s string) (Activity, bool) {
	switch Activity(strings.ToLower(s)) {
	case ActivityVocabulary:
		return ActivityVocabulary, true
	case ActivityGrammar:
		return ActivityGrammar, true
	case ActivityReading:
		return ActivityReading, true
	}
	return "", false
}

// DisplayName returns the Korean label for an activity.
func (a Activity) DisplayName() string {
	switch a {
	case ActivityVocabulary:
		return "단어"
	case ActivityGrammar:
		return "문법"
	case ActivityReading:
		return "독해"
	default:
		return string(a)
	}
}

// Grade is a school year, e.g. 중학교 1학년.
type Grade struct {
	ID         string
	Name       string
	ShortName  string
	Level      Level
	Order      int
	TotalUnits int
	Mock       bool
}

// Word is one vocabulary entry.
type Word struct {
	ID            string
	English       string
	Korean        string
	Pronunciation string
	PartOfSpeech  string
	Example       string
	ExampleKorean string
	Difficulty    string
}

// Phrase is a multi-word expression taught alongside the core words.
type Phrase struct {
	ID            string
	English       string
	Korean        string
	Example       string
	ExampleKorean string
}

// GrammarExample is an example sentence with the highlighted grammar form.
type GrammarExample struct {
	Sentence    string
	Translation string
	Highlight   string
}

// GrammarPoint is one grammar topic inside a unit.
type GrammarPoint struct {
	ID          string
	Title       string
	TitleKorean string
	Explanation string
	Examples    []GrammarExample
}

// Reading is the unit's reading passage.
type Reading struct {
	Title         string
	Passage       string
	PassageKorean string
	WordCount     int
	Minutes       int
}

// Unit is one lesson of a grade.
type Unit struct {
	ID      string
	GradeID string
	Number  int
	Title   string
	Topic   string
	Mock    bool

	Words   []Word
	Phrases []Phrase
	Grammar []GrammarPoint
	Reading *Reading
}

// Label returns the short lesson label, the part of Title before the first
// period ("Lesson 1" for "Lesson 1. My Daily Life").
func (u Unit) Label() string {
	if i := strings.Index(u.Title, "."); i > 0 {
		return u.Title[:i]
	}
	return u.Title
}

// HasContent reports whether the unit has anything to study.
func (u Unit) HasContent() bool {
	return len(u.Words) > 0 || len(u.Grammar) > 0 || (u.Reading != nil && u.Reading.Passage != "")
}

// GrammarPoint returns the grammar point with the given id.
func (u Unit) GrammarPoint(id string) (GrammarPoint, bool) {
	for _, gp := range u.Grammar {
		if gp.ID == id {
			return gp, true
		}
	}
	return GrammarPoint{}, false
}
