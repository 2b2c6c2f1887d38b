package curriculum

import "strings"

// Fixed set ids for the vocabulary and reading chains.
const (
	SetFlashcard    = "flashcard"
	SetVocabA       = "vocab-set-a"
	SetVocabB       = "vocab-set-b"
	SetReadingA     = "reading-set-a"
	SetReadingB     = "reading-set-b"
	grammarSetA     = "-set-a"
	grammarSetB     = "-set-b"
	vocabProblems   = 10
	grammarProblems = 8
	readingProblems = 5
)

// SetDef describes one completable set in a unit.
type SetDef struct {
	ID          string
	Activity    Activity
	GrammarID   string // set only for grammar sets
	Name        string
	Description string
	Problems    int    // 0 for the flashcard pass
	Predecessor string // empty for the first set of a chain
}

// IsFlashcard reports whether the set is the flashcard pass rather than a quiz.
func (s SetDef) IsFlashcard() bool {
	return s.ID == SetFlashcard
}

// SetRef is what can be learned about a set from its id alone.
type SetRef struct {
	Activity    Activity
	GrammarID   string
	Predecessor string
}

// GrammarSetID returns the id of a grammar point's set. part is "a" or "b".
func GrammarSetID(grammarID, part string) string {
	return grammarID + "-set-" + part
}

// ParseSet decodes a set id. Grammar set ids are "<grammarID>-set-a" and
// "<grammarID>-set-b".
func ParseSet(setID string) (SetRef, bool) {
	switch setID {
	case SetFlashcard:
		return SetRef{Activity: ActivityVocabulary}, true
	case SetVocabA:
		return SetRef{Activity: ActivityVocabulary, Predecessor: SetFlashcard}, true
	case SetVocabB:
		return SetRef{Activity: ActivityVocabulary, Predecessor: SetVocabA}, true
	case SetReadingA:
		return SetRef{Activity: ActivityReading}, true
	case SetReadingB:
		return SetRef{Activity: ActivityReading, Predecessor: SetReadingA}, true
	}

	if gp, ok := strings.CutSuffix(setID, grammarSetA); ok && gp != "" {
		return SetRef{Activity: ActivityGrammar, GrammarID: gp}, true
	}
	if gp, ok := strings.CutSuffix(setID, grammarSetB); ok && gp != "" {
		return SetRef{Activity: ActivityGrammar, GrammarID: gp, Predecessor: gp + grammarSetA}, true
	}
	return SetRef{}, false
}

// Sets returns the unit's sets in chain order: vocabulary, then each
// grammar point, then reading. Areas without content contribute no sets.
func (u Unit) Sets() []SetDef {
	var sets []SetDef

	if len(u.Words) > 0 {
		sets = append(sets,
			SetDef{
				ID:          SetFlashcard,
				Activity:    ActivityVocabulary,
				Name:        "플래시카드로 단어 외우기",
				Description: "카드를 뒤집으며 단어를 익혀요",
			},
			SetDef{
				ID:          SetVocabA,
				Activity:    ActivityVocabulary,
				Name:        "Set A: 단어 테스트",
				Description: "영한/한영 뜻 고르기",
				Problems:    vocabProblems,
				Predecessor: SetFlashcard,
			},
			SetDef{
				ID:          SetVocabB,
				Activity:    ActivityVocabulary,
				Name:        "Set B: 예문 완성",
				Description: "예문의 빈칸에 알맞은 단어 고르기",
				Problems:    vocabProblems,
				Predecessor: SetVocabA,
			},
		)
	}

	for _, gp := range u.Grammar {
		a := GrammarSetID(gp.ID, "a")
		sets = append(sets,
			SetDef{
				ID:          a,
				Activity:    ActivityGrammar,
				GrammarID:   gp.ID,
				Name:        gp.TitleKorean + " Set A: 기본 문제",
				Description: gp.Title,
				Problems:    grammarProblems,
			},
			SetDef{
				ID:          GrammarSetID(gp.ID, "b"),
				Activity:    ActivityGrammar,
				GrammarID:   gp.ID,
				Name:        gp.TitleKorean + " Set B: 응용 문제",
				Description: gp.Title,
				Problems:    grammarProblems,
				Predecessor: a,
			},
		)
	}

	if u.Reading != nil && u.Reading.Passage != "" {
		sets = append(sets,
			SetDef{
				ID:          SetReadingA,
				Activity:    ActivityReading,
				Name:        "Set A: 내용 이해",
				Description: u.Reading.Title,
				Problems:    readingProblems,
			},
			SetDef{
				ID:          SetReadingB,
				Activity:    ActivityReading,
				Name:        "Set B: 추론 및 어휘",
				Description: u.Reading.Title,
				Problems:    readingProblems,
				Predecessor: SetReadingA,
			},
		)
	}

	return sets
}

// Set returns the unit's set with the given id.
func (u Unit) Set(id string) (SetDef, bool) {
	for _, s := range u.Sets() {
		if s.ID == id {
			return s, true
		}
	}
	return SetDef{}, false
}
