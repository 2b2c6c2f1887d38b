// Package progress persists the learner's progress document and provides
// the read-modify-write helpers the study flows use.
package progress

import (
	"slices"
	"time"

	"github.com/aidu/english/internal/curriculum"
)

// StorageKey is the fixed key the whole document is stored under.
const StorageKey = "aidu-english-progress"

// GuestUserID is the only user id the app writes.
const GuestUserID = "guest"

const dateLayout = "2006-01-02"

// Document is the complete progress state of the single learner.
type Document struct {
	UserID            string                    `json:"userId"`
	TotalWordsLearned int                       `json:"totalWordsLearned"`
	StreakDays        int                       `json:"streakDays"`
	LastStudyDate     string                    `json:"lastStudyDate"`
	Grades            map[string]*GradeProgress `json:"grades"`
}

// GradeProgress holds the units of one grade that have been touched.
type GradeProgress struct {
	Units map[string]*UnitProgress `json:"units"`
}

// UnitProgress is the per-unit state for all three activity areas.
type UnitProgress struct {
	Vocabulary VocabularyProgress       `json:"vocabulary"`
	Grammar    map[string]*AreaProgress `json:"grammar"`
	Reading    AreaProgress             `json:"reading"`
}

// VocabularyProgress is an AreaProgress plus the flashcard buckets.
type VocabularyProgress struct {
	FlashcardProgress FlashcardState `json:"flashcardProgress"`
	AreaProgress
}

// AreaProgress tracks completed sets, latest scores and wrong problem ids
// for one area (or one grammar point).
type AreaProgress struct {
	CompletedSets []string       `json:"completedSets"`
	Scores        map[string]int `json:"scores"`
	WrongProblems []string       `json:"wrongProblems"`
}

// FlashcardState is the stored result of flashcard passes over a unit.
type FlashcardState struct {
	MasteredWords []string  `json:"masteredWords"`
	ReviewWords   []string  `json:"reviewWords"`
	LastReview    time.Time `json:"lastReview,omitzero"`
}

// NewDocument returns the default document for a learner who has never
// studied.
func NewDocument(now time.Time) *Document {
	return &Document{
		UserID:        GuestUserID,
		LastStudyDate: now.Format(dateLayout),
		Grades:        map[string]*GradeProgress{},
	}
}

func newUnitProgress() *UnitProgress {
	return &UnitProgress{
		Vocabulary: VocabularyProgress{
			FlashcardProgress: FlashcardState{MasteredWords: []string{}, ReviewWords: []string{}},
			AreaProgress:      newArea(),
		},
		Grammar: map[string]*AreaProgress{},
		Reading: newArea(),
	}
}

func newArea() AreaProgress {
	return AreaProgress{CompletedSets: []string{}, Scores: map[string]int{}, WrongProblems: []string{}}
}

// unit returns the unit entry, creating the grade and unit on first touch.
func (d *Document) unit(gradeID, unitID string) *UnitProgress {
	if d.Grades == nil {
		d.Grades = map[string]*GradeProgress{}
	}
	g, ok := d.Grades[gradeID]
	if !ok || g == nil {
		g = &GradeProgress{}
		d.Grades[gradeID] = g
	}
	if g.Units == nil {
		g.Units = map[string]*UnitProgress{}
	}
	u, ok := g.Units[unitID]
	if !ok || u == nil {
		u = newUnitProgress()
		g.Units[unitID] = u
	}
	return u
}

// Unit returns the progress of unitID in gradeID, or nil if it was never
// touched.
func (d *Document) Unit(gradeID, unitID string) *UnitProgress {
	if d == nil {
		return nil
	}
	g := d.Grades[gradeID]
	if g == nil {
		return nil
	}
	return g.Units[unitID]
}

// FindUnit looks unitID up across all grades.
func (d *Document) FindUnit(unitID string) *UnitProgress {
	if d == nil {
		return nil
	}
	for _, g := range d.Grades {
		if g == nil {
			continue
		}
		if u := g.Units[unitID]; u != nil {
			return u
		}
	}
	return nil
}

// touchStudy advances the streak for a study action on now's date and
// stamps lastStudyDate.
func (d *Document) touchStudy(now time.Time) {
	today := now.Format(dateLayout)
	switch {
	case d.LastStudyDate == today:
		if d.StreakDays == 0 {
			d.StreakDays = 1
		}
	case isDayBefore(d.LastStudyDate, now):
		d.StreakDays++
	default:
		d.StreakDays = 1
	}
	d.LastStudyDate = today
}

func isDayBefore(date string, now time.Time) bool {
	t, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return false
	}
	return t.AddDate(0, 0, 1).Format(dateLayout) == now.Format(dateLayout)
}

// Area returns the area entry a set belongs to, or nil when it does not
// exist yet. Grammar sets are looked up by their grammar point.
func (u *UnitProgress) Area(activity curriculum.Activity, grammarID string) *AreaProgress {
	if u == nil {
		return nil
	}
	switch activity {
	case curriculum.ActivityVocabulary:
		return &u.Vocabulary.AreaProgress
	case curriculum.ActivityReading:
		return &u.Reading
	case curriculum.ActivityGrammar:
		return u.Grammar[grammarID]
	}
	return nil
}

func (u *UnitProgress) areaForWrite(activity curriculum.Activity, grammarID string) *AreaProgress {
	if activity == curriculum.ActivityGrammar {
		if u.Grammar == nil {
			u.Grammar = map[string]*AreaProgress{}
		}
		if u.Grammar[grammarID] == nil {
			a := newArea()
			u.Grammar[grammarID] = &a
		}
	}
	return u.Area(activity, grammarID)
}

// Completed reports whether setID is in its area's completed sets.
func (u *UnitProgress) Completed(setID string) bool {
	ref, ok := curriculum.ParseSet(setID)
	if !ok {
		return false
	}
	return u.Area(ref.Activity, ref.GrammarID).Completed(setID)
}

// Score returns the latest score recorded for setID.
func (u *UnitProgress) Score(setID string) (int, bool) {
	ref, ok := curriculum.ParseSet(setID)
	if !ok {
		return 0, false
	}
	a := u.Area(ref.Activity, ref.GrammarID)
	if a == nil {
		return 0, false
	}
	s, ok := a.Scores[setID]
	return s, ok
}

// Completed reports whether setID is in this area's completed sets.
func (a *AreaProgress) Completed(setID string) bool {
	return a != nil && slices.Contains(a.CompletedSets, setID)
}

func (a *AreaProgress) complete(setID string, score int, wrongIDs []string) {
	a.CompletedSets = appendUnique(a.CompletedSets, setID)
	if a.Scores == nil {
		a.Scores = map[string]int{}
	}
	a.Scores[setID] = score
	for _, id := range wrongIDs {
		a.WrongProblems = appendUnique(a.WrongProblems, id)
	}
}

func appendUnique(list []string, id string) []string {
	if slices.Contains(list, id) {
		return list
	}
	return append(list, id)
}
