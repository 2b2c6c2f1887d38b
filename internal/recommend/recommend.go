// Package recommend picks the next activity to suggest to the learner.
package recommend

import (
	"fmt"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/unlock"
)

// Recommendation is a suggested set to study next.
type Recommendation struct {
	Activity curriculum.Activity
	GradeID  string
	UnitID   string
	SetID    string
	Message  string
}

// Next scans grades in ascending order, their units by number and each
// unit's sets in chain order, and returns the first set that is unlocked
// but not completed. It returns nil when every playable set is done.
func Next(doc *progress.Document, catalog *curriculum.Catalog) *Recommendation {
	for _, g := range catalog.Grades() {
		for _, u := range catalog.Units(g.ID) {
			up := doc.Unit(g.ID, u.ID)
			for _, set := range u.Sets() {
				if up.Completed(set.ID) || !unlock.IsUnlocked(set.ID, up) {
					continue
				}
				return &Recommendation{
					Activity: set.Activity,
					GradeID:  g.ID,
					UnitID:   u.ID,
					SetID:    set.ID,
					Message:  message(g, u, set),
				}
			}
		}
	}
	return nil
}

// Fallback is the fixed suggestion used when there is no playable content
// to scan.
func Fallback() *Recommendation {
	return &Recommendation{
		Activity: curriculum.ActivityVocabulary,
		GradeID:  "middle-1",
		UnitID:   "middle-1-lesson-1",
		SetID:    curriculum.SetFlashcard,
		Message:  "중1 - Lesson 1 - 플래시카드로 단어 외우기",
	}
}

func message(g curriculum.Grade, u curriculum.Unit, set curriculum.SetDef) string {
	return fmt.Sprintf("%s - %s - %s", g.ShortName, u.Label(), set.Name)
}
