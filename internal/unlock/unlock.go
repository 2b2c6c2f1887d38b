// Package unlock decides which sets of a unit the learner may open.
package unlock

import (
	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
)

// Status is the display state of a set.
type Status int

const (
	Locked Status = iota
	Available
	Completed
)

func (s Status) String() string {
	switch s {
	case Locked:
		return "locked"
	case Available:
		return "available"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// IsUnlocked reports whether setID may be started. The first set of every
// chain is always open; any later set opens once its predecessor is in the
// completed sets. Unknown set ids are locked. up may be nil.
func IsUnlocked(setID string, up *progress.UnitProgress) bool {
	ref, ok := curriculum.ParseSet(setID)
	if !ok {
		return false
	}
	if ref.Predecessor == "" {
		return true
	}
	return up.Area(ref.Activity, ref.GrammarID).Completed(ref.Predecessor)
}

// StatusOf classifies set for display.
func StatusOf(set curriculum.SetDef, up *progress.UnitProgress) Status {
	switch {
	case up.Completed(set.ID):
		return Completed
	case IsUnlocked(set.ID, up):
		return Available
	default:
		return Locked
	}
}
