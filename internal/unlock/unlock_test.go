package unlock

import (
	"testing"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
)

func unitWith(vocab, reading []string, grammar map[string][]string) *progress.UnitProgress {
	up := &progress.UnitProgress{Grammar: map[string]*progress.AreaProgress{}}
	up.Vocabulary.CompletedSets = vocab
	up.Reading.CompletedSets = reading
	for gp, sets := range grammar {
		up.Grammar[gp] = &progress.AreaProgress{CompletedSets: sets}
	}
	return up
}

func TestIsUnlocked(t *testing.T) {
	empty := unitWith(nil, nil, nil)
	afterFlashcard := unitWith([]string{"flashcard"}, nil, nil)
	afterVocabA := unitWith([]string{"flashcard", "vocab-set-a"}, nil, nil)
	grammarA := unitWith(nil, nil, map[string][]string{"m1-l1-g1": {"m1-l1-g1-set-a"}})
	readingA := unitWith(nil, []string{"reading-set-a"}, nil)

	tests := []struct {
		name  string
		setID string
		up    *progress.UnitProgress
		want  bool
	}{
		{"flashcard always open", "flashcard", nil, true},
		{"grammar set a always open", "m1-l1-g1-set-a", nil, true},
		{"reading set a always open", "reading-set-a", empty, true},
		{"vocab a needs flashcard", "vocab-set-a", empty, false},
		{"vocab a after flashcard", "vocab-set-a", afterFlashcard, true},
		{"vocab b needs vocab a", "vocab-set-b", afterFlashcard, false},
		{"vocab b after vocab a", "vocab-set-b", afterVocabA, true},
		{"grammar b after its set a", "m1-l1-g1-set-b", grammarA, true},
		{"other grammar point stays locked", "m1-l1-g2-set-b", grammarA, false},
		{"reading b after reading a", "reading-set-b", readingA, true},
		{"reading b not opened by vocab", "reading-set-b", afterVocabA, false},
		{"nil progress locks followers", "vocab-set-b", nil, false},
		{"unknown set", "bonus-round", afterVocabA, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUnlocked(tt.setID, tt.up); got != tt.want {
				t.Errorf("IsUnlocked(%q) = %v, want %v", tt.setID, got, tt.want)
			}
		})
	}
}

// Unlocking is presence based: a failing score on set A still opens set B.
func TestIsUnlocked_IgnoresScore(t *testing.T) {
	up := unitWith(nil, nil, map[string][]string{"grammar-x": {"grammar-x-set-a"}})
	up.Grammar["grammar-x"].Scores = map[string]int{"grammar-x-set-a": 60}

	if !IsUnlocked("grammar-x-set-b", up) {
		t.Error("grammar-x-set-b should be unlocked once set a is completed")
	}
}

func TestIsUnlocked_DoesNotMutate(t *testing.T) {
	up := unitWith([]string{"flashcard"}, nil, nil)
	IsUnlocked("x-set-b", up)
	IsUnlocked("vocab-set-b", up)

	if len(up.Grammar) != 0 {
		t.Errorf("grammar map grew to %d entries", len(up.Grammar))
	}
	if len(up.Vocabulary.CompletedSets) != 1 {
		t.Errorf("completed sets = %v", up.Vocabulary.CompletedSets)
	}
}

func TestStatusOf(t *testing.T) {
	unit, err := curriculum.Default().Unit("middle-1-lesson-1")
	if err != nil {
		t.Fatal(err)
	}
	up := unitWith([]string{"flashcard"}, nil, nil)

	want := map[string]Status{
		"flashcard":      Completed,
		"vocab-set-a":    Available,
		"vocab-set-b":    Locked,
		"m1-l1-g1-set-a": Available,
		"m1-l1-g1-set-b": Locked,
		"reading-set-a":  Available,
		"reading-set-b":  Locked,
	}
	for _, set := range unit.Sets() {
		w, ok := want[set.ID]
		if !ok {
			continue
		}
		if got := StatusOf(set, up); got != w {
			t.Errorf("StatusOf(%s) = %s, want %s", set.ID, got, w)
		}
	}
}
