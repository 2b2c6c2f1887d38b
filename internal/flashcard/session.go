// Package flashcard runs one pass over a unit's word list, sorting each
// word into mastered or needs-review.
package flashcard

import (
	"context"
	"fmt"
	"slices"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/progress"
)

// Store is the part of the progress store a session needs.
type Store interface {
	FlashcardState(ctx context.Context, gradeID, unitID string) progress.FlashcardState
	SaveFlashcard(ctx context.Context, gradeID, unitID string, mastered, review []string, completed bool)
}

// Session is the state of one flashcard pass. It is not safe for
// concurrent use.
type Session struct {
	store   Store
	gradeID string
	unitID  string
	words   []curriculum.Word

	pos      int
	flipped  bool
	complete bool
	mastered []string
	review   []string
}

// New starts a session over words for the given unit, seeded with the
// unit's stored lists. An empty word list is reported as not found.
func New(ctx context.Context, store Store, gradeID, unitID string, words []curriculum.Word) (*Session, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("flashcard words for unit %q: %w", unitID, curriculum.ErrNotFound)
	}
	st := store.FlashcardState(ctx, gradeID, unitID)
	s := &Session{
		store:   store,
		gradeID: gradeID,
		unitID:  unitID,
		words:   slices.Clone(words),
	}
	for _, id := range st.MasteredWords {
		if !slices.Contains(s.mastered, id) {
			s.mastered = append(s.mastered, id)
		}
	}
	for _, id := range st.ReviewWords {
		if !slices.Contains(s.mastered, id) && !slices.Contains(s.review, id) {
			s.review = append(s.review, id)
		}
	}
	return s, nil
}

// Current returns the word under the cursor. ok is false once the pass is
// complete.
func (s *Session) Current() (w curriculum.Word, ok bool) {
	if s.complete {
		return curriculum.Word{}, false
	}
	return s.words[s.pos], true
}

func (s *Session) Position() int { return s.pos }
func (s *Session) Len() int { return len(s.words) }
func (s *Session) Flipped() bool { return s.flipped }
func (s *Session) Complete() bool { return s.complete }

// Mastered returns a copy of the mastered word ids.
func (s *Session) Mastered() []string { return slices.Clone(s.mastered) }

// Review returns a copy of the review word ids.
func (s *Session) Review() []string { return slices.Clone(s.review) }

// IsMastered reports whether wordID is mastered.
func (s *Session) IsMastered(wordID string) bool { return slices.Contains(s.mastered, wordID) }

// InReview reports whether wordID is marked for review.
func (s *Session) InReview(wordID string) bool { return slices.Contains(s.review, wordID) }

// Flip turns the current card over.
func (s *Session) Flip() {
	if s.complete {
		return
	}
	s.flipped = !s.flipped
}

// MarkMastered moves the current word to mastered, saves and advances.
func (s *Session) MarkMastered(ctx context.Context) {
	w, ok := s.Current()
	if !ok {
		return
	}
	if !slices.Contains(s.mastered, w.ID) {
		s.mastered = append(s.mastered, w.ID)
		s.review = slices.DeleteFunc(s.review, func(id string) bool { return id == w.ID })
	}
	s.persist(ctx, false)
	s.advance()
}

// MarkNeedsReview flags the current word for review unless it is already
// in either list, saves and advances.
func (s *Session) MarkNeedsReview(ctx context.Context) {
	w, ok := s.Current()
	if !ok {
		return
	}
	if !slices.Contains(s.mastered, w.ID) && !slices.Contains(s.review, w.ID) {
		s.review = append(s.review, w.ID)
	}
	s.persist(ctx, false)
	s.advance()
}

// Restart rewinds to the first card and keeps both lists.
func (s *Session) Restart() {
	s.pos = 0
	s.flipped = false
	s.complete = false
}

// Finish saves the lists once more. With markSetComplete the flashcard set
// is recorded as completed.
func (s *Session) Finish(ctx context.Context, markSetComplete bool) {
	s.persist(ctx, markSetComplete)
}

func (s *Session) advance() {
	s.flipped = false
	if s.pos == len(s.words)-1 {
		s.complete = true
		return
	}
	s.pos++
}

func (s *Session) persist(ctx context.Context, completed bool) {
	s.store.SaveFlashcard(ctx, s.gradeID, s.unitID, s.mastered, s.review, completed)
}
