package progress

import (
	"context"
	"encoding/json"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/logger"
)

// Backend stores opaque blobs under string keys. Get returns nil, nil when
// the key is absent. store.BlobRepo implements it.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store is the handle every study flow reads and writes progress through.
// Each helper is a single whole-document read-modify-write under one lock.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     *logger.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a Store over backend. A nil backend behaves as storage
// that is unavailable: loads return the default document and writes are
// dropped.
func NewStore(backend Backend, log *logger.Logger, opts ...Option) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{backend: backend, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored document, or a default one when nothing is
// stored, storage is unavailable or the payload does not parse.
func (s *Store) Load(ctx context.Context) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the stored document. Failures are logged and dropped.
func (s *Store) Save(ctx context.Context, doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.save(ctx, doc)
}

// Reset deletes the stored document.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend == nil {
		return
	}
	if err := s.backend.Delete(ctx, StorageKey); err != nil {
		s.log.Warn("progress reset failed", "error", err)
	}
}

func (s *Store) load(ctx context.Context) *Document {
	if s.backend == nil {
		s.log.Debug("progress storage unavailable, using default document")
		return NewDocument(s.now())
	}
	data, err := s.backend.Get(ctx, StorageKey)
	if err != nil {
		s.log.Warn("progress load failed, using default document", "error", err)
		return NewDocument(s.now())
	}
	if data == nil {
		return NewDocument(s.now())
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("progress payload is corrupt, using default document", "error", err, "bytes", len(data))
		return NewDocument(s.now())
	}
	return &doc
}

func (s *Store) save(ctx context.Context, doc *Document) {
	if s.backend == nil || doc == nil {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		s.log.Warn("progress marshal failed", "error", err)
		return
	}
	if err := s.backend.Put(ctx, StorageKey, data); err != nil {
		s.log.Warn("progress save failed", "error", err)
	}
}

func (s *Store) update(ctx context.Context, fn func(doc *Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.load(ctx)
	fn(doc)
	s.save(ctx, doc)
}

// MarkWordMastered adds wordID to the unit's mastered words and removes it
// from review. totalWordsLearned grows only when the word is new.
func (s *Store) MarkWordMastered(ctx context.Context, gradeID, unitID, wordID string) {
	s.update(ctx, func(doc *Document) {
		fc := &doc.unit(gradeID, unitID).Vocabulary.FlashcardProgress
		if !slices.Contains(fc.MasteredWords, wordID) {
			fc.MasteredWords = append(fc.MasteredWords, wordID)
			doc.TotalWordsLearned++
		}
		fc.ReviewWords = slices.DeleteFunc(fc.ReviewWords, func(id string) bool { return id == wordID })
	})
}

// MarkWordForReview adds wordID to the review words unless it is already
// mastered or under review.
func (s *Store) MarkWordForReview(ctx context.Context, gradeID, unitID, wordID string) {
	s.update(ctx, func(doc *Document) {
		fc := &doc.unit(gradeID, unitID).Vocabulary.FlashcardProgress
		if slices.Contains(fc.MasteredWords, wordID) || slices.Contains(fc.ReviewWords, wordID) {
			return
		}
		fc.ReviewWords = append(fc.ReviewWords, wordID)
	})
}

// SaveFlashcard replaces both flashcard lists of the unit. When completed
// is set the flashcard set is marked complete. totalWordsLearned is set to
// len(mastered).
func (s *Store) SaveFlashcard(ctx context.Context, gradeID, unitID string, mastered, review []string, completed bool) {
	s.update(ctx, func(doc *Document) {
		now := s.now()
		u := doc.unit(gradeID, unitID)
		u.Vocabulary.FlashcardProgress = FlashcardState{
			MasteredWords: cloneList(mastered),
			ReviewWords:   cloneList(review),
			LastReview:    now.Round(0),
		}
		if completed {
			u.Vocabulary.CompletedSets = appendUnique(u.Vocabulary.CompletedSets, curriculum.SetFlashcard)
		}
		doc.TotalWordsLearned = len(mastered)
		doc.touchStudy(now)
	})
}

// MarkSetCompleted records a finished set: the set is added to its area's
// completed sets, its score is overwritten and wrongIDs are merged into the
// area's wrong problems. Grammar sets are filed under the grammar point
// encoded in setID.
func (s *Store) MarkSetCompleted(ctx context.Context, gradeID, unitID, setID string, activity curriculum.Activity, score int, wrongIDs []string) {
	var grammarID string
	if activity == curriculum.ActivityGrammar {
		ref, ok := curriculum.ParseSet(setID)
		if !ok || ref.GrammarID == "" {
			s.log.Warn("cannot decode grammar point from set id", "set_id", setID, "unit_id", unitID)
			return
		}
		grammarID = ref.GrammarID
	}
	if _, ok := curriculum.ParseActivity(string(activity)); !ok {
		s.log.Warn("unknown activity, set not recorded", "activity", activity, "set_id", setID)
		return
	}

	s.update(ctx, func(doc *Document) {
		doc.unit(gradeID, unitID).areaForWrite(activity, grammarID).complete(setID, score, wrongIDs)
		doc.touchStudy(s.now())
	})
}

// UpdateStreak records a study day without any other change.
func (s *Store) UpdateStreak(ctx context.Context) {
	s.update(ctx, func(doc *Document) {
		doc.touchStudy(s.now())
	})
}

// UnitProgress returns the stored progress of unitID, or nil if the unit
// was never touched.
func (s *Store) UnitProgress(ctx context.Context, unitID string) *UnitProgress {
	return s.Load(ctx).FindUnit(unitID)
}

// FlashcardState returns the unit's stored flashcard lists.
func (s *Store) FlashcardState(ctx context.Context, gradeID, unitID string) FlashcardState {
	u := s.Load(ctx).Unit(gradeID, unitID)
	if u == nil {
		return FlashcardState{}
	}
	return u.Vocabulary.FlashcardProgress
}

// TodayStats summarizes the learner's day.
type TodayStats struct {
	StreakDays    int
	WordsLearned  int
	CompletedSets int
	AverageScore  int
}

// TodayStats returns the stats shown on the home screen. Everything except
// the streak is zero unless the learner studied today.
func (s *Store) TodayStats(ctx context.Context) TodayStats {
	doc := s.Load(ctx)
	stats := TodayStats{StreakDays: doc.StreakDays}
	if doc.LastStudyDate != s.now().Format(dateLayout) {
		return stats
	}

	stats.WordsLearned = doc.TotalWordsLearned
	var sum, n int
	visit := func(a *AreaProgress) {
		if a == nil {
			return
		}
		stats.CompletedSets += len(a.CompletedSets)
		for _, score := range a.Scores {
			sum += score
			n++
		}
	}
	for _, g := range doc.Grades {
		if g == nil {
			continue
		}
		for _, u := range g.Units {
			if u == nil {
				continue
			}
			visit(&u.Vocabulary.AreaProgress)
			visit(&u.Reading)
			for _, a := range u.Grammar {
				visit(a)
			}
		}
	}
	if n > 0 {
		stats.AverageScore = int(math.Round(float64(sum) / float64(n)))
	}
	return stats
}

func cloneList(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}
