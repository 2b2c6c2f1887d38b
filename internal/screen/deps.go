package screen

import (
	"context"

	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/logger"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/questions"
	"github.com/aidu/english/internal/speech"
	"github.com/aidu/english/internal/store"
	"github.com/aidu/english/internal/tutor"
)

// Attempts stores and lists finished quiz passes. store.AttemptRepo
// implements it.
type Attempts interface {
	Record(ctx context.Context, a store.Attempt) error
	Recent(ctx context.Context, opts store.QueryOpts) ([]store.Attempt, error)
}

// Deps is what screens need from the rest of the app. Only Catalog and
// Progress are required.
type Deps struct {
	Catalog   *curriculum.Catalog
	Progress  *progress.Store
	Questions questions.Source
	Attempts  Attempts
	Speaker   speech.Speaker
	Tutor     *tutor.Service
	Log       *logger.Logger
}

// WithDefaults fills the optional dependencies with working stand-ins.
func (d Deps) WithDefaults() Deps {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Questions == nil {
		d.Questions = questions.NewStaticSource()
	}
	if d.Speaker == nil {
		d.Speaker = speech.Nop{}
	}
	if d.Tutor == nil {
		d.Tutor = tutor.New(nil, tutor.DefaultConfig(), d.Log)
	}
	return d
}
