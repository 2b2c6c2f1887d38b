package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidu/english/internal/app"
	"github.com/aidu/english/internal/curriculum"
	"github.com/aidu/english/internal/llm"
	"github.com/aidu/english/internal/logger"
	"github.com/aidu/english/internal/progress"
	"github.com/aidu/english/internal/questions"
	"github.com/aidu/english/internal/screen"
	"github.com/aidu/english/internal/speech"
	"github.com/aidu/english/internal/store"
	"github.com/aidu/english/internal/tutor"
)

// appEnv is what every command opens: the log, the database, the catalog
// and the progress store on top of it.
type appEnv struct {
	log      *logger.Logger
	store    *store.Store
	catalog  *curriculum.Catalog
	progress *progress.Store
}

func (e *appEnv) Close() {
	e.store.Close()
	e.log.Sync()
}

func openEnv(cmd *cobra.Command) (*appEnv, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath)

	catalog, err := loadCatalog(cmd, log)
	if err != nil {
		st.Close()
		return nil, err
	}

	return &appEnv{
		log:      log,
		store:    st,
		catalog:  catalog,
		progress: progress.NewStore(st.Blobs(), log),
	}, nil
}

// newLogger writes to the log file so output never lands on the TUI.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv("AIDU_LOG_LEVEL")
	}
	file, err := logger.DefaultFile()
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	log, err := logger.New(logger.Options{Mode: os.Getenv("AIDU_LOG_MODE"), Level: level, File: file})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// loadCatalog returns the built-in catalog plus one custom unit per --words
// file.
func loadCatalog(cmd *cobra.Command, log *logger.Logger) (*curriculum.Catalog, error) {
	catalog := curriculum.Default()
	paths, _ := cmd.Flags().GetStringSlice("words")
	for i, path := range paths {
		words, err := curriculum.LoadWordList(path)
		if err != nil {
			return nil, fmt.Errorf("import word list: %w", err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if err := catalog.AddUnit(curriculum.CustomUnit(name, i+1, words)); err != nil {
			return nil, fmt.Errorf("import word list %s: %w", path, err)
		}
		log.Info("word list imported", "path", path, "words", len(words))
	}
	return catalog, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.Close()

	events := env.store.Events()
	provider, err := llm.NewProviderFromEnv(ctx, env.log, events)
	if err != nil {
		env.log.Warn("LLM provider unavailable, using built-in questions", "error", err)
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Built-in questions will be used.")
	}

	deps := screen.Deps{
		Catalog:   env.catalog,
		Progress:  env.progress,
		Questions: questions.New(provider, env.log),
		Attempts:  env.store.Attempts(),
		Speaker:   speech.New(speech.ConfigFromEnv(), env.log),
		Tutor:     tutor.New(provider, tutor.DefaultConfig(), env.log),
		Log:       env.log,
	}
	return app.Run(app.Options{Deps: deps, SkipWelcome: skipWelcome})
}
