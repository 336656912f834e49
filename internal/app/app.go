// Package app wires the dataset, the question registry and the read loop
// together. An App is built once per process; nothing in it changes after New.
package app

import (
	"fmt"
	"log"

	"github.com/corey/rankbot/data"
	"github.com/corey/rankbot/internal/adapters/bbolt"
	"github.com/corey/rankbot/internal/domain/dataset"
	"github.com/corey/rankbot/internal/domain/query"
	"github.com/corey/rankbot/internal/domain/text"
	"github.com/google/uuid"
)

// Dataset sources. Any other value is a path to a file or directory.
const (
	SourceEmbedded = "embedded"
	SourceBolt     = "bolt"
)

// Defaults applied by New for empty Config fields.
const (
	DefaultSnapshot = "default"
	DefaultPrompt   = "> "
	DefaultFarewell = "Goodbye!"
)

// Config controls where the dataset comes from and how the loop talks.
type Config struct {
	Source   string      // SourceEmbedded (default), SourceBolt, or a path
	DBPath   string      // bbolt file, required for SourceBolt
	Snapshot string      // snapshot name inside DBPath (default: "default")
	Prompt   string      // printed before each read; "" disables it
	Farewell string      // printed once when the loop ends (default: "Goodbye!")
	Color    bool        // ANSI colours in rendered answers
	Logger   *log.Logger // debug log; nil discards
}

// App is the top-level container wiring all components together.
type App struct {
	cfg       Config
	Dataset   *dataset.Dataset
	Registry  *query.Registry
	SessionID string
	log       *log.Logger
}

// New loads the dataset once and builds the default registry over it.
// Prompt is taken as given so callers can disable it for piped input.
func New(cfg Config) (*App, error) {
	if cfg.Source == "" {
		cfg.Source = SourceEmbedded
	}
	if cfg.Snapshot == "" {
		cfg.Snapshot = DefaultSnapshot
	}
	if cfg.Farewell == "" {
		cfg.Farewell = DefaultFarewell
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NewLogger(nil)
	}

	ds, err := LoadDataset(cfg)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	a := &App{
		cfg:       cfg,
		Dataset:   ds,
		Registry:  query.DefaultRegistry(ds),
		SessionID: uuid.NewString(),
		log:       logger,
	}
	a.log.Printf("session %s: dataset from %s (%d features), %d patterns",
		a.SessionID, cfg.Source, len(ds.FeatureNames()), a.Registry.Len())
	return a, nil
}

// LoadDataset resolves cfg.Source to a dataset.
func LoadDataset(cfg Config) (*dataset.Dataset, error) {
	switch cfg.Source {
	case "", SourceEmbedded:
		return dataset.LoadFS(data.FS, "v1")

	case SourceBolt:
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("bolt source needs a database path")
		}
		name := cfg.Snapshot
		if name == "" {
			name = DefaultSnapshot
		}
		store, err := bbolt.OpenReadOnly(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		raw, err := store.LoadDataset(name)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			return nil, fmt.Errorf("no snapshot %q in %s (run `rankbot import` first)", name, cfg.DBPath)
		}
		return dataset.New(raw)

	default:
		return dataset.LoadPath(cfg.Source)
	}
}

// Config returns the effective configuration.
func (a *App) Config() Config {
	return a.cfg
}

// Ask normalizes one line of input and searches the registry.
func (a *App) Ask(line string) query.Result {
	return a.search(text.Normalize(line))
}

func (a *App) search(tokens []string) query.Result {
	res := query.Search(a.Registry, tokens)
	if res.Status == query.Unrecognized {
		a.log.Printf("session %s: %q -> %s", a.SessionID, joinTokens(tokens), res.Status)
	} else {
		a.log.Printf("session %s: %q -> %s [%s] bindings=%q", a.SessionID, joinTokens(tokens), res.Status, res.Action, res.Bindings)
	}
	return res
}
