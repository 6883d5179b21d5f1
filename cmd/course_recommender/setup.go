package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/config"
	"github.com/jonathan/course-recommender/internal/db"
	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/textindex"
)

const connectTimeout = 10 * time.Second

// loadConfig resolves the configuration and initializes logging from it.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return cfg, nil
}

// connectOptional connects to the database when a URL is configured.
// A failed connection is logged and yields nil so the catalog falls back
// to the flat file.
func connectOptional(ctx context.Context, databaseURL string) *db.DB {
	if databaseURL == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		logging.Warn().Err(err).Msg("database unavailable, continuing without it")
		return nil
	}
	return database
}

// newHolder wires the catalog sources and loads the first snapshot.
func newHolder(ctx context.Context, cfg config.Config, database *db.DB) *catalog.Holder {
	var source catalog.CourseSource
	if database != nil {
		source = database
	}
	store := catalog.NewStore(source, cfg.CatalogPath)
	holder := catalog.NewHolder(store, textindex.Options{MaxFeatures: cfg.MaxFeatures})

	snap := holder.Reload(ctx)
	logging.Info().
		Int("courses", snap.Len()).
		Str("source", snap.Source).
		Bool("model_ready", snap.Ready()).
		Msg("catalog ready")
	return holder
}
