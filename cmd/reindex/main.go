package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/config"
	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/repository"
	"github.com/MLR-5819/FSND-Fyyur/internal/search"
)

type indexer interface {
	Reset(ctx context.Context) error
	Index(ctx context.Context, doc search.Document) error
}

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "Give up after this long")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Starting search reindex", "index", cfg.Elasticsearch.Index)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	es, err := search.NewElasticsearchClient(cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to connect to Elasticsearch", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := reindex(ctx, repository.NewRepositories(db), es); err != nil {
		logger.Fatal("Reindex failed", "error", err)
	}

	slog.Info("Reindex completed successfully")
}

// reindex drops the index and loads every venue and artist back into it.
func reindex(ctx context.Context, repos *repository.Repositories, idx indexer) error {
	start := time.Now()

	venues, err := repos.Venues.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}
	artists, err := repos.Artists.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load artists: %w", err)
	}

	if err := idx.Reset(ctx); err != nil {
		return err
	}

	for _, v := range venues {
		if err := idx.Index(ctx, search.VenueDocument(v)); err != nil {
			return fmt.Errorf("failed to index venue %d: %w", v.ID, err)
		}
	}
	for _, a := range artists {
		if err := idx.Index(ctx, search.ArtistDocument(a)); err != nil {
			return fmt.Errorf("failed to index artist %d: %w", a.ID, err)
		}
	}

	slog.Info("Indexed catalog",
		"venues", len(venues), "artists", len(artists), "duration", time.Since(start))
	return nil
}
