package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/config"
	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/repository"
)

var (
	clearExisting = flag.Bool("clear", false, "Remove every venue, artist and show before seeding")
	dryRun        = flag.Bool("dry-run", false, "Show what would be inserted without making changes")
)

func main() {
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	slog.Info("Starting catalog seed...")

	if *dryRun {
		describe()
		return
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err = db.WithTx(ctx, func(tx *sql.Tx) error {
		return seed(ctx, repository.NewRepositories(tx), *clearExisting)
	})
	if err != nil {
		logger.Fatal("Failed to seed catalog", "error", err)
	}

	slog.Info("Catalog seeded successfully! Run reindex if search is enabled.")
}

func describe() {
	for _, v := range sampleVenues {
		slog.Info("Would insert venue", "name", v.Name, "city", v.City, "state", v.State)
	}
	for _, a := range sampleArtists {
		slog.Info("Would insert artist", "name", a.Name, "city", a.City, "state", a.State)
	}
	for _, s := range sampleShows {
		slog.Info("Would insert show",
			"venue", sampleVenues[s.venue].Name,
			"artist", sampleArtists[s.artist].Name,
			"start_time", s.startTime)
	}
}

// seed inserts the sample catalog through repos, which should share one transaction.
func seed(ctx context.Context, repos *repository.Repositories, clear bool) error {
	if clear {
		slog.Info("Clearing existing catalog")
		if err := repos.Truncate(ctx); err != nil {
			return err
		}
	}

	venueIDs := make([]int64, len(sampleVenues))
	for i := range sampleVenues {
		v := sampleVenues[i]
		if err := repos.Venues.Create(ctx, &v); err != nil {
			return fmt.Errorf("failed to insert venue %q: %w", v.Name, err)
		}
		venueIDs[i] = v.ID
	}

	artistIDs := make([]int64, len(sampleArtists))
	for i := range sampleArtists {
		a := sampleArtists[i]
		if err := repos.Artists.Create(ctx, &a); err != nil {
			return fmt.Errorf("failed to insert artist %q: %w", a.Name, err)
		}
		artistIDs[i] = a.ID
	}

	for _, s := range sampleShows {
		show := models.Show{VenueID: venueIDs[s.venue], ArtistID: artistIDs[s.artist], StartTime: s.startTime}
		if err := repos.Shows.Create(ctx, &show); err != nil {
			return fmt.Errorf("failed to insert show: %w", err)
		}
	}

	slog.Info("Inserted sample catalog",
		"venues", len(sampleVenues), "artists", len(sampleArtists), "shows", len(sampleShows))
	return nil
}
