package service

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/repository"
)

type ShowService struct {
	*core
}

func (s *ShowService) List(ctx context.Context) ([]models.ShowListing, error) {
	var rows []models.ShowRow
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		rows, err = repository.NewShowRepository(tx).ListAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	listings := make([]models.ShowListing, 0, len(rows))
	for _, r := range rows {
		listings = append(listings, models.ShowListing{
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       FormatTime(r.StartTime, "full"),
		})
	}
	return listings, nil
}

// Create lists a show. Unknown venue or artist ids fail with ErrInvalidReference inside a PersistenceError.
func (s *ShowService) Create(ctx context.Context, show *models.Show) error {
	show.StartTime = show.StartTime.UTC()

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return repository.NewShowRepository(tx).Create(ctx, show)
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to create show",
			"venue_id", show.VenueID, "artist_id", show.ArtistID, "error", err)
		return apperrors.NewPersistenceError("Show", "", "listed", err)
	}

	s.invalidate(ctx, cacheKeyAreas)
	s.publish(ctx, models.EventShowCreated, models.ShowCreatedEvent{
		ShowID:    show.ID,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
		Timestamp: s.clock(),
	})
	return nil
}

// Stats counts venues, artists and shows on either side of now.
func (s *ShowService) Stats(ctx context.Context) (*models.CatalogStats, error) {
	var stats *models.CatalogStats
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		stats, err = repository.NewShowRepository(tx).Stats(ctx, s.clock())
		return err
	})
	return stats, err
}
