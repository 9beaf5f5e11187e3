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

type ArtistService struct {
	*core
}

// List returns every artist ordered by name.
func (s *ArtistService) List(ctx context.Context) ([]models.ArtistSummary, error) {
	var artists []models.ArtistSummary
	if s.cached(ctx, cacheKeyArtists, &artists) {
		return artists, nil
	}

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		artists, err = repository.NewArtistRepository(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}

	s.store(ctx, cacheKeyArtists, artists)
	return artists, nil
}

func (s *ArtistService) Search(ctx context.Context, term string) (*models.SearchResult, error) {
	var results []models.RecordSummary

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		repo := repository.NewArtistRepository(tx)
		var err error
		if ids, ok := s.searchIDs(ctx, models.KindArtist, term); ok {
			results, err = repo.SummariesByIDs(ctx, ids, s.clock())
			return err
		}
		results, err = repo.Search(ctx, term, s.clock())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	return newSearchResult(results), nil
}

func (s *ArtistService) Get(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	var detail *models.ArtistDetail

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		repos := repository.NewRepositories(tx)
		artist, err := repos.Artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		rows, err := repos.Shows.ListByArtist(ctx, id)
		if err != nil {
			return err
		}

		past, upcoming := partition(rows, s.clock())
		detail = &models.ArtistDetail{
			Artist:             *artist,
			GenreNames:         artist.GenreList(),
			PastShows:          venueShows(past),
			UpcomingShows:      venueShows(upcoming),
			PastShowsCount:     len(past),
			UpcomingShowsCount: len(upcoming),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return detail, nil
}

func venueShows(rows []models.ShowRow) []models.VenueShow {
	shows := make([]models.VenueShow, 0, len(rows))
	for _, r := range rows {
		shows = append(shows, models.VenueShow{
			VenueID:        r.VenueID,
			VenueName:      r.VenueName,
			VenueImageLink: r.VenueImageLink,
			StartTime:      FormatTime(r.StartTime, "medium"),
		})
	}
	return shows
}

func (s *ArtistService) GetRecord(ctx context.Context, id int64) (*models.Artist, error) {
	var artist *models.Artist
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		artist, err = repository.NewArtistRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return artist, nil
}

func (s *ArtistService) Create(ctx context.Context, a *models.Artist) error {
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return repository.NewArtistRepository(tx).Create(ctx, a)
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to create artist", "name", a.Name, "error", err)
		return apperrors.NewPersistenceError("Artist", a.Name, "listed", err)
	}

	s.invalidate(ctx, cacheKeyArtists)
	s.publish(ctx, models.EventArtistCreated, artistEvent(a, false, s.clock()))
	return nil
}

func (s *ArtistService) Update(ctx context.Context, a *models.Artist) error {
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return repository.NewArtistRepository(tx).Update(ctx, a)
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to update artist", "id", a.ID, "error", err)
		return apperrors.NewPersistenceError("Artist", a.Name, "updated", err)
	}

	s.invalidate(ctx, cacheKeyArtists)
	s.publish(ctx, models.EventArtistUpdated, artistEvent(a, false, s.clock()))
	return nil
}

// Delete removes the artist and its shows.
func (s *ArtistService) Delete(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		name, err = repository.NewArtistRepository(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to delete artist", "id", id, "error", err)
		return "", apperrors.NewPersistenceError("Artist", name, "deleted", err)
	}

	s.invalidate(ctx, cacheKeyArtists, cacheKeyAreas)
	s.publish(ctx, models.EventArtistDeleted, artistEvent(&models.Artist{ID: id, Name: name}, true, s.clock()))
	return name, nil
}
