package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/repository"
)

type VenueService struct {
	*core
}

// areasEntry is the cached venues page. Upcoming counts change when a show
// starts, so the entry is only valid until the earliest upcoming start time.
type areasEntry struct {
	Areas      []models.Area `json:"areas"`
	ValidUntil *time.Time    `json:"valid_until,omitempty"`
}

func (e areasEntry) fresh(now time.Time) bool {
	return e.ValidUntil == nil || now.Before(*e.ValidUntil)
}

// ListAreas returns venues grouped by city and state, one group per location.
func (s *VenueService) ListAreas(ctx context.Context) ([]models.Area, error) {
	now := s.clock()

	var entry areasEntry
	if s.cached(ctx, cacheKeyAreas, &entry) && entry.fresh(now) {
		return entry.Areas, nil
	}

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		listings, err := repository.NewVenueRepository(tx).ListWithUpcoming(ctx, now)
		if err != nil {
			return err
		}
		entry = areasEntry{Areas: groupAreas(listings), ValidUntil: nextShow(listings)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	s.store(ctx, cacheKeyAreas, entry)
	return entry.Areas, nil
}

func nextShow(listings []models.VenueListing) *time.Time {
	var next *time.Time
	for _, l := range listings {
		if l.NextShow != nil && (next == nil || l.NextShow.Before(*next)) {
			next = l.NextShow
		}
	}
	return next
}

// groupAreas expects listings ordered by state and city.
func groupAreas(listings []models.VenueListing) []models.Area {
	areas := make([]models.Area, 0)
	index := make(map[[2]string]int)

	for _, l := range listings {
		key := [2]string{l.City, l.State}
		i, ok := index[key]
		if !ok {
			areas = append(areas, models.Area{City: l.City, State: l.State})
			i = len(areas) - 1
			index[key] = i
		}
		areas[i].Venues = append(areas[i].Venues, l.RecordSummary)
	}
	return areas
}

func (s *VenueService) Search(ctx context.Context, term string) (*models.SearchResult, error) {
	var results []models.RecordSummary

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		repo := repository.NewVenueRepository(tx)
		var err error
		if ids, ok := s.searchIDs(ctx, models.KindVenue, term); ok {
			results, err = repo.SummariesByIDs(ctx, ids, s.clock())
			return err
		}
		results, err = repo.Search(ctx, term, s.clock())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	return newSearchResult(results), nil
}

func newSearchResult(data []models.RecordSummary) *models.SearchResult {
	if data == nil {
		data = []models.RecordSummary{}
	}
	return &models.SearchResult{Count: len(data), Data: data}
}

// Get builds the venue page with its shows split into past and upcoming.
func (s *VenueService) Get(ctx context.Context, id int64) (*models.VenueDetail, error) {
	var detail *models.VenueDetail

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		repos := repository.NewRepositories(tx)
		venue, err := repos.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		rows, err := repos.Shows.ListByVenue(ctx, id)
		if err != nil {
			return err
		}

		past, upcoming := partition(rows, s.clock())
		detail = &models.VenueDetail{
			Venue:              *venue,
			GenreNames:         venue.GenreList(),
			PastShows:          artistShows(past),
			UpcomingShows:      artistShows(upcoming),
			PastShowsCount:     len(past),
			UpcomingShowsCount: len(upcoming),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %d: %w", id, err)
	}
	return detail, nil
}

func artistShows(rows []models.ShowRow) []models.ArtistShow {
	shows := make([]models.ArtistShow, 0, len(rows))
	for _, r := range rows {
		shows = append(shows, models.ArtistShow{
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       FormatTime(r.StartTime, "medium"),
		})
	}
	return shows
}

// GetRecord loads the raw venue for the edit form.
func (s *VenueService) GetRecord(ctx context.Context, id int64) (*models.Venue, error) {
	var venue *models.Venue
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		venue, err = repository.NewVenueRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get venue %d: %w", id, err)
	}
	return venue, nil
}

func (s *VenueService) Create(ctx context.Context, v *models.Venue) error {
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return repository.NewVenueRepository(tx).Create(ctx, v)
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to create venue", "name", v.Name, "error", err)
		return apperrors.NewPersistenceError("Venue", v.Name, "listed", err)
	}

	s.invalidate(ctx, cacheKeyAreas)
	s.publish(ctx, models.EventVenueCreated, venueEvent(v, false, s.clock()))
	return nil
}

func (s *VenueService) Update(ctx context.Context, v *models.Venue) error {
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		return repository.NewVenueRepository(tx).Update(ctx, v)
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to update venue", "id", v.ID, "error", err)
		return apperrors.NewPersistenceError("Venue", v.Name, "updated", err)
	}

	s.invalidate(ctx, cacheKeyAreas)
	s.publish(ctx, models.EventVenueUpdated, venueEvent(v, false, s.clock()))
	return nil
}

// Delete removes the venue and its shows, returning the venue name.
func (s *VenueService) Delete(ctx context.Context, id int64) (string, error) {
	var name string
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		name, err = repository.NewVenueRepository(tx).Delete(ctx, id)
		return err
	})
	if err != nil {
		logger.WithContext(ctx).Error("Failed to delete venue", "id", id, "error", err)
		return "", apperrors.NewPersistenceError("Venue", name, "deleted", err)
	}

	s.invalidate(ctx, cacheKeyAreas)
	s.publish(ctx, models.EventVenueDeleted, venueEvent(&models.Venue{ID: id, Name: name}, true, s.clock()))
	return name, nil
}
