package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

const showRowSelect = `
		SELECT s.id, s.start_time, v.id, v.name, v.image_link, a.id, a.name, a.image_link
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id`

type ShowRepository struct {
	q database.Querier
}

func NewShowRepository(q database.Querier) *ShowRepository {
	return &ShowRepository{q: q}
}

// Create inserts a show. Unknown venue or artist ids yield ErrInvalidReference.
func (r *ShowRepository) Create(ctx context.Context, s *models.Show) error {
	query := `
		INSERT INTO shows (start_time, venue_id, artist_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.q.QueryRowContext(ctx, query, s.StartTime, s.VenueID, s.ArtistID).Scan(&s.ID)
	return mapError(err)
}

func (r *ShowRepository) ListAll(ctx context.Context) ([]models.ShowRow, error) {
	return r.list(ctx, showRowSelect+` ORDER BY s.start_time, s.id`)
}

func (r *ShowRepository) ListByVenue(ctx context.Context, venueID int64) ([]models.ShowRow, error) {
	return r.list(ctx, showRowSelect+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *ShowRepository) ListByArtist(ctx context.Context, artistID int64) ([]models.ShowRow, error) {
	return r.list(ctx, showRowSelect+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *ShowRepository) list(ctx context.Context, query string, args ...any) ([]models.ShowRow, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	defer rows.Close()

	var shows []models.ShowRow
	for rows.Next() {
		var s models.ShowRow
		if err := rows.Scan(
			&s.ShowID,
			&s.StartTime,
			&s.VenueID,
			&s.VenueName,
			&s.VenueImageLink,
			&s.ArtistID,
			&s.ArtistName,
			&s.ArtistImageLink,
		); err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, s)
	}
	return shows, rows.Err()
}

// Stats counts catalog rows, splitting shows around now.
func (r *ShowRepository) Stats(ctx context.Context, now time.Time) (*models.CatalogStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM venues),
			(SELECT COUNT(*) FROM artists),
			(SELECT COUNT(*) FROM shows WHERE start_time > $1),
			(SELECT COUNT(*) FROM shows WHERE start_time <= $1)`

	stats := &models.CatalogStats{}
	err := r.q.QueryRowContext(ctx, query, now).Scan(
		&stats.Venues,
		&stats.Artists,
		&stats.UpcomingShows,
		&stats.PastShows,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}
	return stats, nil
}
