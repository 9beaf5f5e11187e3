package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

const venueColumns = `id, name, genres, address, city, state, phone, website, facebook_link,
		seeking_talent, seeking_description, image_link`

type VenueRepository struct {
	q database.Querier
}

func NewVenueRepository(q database.Querier) *VenueRepository {
	return &VenueRepository{q: q}
}

func scanVenue(row rowScanner) (*models.Venue, error) {
	v := &models.Venue{}
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Genres,
		&v.Address,
		&v.City,
		&v.State,
		&v.Phone,
		&v.Website,
		&v.FacebookLink,
		&v.SeekingTalent,
		&v.SeekingDescription,
		&v.ImageLink,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *VenueRepository) Create(ctx context.Context, v *models.Venue) error {
	query := `
		INSERT INTO venues (name, genres, address, city, state, phone, website, facebook_link,
			seeking_talent, seeking_description, image_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.q.QueryRowContext(ctx, query,
		v.Name, v.Genres, v.Address, v.City, v.State, v.Phone, v.Website, v.FacebookLink,
		v.SeekingTalent, v.SeekingDescription, v.ImageLink,
	).Scan(&v.ID)

	return mapError(err)
}

func (r *VenueRepository) Update(ctx context.Context, v *models.Venue) error {
	query := `
		UPDATE venues
		SET name = $1, genres = $2, address = $3, city = $4, state = $5, phone = $6,
			website = $7, facebook_link = $8, seeking_talent = $9, seeking_description = $10,
			image_link = $11
		WHERE id = $12`

	res, err := r.q.ExecContext(ctx, query,
		v.Name, v.Genres, v.Address, v.City, v.State, v.Phone, v.Website, v.FacebookLink,
		v.SeekingTalent, v.SeekingDescription, v.ImageLink, v.ID,
	)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	v, err := scanVenue(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return v, nil
}

// Delete removes the venue and returns its name. Its shows go with it.
func (r *VenueRepository) Delete(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.q.QueryRowContext(ctx, `DELETE FROM venues WHERE id = $1 RETURNING name`, id).Scan(&name)
	if err != nil {
		return "", mapError(err)
	}
	return name, nil
}

// ListWithUpcoming returns every venue with its count of shows after now and the
// start of the next one, ordered by state, city and name.
func (r *VenueRepository) ListWithUpcoming(ctx context.Context, now time.Time) ([]models.VenueListing, error) {
	query := `
		SELECT v.id, v.name, v.city, v.state,
			COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows,
			MIN(s.start_time) FILTER (WHERE s.start_time > $1) AS next_show
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.state, v.city, v.name`

	rows, err := r.q.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer rows.Close()

	var listings []models.VenueListing
	for rows.Next() {
		var l models.VenueListing
		var next sql.NullTime
		if err := rows.Scan(&l.ID, &l.Name, &l.City, &l.State, &l.NumUpcomingShows, &next); err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		if next.Valid {
			t := next.Time.UTC()
			l.NextShow = &t
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Search matches term case-insensitively anywhere in the venue name.
func (r *VenueRepository) Search(ctx context.Context, term string, now time.Time) ([]models.RecordSummary, error) {
	query := `
		SELECT v.id, v.name, COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1 ESCAPE '\'
		GROUP BY v.id
		ORDER BY v.name`

	rows, err := r.q.QueryContext(ctx, query, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}
	return scanSummaries(rows)
}

// SummariesByIDs loads search hits resolved by the search index.
func (r *VenueRepository) SummariesByIDs(ctx context.Context, ids []int64, now time.Time) ([]models.RecordSummary, error) {
	query := `
		SELECT v.id, v.name, COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.id = ANY($1)
		GROUP BY v.id
		ORDER BY v.name`

	rows, err := r.q.QueryContext(ctx, query, pq.Array(ids), now)
	if err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}
	return scanSummaries(rows)
}

// All returns full venue records, used to rebuild the search index.
func (r *VenueRepository) All(ctx context.Context) ([]models.Venue, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, *v)
	}
	return venues, rows.Err()
}
