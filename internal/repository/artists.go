package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

const artistColumns = `id, name, genres, city, state, phone, website, image_link, facebook_link,
		seeking_venue, seeking_description`

type ArtistRepository struct {
	q database.Querier
}

func NewArtistRepository(q database.Querier) *ArtistRepository {
	return &ArtistRepository{q: q}
}

func scanArtist(row rowScanner) (*models.Artist, error) {
	a := &models.Artist{}
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Genres,
		&a.City,
		&a.State,
		&a.Phone,
		&a.Website,
		&a.ImageLink,
		&a.FacebookLink,
		&a.SeekingVenue,
		&a.SeekingDescription,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *ArtistRepository) Create(ctx context.Context, a *models.Artist) error {
	query := `
		INSERT INTO artists (name, genres, city, state, phone, website, image_link, facebook_link,
			seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.q.QueryRowContext(ctx, query,
		a.Name, a.Genres, a.City, a.State, a.Phone, a.Website, a.ImageLink, a.FacebookLink,
		a.SeekingVenue, a.SeekingDescription,
	).Scan(&a.ID)

	return mapError(err)
}

func (r *ArtistRepository) Update(ctx context.Context, a *models.Artist) error {
	query := `
		UPDATE artists
		SET name = $1, genres = $2, city = $3, state = $4, phone = $5, website = $6,
			image_link = $7, facebook_link = $8, seeking_venue = $9, seeking_description = $10
		WHERE id = $11`

	res, err := r.q.ExecContext(ctx, query,
		a.Name, a.Genres, a.City, a.State, a.Phone, a.Website, a.ImageLink, a.FacebookLink,
		a.SeekingVenue, a.SeekingDescription, a.ID,
	)
	if err != nil {
		return mapError(err)
	}
	return expectAffected(res)
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	a, err := scanArtist(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.q.QueryRowContext(ctx, `DELETE FROM artists WHERE id = $1 RETURNING name`, id).Scan(&name)
	if err != nil {
		return "", mapError(err)
	}
	return name, nil
}

// List returns id and name of every artist ordered by name.
func (r *ArtistRepository) List(ctx context.Context) ([]models.ArtistSummary, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name FROM artists ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer rows.Close()

	var artists []models.ArtistSummary
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *ArtistRepository) Search(ctx context.Context, term string, now time.Time) ([]models.RecordSummary, error) {
	query := `
		SELECT a.id, a.name, COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1 ESCAPE '\'
		GROUP BY a.id
		ORDER BY a.name`

	rows, err := r.q.QueryContext(ctx, query, likePattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return scanSummaries(rows)
}

func (r *ArtistRepository) SummariesByIDs(ctx context.Context, ids []int64, now time.Time) ([]models.RecordSummary, error) {
	query := `
		SELECT a.id, a.name, COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.id = ANY($1)
		GROUP BY a.id
		ORDER BY a.name`

	rows, err := r.q.QueryContext(ctx, query, pq.Array(ids), now)
	if err != nil {
		return nil, fmt.Errorf("failed to load artists: %w", err)
	}
	return scanSummaries(rows)
}

func (r *ArtistRepository) All(ctx context.Context) ([]models.Artist, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, *a)
	}
	return artists, rows.Err()
}
