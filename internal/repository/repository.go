package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/MLR-5819/FSND-Fyyur/internal/database"
	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

const foreignKeyViolation = "23503"

type Repositories struct {
	Venues  *VenueRepository
	Artists *ArtistRepository
	Shows   *ShowRepository
	q       database.Querier
}

// NewRepositories binds all repositories to q, which is usually a transaction.
func NewRepositories(q database.Querier) *Repositories {
	return &Repositories{
		Venues:  NewVenueRepository(q),
		Artists: NewArtistRepository(q),
		Shows:   NewShowRepository(q),
		q:       q,
	}
}

// Truncate removes every record and resets the id sequences.
func (r *Repositories) Truncate(ctx context.Context) error {
	if _, err := r.q.ExecContext(ctx, `TRUNCATE shows, artists, venues RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to truncate catalog: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// mapError translates driver errors into the application error set.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidReference, pqErr.Constraint)
	}
	return err
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// likePattern builds a substring pattern for ILIKE with the wildcards in term escaped.
func likePattern(term string) string {
	escaped := make([]rune, 0, len(term)+2)
	for _, r := range term {
		if r == '\\' || r == '%' || r == '_' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return "%" + string(escaped) + "%"
}

func scanSummaries(rows *sql.Rows) ([]models.RecordSummary, error) {
	defer rows.Close()

	var out []models.RecordSummary
	for rows.Next() {
		var s models.RecordSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
