package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

func newMock(t *testing.T) (*Repositories, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewRepositories(db), mock
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%hop%", likePattern("hop"))
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, `%50\% off\_now%`, likePattern("50% off_now"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), apperrors.ErrNotFound)

	fk := &pq.Error{Code: "23503", Constraint: "shows_venue_id_fkey"}
	err := mapError(fk)
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
	assert.Contains(t, err.Error(), "shows_venue_id_fkey")

	other := &pq.Error{Code: "23505"}
	assert.Equal(t, error(other), mapError(other))
}

func TestVenueCreate(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO venues").
		WithArgs("The Musical Hop", "Jazz,Reggae", "1015 Folsom Street", "San Francisco", "CA",
			"123-123-1234", "", "", true, "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	v := &models.Venue{
		Name:          "The Musical Hop",
		Genres:        "Jazz,Reggae",
		Address:       "1015 Folsom Street",
		City:          "San Francisco",
		State:         "CA",
		Phone:         "123-123-1234",
		SeekingTalent: true,
	}
	require.NoError(t, repos.Venues.Create(context.Background(), v))
	assert.Equal(t, int64(1), v.ID)
}

func TestVenueUpdateMissing(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectExec("UPDATE venues").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repos.Venues.Update(context.Background(), &models.Venue{ID: 42, Name: "Gone"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVenueGetByIDNotFound(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectQuery("FROM venues WHERE id = \\$1").WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := repos.Venues.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVenueDelete(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1 RETURNING name")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Park Square Live Music & Coffee"))
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1 RETURNING name")).
		WithArgs(int64(3)).
		WillReturnError(sql.ErrNoRows)

	name, err := repos.Venues.Delete(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Park Square Live Music & Coffee", name)

	_, err = repos.Venues.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestVenueSearch(t *testing.T) {
	repos, mock := newMock(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("WHERE v.name ILIKE \\$1").
		WithArgs("%hop%", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}).
			AddRow(1, "The Musical Hop", 0))

	results, err := repos.Venues.Search(context.Background(), "hop", now)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Musical Hop", results[0].Name)
}

func TestVenueListWithUpcoming(t *testing.T) {
	repos, mock := newMock(t)
	now := time.Now().UTC()
	next := now.Add(48 * time.Hour)

	mock.ExpectQuery("FROM venues v").
		WithArgs(now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "city", "state", "num_upcoming_shows", "next_show"}).
			AddRow(3, "Park Square Live Music & Coffee", "San Francisco", "CA", 1, next).
			AddRow(1, "The Musical Hop", "San Francisco", "CA", 0, nil))

	listings, err := repos.Venues.ListWithUpcoming(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "San Francisco", listings[0].City)
	assert.Equal(t, 1, listings[0].NumUpcomingShows)
	require.NotNil(t, listings[0].NextShow)
	assert.True(t, next.Equal(*listings[0].NextShow))
	assert.Nil(t, listings[1].NextShow)
}

func TestArtistList(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectQuery("SELECT id, name FROM artists ORDER BY name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(4, "Guns N Petals").
			AddRow(5, "Matt Quevedo").
			AddRow(6, "The Wild Sax Band"))

	artists, err := repos.Artists.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, artists, 3)
	assert.Equal(t, "The Wild Sax Band", artists[2].Name)
}

func TestArtistSummariesByIDs(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectQuery("WHERE a.id = ANY\\(\\$1\\)").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "num_upcoming_shows"}).
			AddRow(6, "The Wild Sax Band", 3))

	results, err := repos.Artists.SummariesByIDs(context.Background(), []int64{6}, time.Now())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 3, results[0].NumUpcomingShows)
}

func TestShowCreateRejectsUnknownReference(t *testing.T) {
	repos, mock := newMock(t)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO shows").
		WithArgs(start, int64(999), int64(4)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "shows_venue_id_fkey"})

	err := repos.Shows.Create(context.Background(), &models.Show{VenueID: 999, ArtistID: 4, StartTime: start})
	assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
}

func TestShowListByVenue(t *testing.T) {
	repos, mock := newMock(t)
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	mock.ExpectQuery("WHERE s.venue_id = \\$1").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "start_time", "id", "name", "image_link", "id", "name", "image_link"}).
			AddRow(1, start, 1, "The Musical Hop", "hop.jpg", 4, "Guns N Petals", "petals.jpg"))

	shows, err := repos.Shows.ListByVenue(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "Guns N Petals", shows[0].ArtistName)
	assert.Equal(t, start, shows[0].StartTime)
}

func TestShowStats(t *testing.T) {
	repos, mock := newMock(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM venues").
		WillReturnRows(sqlmock.NewRows([]string{"venues", "artists", "upcoming", "past"}).AddRow(3, 3, 3, 2))

	stats, err := repos.Shows.Stats(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.UpcomingShows)
	assert.Equal(t, int64(2), stats.PastShows)
}

func TestTruncate(t *testing.T) {
	repos, mock := newMock(t)
	mock.ExpectExec("TRUNCATE shows, artists, venues").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repos.Truncate(context.Background()))
}
