package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

type mockVenues struct {
	mock.Mock
}

func (m *mockVenues) ListAreas(ctx context.Context) ([]models.Area, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]models.Area)
	return areas, args.Error(1)
}

func (m *mockVenues) Search(ctx context.Context, term string) (*models.SearchResult, error) {
	args := m.Called(ctx, term)
	res, _ := args.Get(0).(*models.SearchResult)
	return res, args.Error(1)
}

func (m *mockVenues) Get(ctx context.Context, id int64) (*models.VenueDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.VenueDetail)
	return d, args.Error(1)
}

func (m *mockVenues) GetRecord(ctx context.Context, id int64) (*models.Venue, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*models.Venue)
	return v, args.Error(1)
}

func (m *mockVenues) Create(ctx context.Context, v *models.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVenues) Update(ctx context.Context, v *models.Venue) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVenues) Delete(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockArtists struct {
	mock.Mock
}

func (m *mockArtists) List(ctx context.Context) ([]models.ArtistSummary, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.ArtistSummary)
	return list, args.Error(1)
}

func (m *mockArtists) Search(ctx context.Context, term string) (*models.SearchResult, error) {
	args := m.Called(ctx, term)
	res, _ := args.Get(0).(*models.SearchResult)
	return res, args.Error(1)
}

func (m *mockArtists) Get(ctx context.Context, id int64) (*models.ArtistDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.ArtistDetail)
	return d, args.Error(1)
}

func (m *mockArtists) GetRecord(ctx context.Context, id int64) (*models.Artist, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*models.Artist)
	return a, args.Error(1)
}

func (m *mockArtists) Create(ctx context.Context, a *models.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArtists) Update(ctx context.Context, a *models.Artist) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArtists) Delete(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockShows struct {
	mock.Mock
}

func (m *mockShows) List(ctx context.Context) ([]models.ShowListing, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]models.ShowListing)
	return list, args.Error(1)
}

func (m *mockShows) Create(ctx context.Context, s *models.Show) error {
	return m.Called(ctx, s).Error(0)
}
