package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/web"
)

type testEnv struct {
	router  *gin.Engine
	venues  *mockVenues
	artists *mockArtists
	shows   *mockShows
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	env := &testEnv{venues: &mockVenues{}, artists: &mockArtists{}, shows: &mockShows{}}
	t.Cleanup(func() {
		env.venues.AssertExpectations(t)
		env.artists.AssertExpectations(t)
		env.shows.AssertExpectations(t)
	})

	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.Use(sessions.Sessions("fyyur_session", cookie.NewStore([]byte("test-secret"))))
	NewHandlers(env.venues, env.artists, env.shows).RegisterRoutes(r)
	env.router = r
	return env
}

func (e *testEnv) do(method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req, _ = http.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// follow renders the home page with the session cookie from w and returns the body.
func (e *testEnv) follow(w *httptest.ResponseRecorder) string {
	res := w.Result()
	defer res.Body.Close()
	return e.do(http.MethodGet, "/", nil, res.Cookies()...).Body.String()
}

func venueForm() url.Values {
	form := url.Values{}
	form.Set("name", "The Musical Hop")
	form.Set("city", "San Francisco")
	form.Set("state", "CA")
	form.Set("address", "1015 Folsom Street")
	form.Set("phone", "123-123-1234")
	form.Add("genres", "Jazz")
	form.Add("genres", "Reggae")
	form.Set("facebook_link", "https://www.facebook.com/TheMusicalHop")
	form.Set("seeking_talent", "y")
	return form
}

func TestHome(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fyyur")
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestListVenues(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("ListAreas", mock.Anything).Return([]models.Area{
		{City: "San Francisco", State: "CA", Venues: []models.RecordSummary{
			{ID: 1, Name: "The Musical Hop"},
			{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		}},
	}, nil)

	w := env.do(http.MethodGet, "/venues", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "San Francisco, CA")
	assert.Contains(t, body, `href="/venues/3"`)
	assert.Contains(t, body, "1 upcoming")
}

func TestListVenuesServiceFailure(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("ListAreas", mock.Anything).Return(nil, errors.New("connection refused"))

	w := env.do(http.MethodGet, "/venues", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Server Error")
}

func TestSearchVenues(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Search", mock.Anything, "hop").Return(&models.SearchResult{
		Count: 1,
		Data:  []models.RecordSummary{{ID: 1, Name: "The Musical Hop"}},
	}, nil)

	w := env.do(http.MethodPost, "/venues/search", url.Values{"search_term": {"hop"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Number of search results for "hop": 1`)
	assert.Contains(t, w.Body.String(), "The Musical Hop")
}

func TestShowVenue(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Get", mock.Anything, int64(1)).Return(&models.VenueDetail{
		Venue:      models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		GenreNames: []string{"Jazz"},
		PastShows: []models.ArtistShow{
			{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: "Tue 05, 21, 2019 9:30PM"},
		},
		PastShowsCount: 1,
	}, nil)

	w := env.do(http.MethodGet, "/venues/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "0 Upcoming Shows")
	assert.Contains(t, body, "1 Past Show")
	assert.Contains(t, body, "Guns N Petals")
	assert.Contains(t, body, "Tue 05, 21, 2019 9:30PM")
}

func TestShowVenueNotFound(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Get", mock.Anything, int64(9)).Return(nil, apperrors.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/venues/9", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodGet, "/venues/abc", nil).Code)
}

func TestCreateVenueForm(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/venues/create", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/venues/create"`)
}

func TestCreateVenueSuccess(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Create", mock.Anything, mock.MatchedBy(func(v *models.Venue) bool {
		return v.Name == "The Musical Hop" && v.Genres == "Jazz,Reggae" && v.SeekingTalent
	})).Return(nil)

	w := env.do(http.MethodPost, "/venues/create", venueForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, env.follow(w), "Venue The Musical Hop was successfully listed!")
}

func TestCreateVenuePersistenceFailure(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Create", mock.Anything, mock.Anything).
		Return(&apperrors.PersistenceError{Record: "Venue", Name: "The Musical Hop", Op: "listed", Err: errors.New("boom")})

	w := env.do(http.MethodPost, "/venues/create", venueForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, env.follow(w), "ERROR: Venue The Musical Hop could not be listed! Please try again")
}

func TestCreateVenueValidation(t *testing.T) {
	env := setupRouter(t)
	form := venueForm()
	form.Del("city")
	form.Set("state", "ZZ")
	form.Set("genres", "Polka")
	form.Set("facebook_link", "not a url")

	w := env.do(http.MethodPost, "/venues/create", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "This field is required.")
	assert.Contains(t, body, "Not a valid choice.")
	assert.Contains(t, body, "Invalid URL.")
	env.venues.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateVenueRejectsBlankName(t *testing.T) {
	env := setupRouter(t)
	form := venueForm()
	form.Set("name", "   ")

	w := env.do(http.MethodPost, "/venues/create", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "This field is required.")
	env.venues.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateArtistRejectsBlankCity(t *testing.T) {
	env := setupRouter(t)
	form := url.Values{}
	form.Set("name", "Matt Quevedo")
	form.Set("city", "\t ")
	form.Set("state", "NY")
	form.Add("genres", "Jazz")

	w := env.do(http.MethodPost, "/artists/create", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.artists.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEditVenueForm(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("GetRecord", mock.Anything, int64(1)).Return(&models.Venue{
		ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: "Jazz,Swing", Address: "1015 Folsom Street",
	}, nil)

	w := env.do(http.MethodGet, "/venues/1/edit", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="1015 Folsom Street"`)
	assert.Contains(t, body, `<option value="Jazz" selected>`)
}

func TestEditVenueSubmission(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Update", mock.Anything, mock.MatchedBy(func(v *models.Venue) bool {
		return v.ID == 1 && v.Name == "The Musical Hop"
	})).Return(nil)

	w := env.do(http.MethodPost, "/venues/1/edit", venueForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/venues/1", w.Header().Get("Location"))
	assert.Contains(t, env.follow(w), "Venue The Musical Hop was successfully updated!")
}

func TestEditVenueSubmissionNotFound(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Update", mock.Anything, mock.Anything).Return(apperrors.ErrNotFound)

	w := env.do(http.MethodPost, "/venues/42/edit", venueForm())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVenue(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Delete", mock.Anything, int64(3)).Return("Park Square Live Music & Coffee", nil).Once()
	env.venues.On("Delete", mock.Anything, int64(3)).Return("", apperrors.ErrNotFound).Once()

	w := env.do(http.MethodDelete, "/venues/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"redirect":"/"}`, w.Body.String())
	assert.Contains(t, env.follow(w), "Venue Park Square Live Music &amp; Coffee was successfully deleted!")

	w = env.do(http.MethodDelete, "/venues/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteVenueFailure(t *testing.T) {
	env := setupRouter(t)
	env.venues.On("Delete", mock.Anything, int64(1)).
		Return("", &apperrors.PersistenceError{Record: "Venue", Name: "The Musical Hop", Op: "deleted", Err: errors.New("boom")})

	w := env.do(http.MethodDelete, "/venues/1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, env.follow(w), "ERROR: Venue The Musical Hop could not be deleted! Please try again")
}

func TestListArtists(t *testing.T) {
	env := setupRouter(t)
	env.artists.On("List", mock.Anything).Return([]models.ArtistSummary{
		{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}, {ID: 6, Name: "The Wild Sax Band"},
	}, nil)

	w := env.do(http.MethodGet, "/artists", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Less(t, strings.Index(body, "Guns N Petals"), strings.Index(body, "The Wild Sax Band"))
}

func TestSearchArtists(t *testing.T) {
	env := setupRouter(t)
	env.artists.On("Search", mock.Anything, "band").Return(&models.SearchResult{
		Count: 1,
		Data:  []models.RecordSummary{{ID: 6, Name: "The Wild Sax Band", NumUpcomingShows: 3}},
	}, nil)

	w := env.do(http.MethodPost, "/artists/search", url.Values{"search_term": {"band"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Wild Sax Band")
	assert.Contains(t, w.Body.String(), "3 upcoming")
}

func TestShowArtist(t *testing.T) {
	env := setupRouter(t)
	env.artists.On("Get", mock.Anything, int64(6)).Return(&models.ArtistDetail{
		Artist: models.Artist{ID: 6, Name: "The Wild Sax Band", City: "San Francisco", State: "CA"},
		UpcomingShows: []models.VenueShow{
			{VenueID: 3, VenueName: "Park Square Live Music & Coffee", StartTime: "Sun 04, 01, 2035 8:00PM"},
		},
		UpcomingShowsCount: 1,
	}, nil)

	w := env.do(http.MethodGet, "/artists/6", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1 Upcoming Show")
	assert.Contains(t, w.Body.String(), `href="/venues/3"`)
}

func TestCreateArtistSuccess(t *testing.T) {
	env := setupRouter(t)
	env.artists.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Artist) bool {
		return a.Name == "Matt Quevedo" && a.Genres == "Jazz" && !a.SeekingVenue
	})).Return(nil)

	form := url.Values{}
	form.Set("name", "Matt Quevedo")
	form.Set("city", "New York")
	form.Set("state", "NY")
	form.Add("genres", "Jazz")

	w := env.do(http.MethodPost, "/artists/create", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, env.follow(w), "Artist Matt Quevedo was successfully listed!")
}

func TestEditArtistSubmissionFailure(t *testing.T) {
	env := setupRouter(t)
	env.artists.On("Update", mock.Anything, mock.Anything).
		Return(&apperrors.PersistenceError{Record: "Artist", Name: "Matt Quevedo", Op: "updated", Err: errors.New("boom")})

	form := url.Values{}
	form.Set("name", "Matt Quevedo")
	form.Set("city", "New York")
	form.Set("state", "NY")
	form.Add("genres", "Jazz")

	w := env.do(http.MethodPost, "/artists/5/edit", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/artists/5", w.Header().Get("Location"))
	assert.Contains(t, env.follow(w), "ERROR: Artist Matt Quevedo could not be updated! Please try again")
}

func TestDeleteArtist(t *testing.T) {
	env := setupRouter(t)
	env.artists.On("Delete", mock.Anything, int64(5)).Return("Matt Quevedo", nil)

	w := env.do(http.MethodDelete, "/artists/5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, env.follow(w), "Artist Matt Quevedo was successfully deleted!")
}

func TestListShows(t *testing.T) {
	env := setupRouter(t)
	env.shows.On("List", mock.Anything).Return([]models.ShowListing{{
		VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals",
		StartTime: "Tuesday May, 21, 2019 at 9:30PM",
	}}, nil)

	w := env.do(http.MethodGet, "/shows", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tuesday May, 21, 2019 at 9:30PM")
}

func TestCreateShowSuccess(t *testing.T) {
	env := setupRouter(t)
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	env.shows.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Show) bool {
		return s.ArtistID == 6 && s.VenueID == 3 && s.StartTime.Equal(want)
	})).Return(nil)

	form := url.Values{"artist_id": {"6"}, "venue_id": {"3"}, "start_time": {"2035-04-01 20:00:00"}}
	w := env.do(http.MethodPost, "/shows/create", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, env.follow(w), "Show was successfully listed!")
}

func TestCreateShowUnknownVenue(t *testing.T) {
	env := setupRouter(t)
	env.shows.On("Create", mock.Anything, mock.Anything).
		Return(&apperrors.PersistenceError{Record: "Show", Op: "listed", Err: apperrors.ErrInvalidReference})

	form := url.Values{"artist_id": {"6"}, "venue_id": {"999"}, "start_time": {"2035-04-01 20:00:00"}}
	w := env.do(http.MethodPost, "/shows/create", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, env.follow(w), "ERROR: Show could not be listed! Please try again")
}

func TestCreateShowValidation(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/shows/create", url.Values{"artist_id": {"6"}, "venue_id": {"3"}, "start_time": {"whenever"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Not a valid datetime value.")

	w = env.do(http.MethodPost, "/shows/create", url.Values{"artist_id": {"six"}, "venue_id": {"3"}, "start_time": {"2035-04-01"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.shows.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
