package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

type VenueService interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	Search(ctx context.Context, term string) (*models.SearchResult, error)
	Get(ctx context.Context, id int64) (*models.VenueDetail, error)
	GetRecord(ctx context.Context, id int64) (*models.Venue, error)
	Create(ctx context.Context, v *models.Venue) error
	Update(ctx context.Context, v *models.Venue) error
	Delete(ctx context.Context, id int64) (string, error)
}

type ArtistService interface {
	List(ctx context.Context) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string) (*models.SearchResult, error)
	Get(ctx context.Context, id int64) (*models.ArtistDetail, error)
	GetRecord(ctx context.Context, id int64) (*models.Artist, error)
	Create(ctx context.Context, a *models.Artist) error
	Update(ctx context.Context, a *models.Artist) error
	Delete(ctx context.Context, id int64) (string, error)
}

type ShowService interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	Create(ctx context.Context, s *models.Show) error
}

type Handlers struct {
	venues  VenueService
	artists ArtistService
	shows   ShowService
}

func NewHandlers(venues VenueService, artists ArtistService, shows ShowService) *Handlers {
	return &Handlers{
		venues:  venues,
		artists: artists,
		shows:   shows,
	}
}

// Home - GET /
func (h *Handlers) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home.html", nil)
}

// NotFound renders the 404 page
func (h *Handlers) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not Found"})
}

// ServerError renders the 500 page
func (h *Handlers) ServerError(c *gin.Context) {
	h.render(c, http.StatusInternalServerError, "500.html", gin.H{"Title": "Server Error"})
}

// render adds pending notices to data and writes the page.
func (h *Handlers) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = popFlashes(c)
	c.HTML(status, page, data)
}

// fail maps a service error onto the 404 or 500 page.
func (h *Handlers) fail(c *gin.Context, msg string, err error) {
	if apperrors.IsNotFound(err) {
		h.NotFound(c)
		return
	}
	logger.WithContext(c.Request.Context()).Error(msg, "error", err)
	_ = c.Error(err)
	h.ServerError(c)
}

// idParam parses :id. Invalid ids render the 404 page.
func (h *Handlers) idParam(c *gin.Context) (int64, bool) {
	id, ok := parseID(c)
	if !ok {
		h.NotFound(c)
	}
	return id, ok
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// redirect uses 303 so a POST or DELETE is followed by a GET.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
