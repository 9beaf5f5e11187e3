package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
	"github.com/MLR-5819/FSND-Fyyur/internal/service"
)

// ListShows - GET /shows
func (h *Handlers) ListShows(c *gin.Context) {
	shows, err := h.shows.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list shows", err)
		return
	}
	h.render(c, http.StatusOK, "shows.html", gin.H{"Title": "Shows", "Shows": shows})
}

func showFormData(form models.ShowForm, errs map[string]string) gin.H {
	if errs == nil {
		errs = map[string]string{}
	}
	return gin.H{"Title": "New Show", "Form": form, "Errors": errs}
}

// CreateShowForm - GET /shows/create
func (h *Handlers) CreateShowForm(c *gin.Context) {
	h.render(c, http.StatusOK, "new_show.html", showFormData(models.ShowForm{}, nil))
}

// CreateShowSubmission - POST /shows/create
func (h *Handlers) CreateShowSubmission(c *gin.Context) {
	var form models.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "new_show.html", showFormData(form, bindError(err).Fields))
		return
	}

	// already checked by the datetime_any rule
	start, err := service.ParseStartTime(form.StartTime)
	if err != nil {
		h.render(c, http.StatusBadRequest, "new_show.html",
			showFormData(form, map[string]string{"start_time": fieldMessages["datetime_any"]}))
		return
	}

	show := models.Show{ArtistID: form.ArtistID, VenueID: form.VenueID, StartTime: start}
	if err := h.shows.Create(c.Request.Context(), &show); err != nil {
		if !h.flashPersistence(c, err) {
			h.fail(c, "Failed to create show", err)
			return
		}
		redirect(c, "/")
		return
	}

	addFlash(c, flashInfo, "Show was successfully listed!")
	redirect(c, "/")
}
