package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/MLR-5819/FSND-Fyyur/internal/errors"
	"github.com/MLR-5819/FSND-Fyyur/internal/logger"
	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

// ListVenues - GET /venues
func (h *Handlers) ListVenues(c *gin.Context) {
	areas, err := h.venues.ListAreas(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list venues", err)
		return
	}
	h.render(c, http.StatusOK, "venues.html", gin.H{"Title": "Venues", "Areas": areas})
}

// SearchVenues - POST /venues/search
func (h *Handlers) SearchVenues(c *gin.Context) {
	var form models.SearchForm
	_ = c.ShouldBind(&form)

	results, err := h.venues.Search(c.Request.Context(), form.SearchTerm)
	if err != nil {
		h.fail(c, "Failed to search venues", err)
		return
	}
	h.render(c, http.StatusOK, "search_venues.html", gin.H{
		"Title":      "Venue Search",
		"Results":    results,
		"SearchTerm": form.SearchTerm,
	})
}

// ShowVenue - GET /venues/:id
func (h *Handlers) ShowVenue(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	venue, err := h.venues.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to load venue", err)
		return
	}
	h.render(c, http.StatusOK, "show_venue.html", gin.H{"Title": venue.Name, "Venue": venue})
}

func venueFormData(form models.VenueForm, errs map[string]string) gin.H {
	if errs == nil {
		errs = map[string]string{}
	}
	return gin.H{
		"Form":   form,
		"Errors": errs,
		"States": models.States,
		"Genres": models.GenreChoices,
	}
}

func newVenueData(form models.VenueForm, errs map[string]string) gin.H {
	data := venueFormData(form, errs)
	data["Title"] = "New Venue"
	data["Action"] = "/venues/create"
	data["Heading"] = "List a new venue"
	data["Submit"] = "Create Venue"
	return data
}

// CreateVenueForm - GET /venues/create
func (h *Handlers) CreateVenueForm(c *gin.Context) {
	h.render(c, http.StatusOK, "new_venue.html", newVenueData(models.VenueForm{}, nil))
}

// CreateVenueSubmission - POST /venues/create
func (h *Handlers) CreateVenueSubmission(c *gin.Context) {
	var form models.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "new_venue.html", newVenueData(form, bindError(err).Fields))
		return
	}

	venue := form.Venue()
	if err := h.venues.Create(c.Request.Context(), &venue); err != nil {
		if !h.flashPersistence(c, err) {
			h.fail(c, "Failed to create venue", err)
			return
		}
		redirect(c, "/")
		return
	}

	addFlash(c, flashInfo, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
	redirect(c, "/")
}

// EditVenueForm - GET /venues/:id/edit
func (h *Handlers) EditVenueForm(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	venue, err := h.venues.GetRecord(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to load venue", err)
		return
	}

	h.render(c, http.StatusOK, "edit_venue.html", editVenueData(id, models.VenueFormFrom(*venue), nil))
}

func editVenueData(id int64, form models.VenueForm, errs map[string]string) gin.H {
	data := venueFormData(form, errs)
	data["Title"] = "Edit Venue"
	data["ID"] = id
	data["Action"] = fmt.Sprintf("/venues/%d/edit", id)
	data["Heading"] = "Edit venue " + form.Name
	data["Submit"] = "Edit Venue"
	return data
}

// EditVenueSubmission - POST /venues/:id/edit
func (h *Handlers) EditVenueSubmission(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var form models.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "edit_venue.html", editVenueData(id, form, bindError(err).Fields))
		return
	}

	venue := form.Venue()
	venue.ID = id
	if err := h.venues.Update(c.Request.Context(), &venue); err != nil {
		if !h.flashPersistence(c, err) {
			h.fail(c, "Failed to update venue", err)
			return
		}
		redirect(c, fmt.Sprintf("/venues/%d", id))
		return
	}

	addFlash(c, flashInfo, fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
	redirect(c, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue - DELETE /venues/:id
func (h *Handlers) DeleteVenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "redirect": "/"})
		return
	}

	name, err := h.venues.Delete(c.Request.Context(), id)
	h.deleted(c, "Venue", name, err)
}

// deleted answers a DELETE request with JSON telling the page where to go next.
func (h *Handlers) deleted(c *gin.Context, record, name string, err error) {
	switch {
	case err == nil:
		addFlash(c, flashInfo, fmt.Sprintf("%s %s was successfully deleted!", record, name))
		c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/"})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "redirect": "/"})
	case h.flashPersistence(c, err):
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "redirect": "/"})
	default:
		logger.WithContext(c.Request.Context()).Error("Failed to delete record", "record", record, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "redirect": "/"})
	}
}

// flashPersistence sets the failure notice when err is a PersistenceError.
func (h *Handlers) flashPersistence(c *gin.Context, err error) bool {
	var pe *apperrors.PersistenceError
	if !errors.As(err, &pe) {
		return false
	}
	addFlash(c, flashError, pe.Notice())
	return true
}
