package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

// ListArtists - GET /artists
func (h *Handlers) ListArtists(c *gin.Context) {
	artists, err := h.artists.List(c.Request.Context())
	if err != nil {
		h.fail(c, "Failed to list artists", err)
		return
	}
	h.render(c, http.StatusOK, "artists.html", gin.H{"Title": "Artists", "Artists": artists})
}

// SearchArtists - POST /artists/search
func (h *Handlers) SearchArtists(c *gin.Context) {
	var form models.SearchForm
	_ = c.ShouldBind(&form)

	results, err := h.artists.Search(c.Request.Context(), form.SearchTerm)
	if err != nil {
		h.fail(c, "Failed to search artists", err)
		return
	}
	h.render(c, http.StatusOK, "search_artists.html", gin.H{
		"Title":      "Artist Search",
		"Results":    results,
		"SearchTerm": form.SearchTerm,
	})
}

// ShowArtist - GET /artists/:id
func (h *Handlers) ShowArtist(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	artist, err := h.artists.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to load artist", err)
		return
	}
	h.render(c, http.StatusOK, "show_artist.html", gin.H{"Title": artist.Name, "Artist": artist})
}

func artistFormData(form models.ArtistForm, errs map[string]string) gin.H {
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

func newArtistData(form models.ArtistForm, errs map[string]string) gin.H {
	data := artistFormData(form, errs)
	data["Title"] = "New Artist"
	data["Action"] = "/artists/create"
	data["Heading"] = "List a new artist"
	data["Submit"] = "Create Artist"
	return data
}

func editArtistData(id int64, form models.ArtistForm, errs map[string]string) gin.H {
	data := artistFormData(form, errs)
	data["Title"] = "Edit Artist"
	data["ID"] = id
	data["Action"] = fmt.Sprintf("/artists/%d/edit", id)
	data["Heading"] = "Edit artist " + form.Name
	data["Submit"] = "Edit Artist"
	return data
}

// CreateArtistForm - GET /artists/create
func (h *Handlers) CreateArtistForm(c *gin.Context) {
	h.render(c, http.StatusOK, "new_artist.html", newArtistData(models.ArtistForm{}, nil))
}

// CreateArtistSubmission - POST /artists/create
func (h *Handlers) CreateArtistSubmission(c *gin.Context) {
	var form models.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "new_artist.html", newArtistData(form, bindError(err).Fields))
		return
	}

	artist := form.Artist()
	if err := h.artists.Create(c.Request.Context(), &artist); err != nil {
		if !h.flashPersistence(c, err) {
			h.fail(c, "Failed to create artist", err)
			return
		}
		redirect(c, "/")
		return
	}

	addFlash(c, flashInfo, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
	redirect(c, "/")
}

// EditArtistForm - GET /artists/:id/edit
func (h *Handlers) EditArtistForm(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	artist, err := h.artists.GetRecord(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "Failed to load artist", err)
		return
	}
	h.render(c, http.StatusOK, "edit_artist.html", editArtistData(id, models.ArtistFormFrom(*artist), nil))
}

// EditArtistSubmission - POST /artists/:id/edit
func (h *Handlers) EditArtistSubmission(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var form models.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "edit_artist.html", editArtistData(id, form, bindError(err).Fields))
		return
	}

	artist := form.Artist()
	artist.ID = id
	if err := h.artists.Update(c.Request.Context(), &artist); err != nil {
		if !h.flashPersistence(c, err) {
			h.fail(c, "Failed to update artist", err)
			return
		}
		redirect(c, fmt.Sprintf("/artists/%d", id))
		return
	}

	addFlash(c, flashInfo, fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
	redirect(c, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist - DELETE /artists/:id
func (h *Handlers) DeleteArtist(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "redirect": "/"})
		return
	}

	name, err := h.artists.Delete(c.Request.Context(), id)
	h.deleted(c, "Artist", name, err)
}
