package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the page routes and the 404 fallback.
func (h *Handlers) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)

	venues := r.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/create", h.CreateVenueForm)
		venues.POST("/create", h.CreateVenueSubmission)
		venues.GET("/:id", h.ShowVenue)
		venues.DELETE("/:id", h.DeleteVenue)
		venues.GET("/:id/edit", h.EditVenueForm)
		venues.POST("/:id/edit", h.EditVenueSubmission)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", h.ListArtists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/create", h.CreateArtistForm)
		artists.POST("/create", h.CreateArtistSubmission)
		artists.GET("/:id", h.ShowArtist)
		artists.DELETE("/:id", h.DeleteArtist)
		artists.GET("/:id/edit", h.EditArtistForm)
		artists.POST("/:id/edit", h.EditArtistSubmission)
	}

	shows := r.Group("/shows")
	{
		shows.GET("", h.ListShows)
		shows.GET("/create", h.CreateShowForm)
		shows.POST("/create", h.CreateShowSubmission)
	}

	r.NoRoute(h.NotFound)
}
