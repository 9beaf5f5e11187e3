package models

import "time"

// RecordSummary is a venue or artist with its upcoming show count.
type RecordSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues located in one city/state pair
type Area struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []RecordSummary `json:"venues"`
}

type SearchResult struct {
	Count int             `json:"count"`
	Data  []RecordSummary `json:"data"`
}

// ArtistSummary is an entry of the artists listing
type ArtistSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArtistShow is a show seen from a venue page.
type ArtistShow struct {
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show seen from an artist page.
type VenueShow struct {
	VenueID        int64  `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	Venue
	GenreNames         []string     `json:"genres"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	Artist
	GenreNames         []string    `json:"genres"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ShowListing is an entry of the shows page
type ShowListing struct {
	VenueID         int64  `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int64  `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueListing is a venue row of the grouped venues page before grouping.
type VenueListing struct {
	RecordSummary
	City  string
	State string
	// NextShow is the earliest upcoming start time, nil when nothing is upcoming.
	NextShow *time.Time
}
