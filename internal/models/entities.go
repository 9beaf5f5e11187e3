package models

import (
	"strings"
	"time"
)

// Venue represents a venue in the system
type Venue struct {
	ID                 int64  `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	Genres             string `json:"genres" db:"genres"`
	Address            string `json:"address" db:"address"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Phone              string `json:"phone" db:"phone"`
	Website            string `json:"website" db:"website"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
	SeekingTalent      bool   `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
	ImageLink          string `json:"image_link" db:"image_link"`
}

// GenreList splits the stored comma-separated genres.
func (v Venue) GenreList() []string {
	return SplitGenres(v.Genres)
}

// Artist represents an artist in the system
type Artist struct {
	ID                 int64  `json:"id" db:"id"`
	Name               string `json:"name" db:"name"`
	Genres             string `json:"genres" db:"genres"`
	City               string `json:"city" db:"city"`
	State              string `json:"state" db:"state"`
	Phone              string `json:"phone" db:"phone"`
	Website            string `json:"website" db:"website"`
	ImageLink          string `json:"image_link" db:"image_link"`
	FacebookLink       string `json:"facebook_link" db:"facebook_link"`
	SeekingVenue       bool   `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string `json:"seeking_description" db:"seeking_description"`
}

func (a Artist) GenreList() []string {
	return SplitGenres(a.Genres)
}

// Show is a performance of one artist at one venue
type Show struct {
	ID        int64     `json:"id" db:"id"`
	VenueID   int64     `json:"venue_id" db:"venue_id"`
	ArtistID  int64     `json:"artist_id" db:"artist_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// ShowRow is a show joined with its venue and artist.
type ShowRow struct {
	ShowID          int64
	StartTime       time.Time
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
}

// CatalogStats holds row counts for the stats job.
type CatalogStats struct {
	Venues        int64 `json:"venues"`
	Artists       int64 `json:"artists"`
	UpcomingShows int64 `json:"upcoming_shows"`
	PastShows     int64 `json:"past_shows"`
}

func SplitGenres(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}

func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}
