package models

import "time"

// NATS subjects
const (
	EventVenueCreated  = "venue.created"
	EventVenueUpdated  = "venue.updated"
	EventVenueDeleted  = "venue.deleted"
	EventArtistCreated = "artist.created"
	EventArtistUpdated = "artist.updated"
	EventArtistDeleted = "artist.deleted"
	EventShowCreated   = "show.created"
)

const (
	KindVenue  = "venue"
	KindArtist = "artist"
)

// RecordChangedEvent is published when a venue or artist is written.
type RecordChangedEvent struct {
	Kind      string    `json:"kind"`
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Genres    []string  `json:"genres,omitempty"`
	Deleted   bool      `json:"deleted"`
	Timestamp time.Time `json:"timestamp"`
}

// ShowCreatedEvent is published when a show is listed
type ShowCreatedEvent struct {
	ShowID    int64     `json:"show_id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
	Timestamp time.Time `json:"timestamp"`
}
