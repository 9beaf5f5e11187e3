package service

import (
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

func venueEvent(v *models.Venue, deleted bool, now time.Time) models.RecordChangedEvent {
	return models.RecordChangedEvent{
		Kind:      models.KindVenue,
		ID:        v.ID,
		Name:      v.Name,
		City:      v.City,
		State:     v.State,
		Genres:    v.GenreList(),
		Deleted:   deleted,
		Timestamp: now,
	}
}

func artistEvent(a *models.Artist, deleted bool, now time.Time) models.RecordChangedEvent {
	return models.RecordChangedEvent{
		Kind:      models.KindArtist,
		ID:        a.ID,
		Name:      a.Name,
		City:      a.City,
		State:     a.State,
		Genres:    a.GenreList(),
		Deleted:   deleted,
		Timestamp: now,
	}
}
