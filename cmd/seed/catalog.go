package main

import (
	"time"

	"github.com/MLR-5819/FSND-Fyyur/internal/models"
)

// sampleShow links records by their position in sampleVenues and sampleArtists.
type sampleShow struct {
	venue     int
	artist    int
	startTime time.Time
}

var sampleVenues = []models.Venue{
	{
		Name:               "The Musical Hop",
		Genres:             models.JoinGenres([]string{"Jazz", "Reggae", "Swing", "Classical", "Folk"}),
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?ixlib=rb-1.2.1&auto=format&fit=crop&w=400&q=60",
	},
	{
		Name:         "The Dueling Pianos Bar",
		Genres:       models.JoinGenres([]string{"Classical", "R&B", "Hip-Hop"}),
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?ixlib=rb-1.2.1&auto=format&fit=crop&w=750&q=80",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		Genres:       models.JoinGenres([]string{"Rock n Roll", "Jazz", "Classical", "Folk"}),
		Address:      "34 Whiskey Moore Ave",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "415-000-1234",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=747&q=80",
	},
}

var sampleArtists = []models.Artist{
	{
		Name:               "Guns N Petals",
		Genres:             models.JoinGenres([]string{"Rock n Roll"}),
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?ixlib=rb-1.2.1&auto=format&fit=crop&w=300&q=80",
	},
	{
		Name:         "Matt Quevedo",
		Genres:       models.JoinGenres([]string{"Jazz"}),
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=334&q=80",
	},
	{
		Name:      "The Wild Sax Band",
		Genres:    models.JoinGenres([]string{"Jazz", "Classical"}),
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?ixlib=rb-1.2.1&auto=format&fit=crop&w=794&q=80",
	},
}

var sampleShows = []sampleShow{
	{venue: 0, artist: 0, startTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{venue: 2, artist: 1, startTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, startTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, startTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, startTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}
