package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGenres(t *testing.T) {
	assert.Nil(t, SplitGenres(""))
	assert.Equal(t, []string{"Jazz", "Reggae", "Swing"}, SplitGenres("Jazz, Reggae,,Swing "))
	assert.Equal(t, "Jazz,Folk", JoinGenres([]string{"Jazz", "Folk"}))
}

func TestParseFlexibleBool(t *testing.T) {
	for _, v := range []string{"y", "on", "true", "1", "YES"} {
		b, err := ParseFlexibleBool(v)
		require.NoError(t, err, v)
		assert.True(t, b.Bool(), v)
	}
	for _, v := range []string{"", "off", "false", "0", "n"} {
		b, err := ParseFlexibleBool(v)
		require.NoError(t, err, v)
		assert.False(t, b.Bool(), v)
	}
	_, err := ParseFlexibleBool("maybe")
	assert.Error(t, err)
}

func TestVenueFormRoundTrip(t *testing.T) {
	form := VenueForm{
		Name:          " The Musical Hop ",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Genres:        []string{"Jazz", "Folk"},
		SeekingTalent: "y",
	}
	v := form.Venue()
	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "Jazz,Folk", v.Genres)
	assert.True(t, v.SeekingTalent)

	back := VenueFormFrom(v)
	assert.Equal(t, []string{"Jazz", "Folk"}, back.Genres)
	assert.Equal(t, "y", back.SeekingTalent)
}

func TestChoices(t *testing.T) {
	assert.True(t, IsState("CA"))
	assert.False(t, IsState("ZZ"))
	assert.True(t, IsGenre("Rock n Roll"))
	assert.False(t, IsGenre("rock"))
}

func TestArtistFormTrimsText(t *testing.T) {
	a := ArtistForm{Name: "\tGuns N Petals ", City: " San Francisco", State: "CA"}.Artist()
	assert.Equal(t, "Guns N Petals", a.Name)
	assert.Equal(t, "San Francisco", a.City)
}
