package models

import (
	"fmt"
	"strings"
)

// FlexibleBool accepts the values browsers and form libraries send for checkboxes.
type FlexibleBool bool

// ParseFlexibleBool treats an empty value as false.
func ParseFlexibleBool(s string) (FlexibleBool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		return true, nil
	case "", "false", "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}

func (fb FlexibleBool) Bool() bool {
	return bool(fb)
}

// VenueForm is the venue create/edit form
type VenueForm struct {
	Name               string   `form:"name" binding:"required,notblank,max=120"`
	City               string   `form:"city" binding:"required,notblank,max=120"`
	State              string   `form:"state" binding:"required,us_state"`
	Address            string   `form:"address" binding:"required,notblank,max=120"`
	Phone              string   `form:"phone" binding:"max=120"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	Website            string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingTalent      string   `form:"seeking_talent" binding:"omitempty,checkbox"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

// Venue converts the form into a record; the checkbox was validated on binding.
func (f VenueForm) Venue() Venue {
	seeking, _ := ParseFlexibleBool(f.SeekingTalent)
	return Venue{
		Name:               strings.TrimSpace(f.Name),
		Genres:             JoinGenres(f.Genres),
		Address:            strings.TrimSpace(f.Address),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		SeekingTalent:      seeking.Bool(),
		SeekingDescription: f.SeekingDescription,
		ImageLink:          f.ImageLink,
	}
}

func VenueFormFrom(v Venue) VenueForm {
	f := VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.GenreList(),
		FacebookLink:       v.FacebookLink,
		ImageLink:          v.ImageLink,
		Website:            v.Website,
		SeekingDescription: v.SeekingDescription,
	}
	if v.SeekingTalent {
		f.SeekingTalent = "y"
	}
	return f
}

// ArtistForm is the artist create/edit form
type ArtistForm struct {
	Name               string   `form:"name" binding:"required,notblank,max=120"`
	City               string   `form:"city" binding:"required,notblank,max=120"`
	State              string   `form:"state" binding:"required,us_state"`
	Phone              string   `form:"phone" binding:"max=120"`
	Genres             []string `form:"genres" binding:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url,max=120"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url,max=500"`
	Website            string   `form:"website_link" binding:"omitempty,url,max=120"`
	SeekingVenue       string   `form:"seeking_venue" binding:"omitempty,checkbox"`
	SeekingDescription string   `form:"seeking_description" binding:"max=500"`
}

func (f ArtistForm) Artist() Artist {
	seeking, _ := ParseFlexibleBool(f.SeekingVenue)
	return Artist{
		Name:               strings.TrimSpace(f.Name),
		Genres:             JoinGenres(f.Genres),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		SeekingVenue:       seeking.Bool(),
		SeekingDescription: f.SeekingDescription,
	}
}

func ArtistFormFrom(a Artist) ArtistForm {
	f := ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.GenreList(),
		FacebookLink:       a.FacebookLink,
		ImageLink:          a.ImageLink,
		Website:            a.Website,
		SeekingDescription: a.SeekingDescription,
	}
	if a.SeekingVenue {
		f.SeekingVenue = "y"
	}
	return f
}

// ShowForm is the show create form
type ShowForm struct {
	ArtistID  int64  `form:"artist_id" binding:"required,gt=0"`
	VenueID   int64  `form:"venue_id" binding:"required,gt=0"`
	StartTime string `form:"start_time" binding:"required,datetime_any"`
}

// SearchForm carries the search box value.
type SearchForm struct {
	SearchTerm string `form:"search_term"`
}
