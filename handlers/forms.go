package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lukeharding/bandstand/models"
)

// ValidationError reports a missing or malformed form field. Validation
// failures are raised before any write is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

// seekingToken is the checkbox value that turns a seeking flag on; any other
// submitted value leaves the flag false.
const seekingToken = "y"

// startTimeLayouts are the accepted formats for the show start time field.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// VenueInput enumerates every recognized field of the venue create and edit
// forms. Unknown fields are ignored; missing required fields are rejected.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             models.GenreList
	FacebookLink       string
	Website            *string
	ImageLink          *string
	SeekingTalent      bool
	SeekingDescription *string
}

func parseVenueInput(r *http.Request) (*VenueInput, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &ValidationError{Field: "form", Reason: "unparseable form body"}
	}

	in := &VenueInput{
		Name:               strings.TrimSpace(r.PostFormValue("name")),
		City:               strings.TrimSpace(r.PostFormValue("city")),
		State:              strings.TrimSpace(r.PostFormValue("state")),
		Address:            strings.TrimSpace(r.PostFormValue("address")),
		Phone:              strings.TrimSpace(r.PostFormValue("phone")),
		Genres:             models.GenreList(r.PostForm["genres"]),
		FacebookLink:       strings.TrimSpace(r.PostFormValue("facebook_link")),
		Website:            optionalField(r.PostFormValue("website")),
		ImageLink:          optionalField(r.PostFormValue("image_link")),
		SeekingTalent:      r.PostFormValue("seeking_talent") == seekingToken,
		SeekingDescription: optionalField(r.PostFormValue("seeking_description")),
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *VenueInput) validate() error {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"city", in.City},
		{"state", in.State},
		{"address", in.Address},
		{"phone", in.Phone},
		{"facebook_link", in.FacebookLink},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field, Reason: "required"}
		}
	}
	if len(in.Genres) == 0 {
		return &ValidationError{Field: "genres", Reason: "at least one genre is required"}
	}
	return nil
}

// apply copies the input onto a venue record, replacing every mutable field.
func (in *VenueInput) apply(v *models.Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.Genres = in.Genres
	v.FacebookLink = in.FacebookLink
	v.Website = in.Website
	v.ImageLink = in.ImageLink
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// ArtistInput enumerates every recognized field of the artist create and
// edit forms.
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             models.GenreList
	FacebookLink       string
	Website            *string
	ImageLink          *string
	SeekingVenue       bool
	SeekingDescription *string
}

func parseArtistInput(r *http.Request) (*ArtistInput, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &ValidationError{Field: "form", Reason: "unparseable form body"}
	}

	in := &ArtistInput{
		Name:               strings.TrimSpace(r.PostFormValue("name")),
		City:               strings.TrimSpace(r.PostFormValue("city")),
		State:              strings.TrimSpace(r.PostFormValue("state")),
		Phone:              strings.TrimSpace(r.PostFormValue("phone")),
		Genres:             models.GenreList(r.PostForm["genres"]),
		FacebookLink:       strings.TrimSpace(r.PostFormValue("facebook_link")),
		Website:            optionalField(r.PostFormValue("website")),
		ImageLink:          optionalField(r.PostFormValue("image_link")),
		SeekingVenue:       r.PostFormValue("seeking_venue") == seekingToken,
		SeekingDescription: optionalField(r.PostFormValue("seeking_description")),
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return in, nil
}

func (in *ArtistInput) validate() error {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"city", in.City},
		{"state", in.State},
		{"phone", in.Phone},
		{"facebook_link", in.FacebookLink},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field, Reason: "required"}
		}
	}
	if len(in.Genres) == 0 {
		return &ValidationError{Field: "genres", Reason: "at least one genre is required"}
	}
	return nil
}

// apply copies the input onto an artist record, replacing every mutable field.
func (in *ArtistInput) apply(a *models.Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Genres = in.Genres
	a.FacebookLink = in.FacebookLink
	a.Website = in.Website
	a.ImageLink = in.ImageLink
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ShowInput enumerates the fields of the show creation form.
type ShowInput struct {
	VenueID   uint
	ArtistID  uint
	StartTime int64
}

func parseShowInput(r *http.Request) (*ShowInput, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &ValidationError{Field: "form", Reason: "unparseable form body"}
	}

	venueID, err := parseIDField("venue_id", r.PostFormValue("venue_id"))
	if err != nil {
		return nil, err
	}
	artistID, err := parseIDField("artist_id", r.PostFormValue("artist_id"))
	if err != nil {
		return nil, err
	}

	rawStart := strings.TrimSpace(r.PostFormValue("start_time"))
	if rawStart == "" {
		return nil, &ValidationError{Field: "start_time", Reason: "required"}
	}
	var startTime time.Time
	parsed := false
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, rawStart); err == nil {
			startTime = t
			parsed = true
			break
		}
	}
	if !parsed {
		return nil, &ValidationError{Field: "start_time", Reason: "unrecognized date/time format"}
	}

	return &ShowInput{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime.Unix(),
	}, nil
}

func parseIDField(field, value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ValidationError{Field: field, Reason: "required"}
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Reason: "must be a numeric id"}
	}
	return uint(id), nil
}

func optionalField(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
