package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeharding/bandstand/models"
)

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func venueForm() url.Values {
	return url.Values{
		"name":          {"The Musical Hop"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"address":       {"1015 Folsom Street"},
		"phone":         {"123-123-1234"},
		"genres":        {"Jazz", "Reggae"},
		"facebook_link": {"https://facebook.com/themusicalhop"},
	}
}

func TestParseVenueInput(t *testing.T) {
	form := venueForm()
	form.Set("website", "https://themusicalhop.com")
	form.Set("seeking_talent", "y")
	form.Set("seeking_description", "Looking for local artists")

	in, err := parseVenueInput(formRequest("/venues/create", form))
	require.NoError(t, err)

	assert.Equal(t, "The Musical Hop", in.Name)
	assert.Equal(t, models.GenreList{"Jazz", "Reggae"}, in.Genres)
	assert.True(t, in.SeekingTalent)
	require.NotNil(t, in.Website)
	assert.Equal(t, "https://themusicalhop.com", *in.Website)
	assert.Nil(t, in.ImageLink, "blank optional fields come back nil")
	require.NotNil(t, in.SeekingDescription)
}

func TestParseVenueInputMissingRequiredField(t *testing.T) {
	for _, field := range []string{"name", "city", "state", "address", "phone", "facebook_link"} {
		form := venueForm()
		form.Del(field)

		_, err := parseVenueInput(formRequest("/venues/create", form))
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "missing %s must be rejected", field)
		assert.Equal(t, field, vErr.Field)
	}
}

func TestParseVenueInputRequiresGenres(t *testing.T) {
	form := venueForm()
	form.Del("genres")

	_, err := parseVenueInput(formRequest("/venues/create", form))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "genres", vErr.Field)
}

func TestParseVenueInputSeekingToken(t *testing.T) {
	for value, want := range map[string]bool{"y": true, "on": false, "true": false, "": false} {
		form := venueForm()
		if value != "" {
			form.Set("seeking_talent", value)
		}
		in, err := parseVenueInput(formRequest("/venues/create", form))
		require.NoError(t, err)
		assert.Equal(t, want, in.SeekingTalent, "token %q", value)
	}
}

func TestParseArtistInput(t *testing.T) {
	form := url.Values{
		"name":          {"Guns N Petals"},
		"city":          {"San Francisco"},
		"state":         {"CA"},
		"phone":         {"326-123-5000"},
		"genres":        {"Rock n Roll"},
		"facebook_link": {"https://facebook.com/GunsNPetals"},
		"seeking_venue": {"y"},
	}

	in, err := parseArtistInput(formRequest("/artists/create", form))
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", in.Name)
	assert.True(t, in.SeekingVenue)

	// address is a venue-only field; artists must not require it
	form.Del("name")
	_, err = parseArtistInput(formRequest("/artists/create", form))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestParseShowInput(t *testing.T) {
	form := url.Values{
		"venue_id":   {"3"},
		"artist_id":  {"7"},
		"start_time": {"2026-05-21 21:30:00"},
	}

	in, err := parseShowInput(formRequest("/shows/create", form))
	require.NoError(t, err)
	assert.EqualValues(t, 3, in.VenueID)
	assert.EqualValues(t, 7, in.ArtistID)

	want, err := time.Parse("2006-01-02 15:04:05", "2026-05-21 21:30:00")
	require.NoError(t, err)
	assert.Equal(t, want.Unix(), in.StartTime)
}

func TestParseShowInputAcceptsDatetimeLocalFormat(t *testing.T) {
	form := url.Values{
		"venue_id":   {"1"},
		"artist_id":  {"1"},
		"start_time": {"2026-05-21T21:30"},
	}
	_, err := parseShowInput(formRequest("/shows/create", form))
	assert.NoError(t, err)
}

func TestParseShowInputRejectsBadFields(t *testing.T) {
	cases := []struct {
		name  string
		form  url.Values
		field string
	}{
		{
			name:  "non-numeric venue id",
			form:  url.Values{"venue_id": {"abc"}, "artist_id": {"1"}, "start_time": {"2026-05-21 21:30:00"}},
			field: "venue_id",
		},
		{
			name:  "missing artist id",
			form:  url.Values{"venue_id": {"1"}, "start_time": {"2026-05-21 21:30:00"}},
			field: "artist_id",
		},
		{
			name:  "garbage start time",
			form:  url.Values{"venue_id": {"1"}, "artist_id": {"1"}, "start_time": {"next tuesday"}},
			field: "start_time",
		},
		{
			name:  "missing start time",
			form:  url.Values{"venue_id": {"1"}, "artist_id": {"1"}},
			field: "start_time",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseShowInput(formRequest("/shows/create", tc.form))
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}
