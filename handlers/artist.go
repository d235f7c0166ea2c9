package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/lukeharding/bandstand/models"
	"github.com/lukeharding/bandstand/repository"
)

type ArtistHandler struct {
	Repo repository.ArtistRepository
}

// artistShowView is one past or upcoming booking on the artist detail page.
type artistShowView struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      int64
}

type artistDetailView struct {
	models.Artist
	PastShows          []artistShowView
	UpcomingShows      []artistShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

// ListArtists renders the artist directory (ids and names).
func (ah *ArtistHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := ah.Repo.ListAll()
	if err != nil {
		log.Printf("Error listing artists: %v", err)
		renderServerError(w, r, "Failed to load the artist directory")
		return
	}
	renderPage(w, r, http.StatusOK, "artists.html", artists)
}

// SearchArtists handles the artist name search form.
func (ah *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "artists.html", "Could not read the search form", nil)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := ah.Repo.SearchByName(term, time.Now())
	if err != nil {
		log.Printf("Error searching artists for %q: %v", term, err)
		renderServerError(w, r, "Artist search failed")
		return
	}
	renderPage(w, r, http.StatusOK, "search_artists.html", searchView{
		Term:    term,
		Count:   len(results),
		Results: results,
	})
}

// GetArtist renders the artist detail page with shows partitioned into past
// and upcoming. Unknown ids redirect to the directory with a notice.
func (ah *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := artistIDParam(w, r)
	if !ok {
		return
	}

	artist, err := ah.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(w, "Artist Missing")
			http.Redirect(w, r, "/artists", http.StatusSeeOther)
			return
		}
		log.Printf("Error getting artist %d: %v", id, err)
		renderServerError(w, r, "Failed to load artist")
		return
	}

	past, upcoming := models.PartitionShows(artist.Shows, time.Now())
	view := artistDetailView{
		Artist:             *artist,
		PastShows:          artistShowViews(past),
		UpcomingShows:      artistShowViews(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	view.Shows = nil

	renderPage(w, r, http.StatusOK, "show_artist.html", view)
}

// CreateArtistForm renders an empty artist creation form.
func (ah *ArtistHandler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "new_artist.html", nil)
}

// CreateArtist validates the submitted form and persists a new artist.
func (ah *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	in, err := parseArtistInput(r)
	if err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "new_artist.html", err.Error(), nil)
		return
	}

	artist := &models.Artist{}
	in.apply(artist)
	if err := ah.Repo.Create(artist); err != nil {
		log.Printf("Error creating artist %q: %v", in.Name, err)
		renderServerError(w, r, "An error occurred. Artist "+in.Name+" could not be listed.")
		return
	}

	setFlash(w, "Artist "+in.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditArtistForm renders the edit form pre-filled with the current record.
func (ah *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := artistIDParam(w, r)
	if !ok {
		return
	}

	artist, err := ah.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(w, "Artist Missing")
			http.Redirect(w, r, "/artists", http.StatusSeeOther)
			return
		}
		log.Printf("Error loading artist %d for edit: %v", id, err)
		renderServerError(w, r, "Failed to load artist")
		return
	}
	renderPage(w, r, http.StatusOK, "edit_artist.html", artist)
}

// UpdateArtist replaces every mutable field of the artist with the submitted
// values and redirects to the detail page.
func (ah *ArtistHandler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := artistIDParam(w, r)
	if !ok {
		return
	}

	in, err := parseArtistInput(r)
	if err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "edit_artist.html", err.Error(), &models.Artist{ID: id})
		return
	}

	artist := &models.Artist{ID: id}
	in.apply(artist)
	if err := ah.Repo.Update(artist); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(w, "Artist Missing")
			http.Redirect(w, r, "/artists", http.StatusSeeOther)
			return
		}
		log.Printf("Error updating artist %d: %v", id, err)
		renderServerError(w, r, "An error occurred. Artist "+in.Name+" could not be updated.")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

// artistIDParam extracts the artist id from the URL; malformed ids are
// treated like missing artists.
func artistIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "artist_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		setFlash(w, "Artist Missing")
		http.Redirect(w, r, "/artists", http.StatusSeeOther)
		return 0, false
	}
	return uint(id), true
}

func artistShowViews(shows []models.Show) []artistShowView {
	views := make([]artistShowView, 0, len(shows))
	for _, s := range shows {
		view := artistShowView{VenueID: s.VenueID, StartTime: s.StartTime}
		if s.Venue != nil {
			view.VenueName = s.Venue.Name
			if s.Venue.ImageLink != nil {
				view.VenueImageLink = *s.Venue.ImageLink
			}
		}
		views = append(views, view)
	}
	return views
}
