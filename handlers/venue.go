package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/lukeharding/bandstand/database"
	"github.com/lukeharding/bandstand/models"
	"github.com/lukeharding/bandstand/repository"
)

type VenueHandler struct {
	Repo repository.VenueRepository
	SQL  *sql.DB
}

// venueShowView is one past or upcoming booking on the venue detail page.
type venueShowView struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       int64
}

type venueDetailView struct {
	models.Venue
	PastShows          []venueShowView
	UpcomingShows      []venueShowView
	PastShowsCount     int
	UpcomingShowsCount int
}

type searchView struct {
	Term    string
	Count   int
	Results []repository.SearchResult
}

// ListVenues renders the directory of venues grouped by (city, state).
func (vh *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	groups, err := database.VenueDirectory(vh.SQL, time.Now())
	if err != nil {
		log.Printf("Error listing venues: %v", err)
		renderServerError(w, r, "Failed to load the venue directory")
		return
	}
	renderPage(w, r, http.StatusOK, "venues.html", groups)
}

// SearchVenues handles the venue name search form.
func (vh *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "venues.html", "Could not read the search form", nil)
		return
	}
	term := r.PostFormValue("search_term")

	results, err := vh.Repo.SearchByName(term, time.Now())
	if err != nil {
		log.Printf("Error searching venues for %q: %v", term, err)
		renderServerError(w, r, "Venue search failed")
		return
	}
	renderPage(w, r, http.StatusOK, "search_venues.html", searchView{
		Term:    term,
		Count:   len(results),
		Results: results,
	})
}

// GetVenue renders the venue detail page with its shows partitioned into
// past and upcoming. Unknown ids redirect to the directory with a notice.
func (vh *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	venue, err := vh.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(w, "Venue Missing")
			http.Redirect(w, r, "/venues", http.StatusSeeOther)
			return
		}
		log.Printf("Error getting venue %d: %v", id, err)
		renderServerError(w, r, "Failed to load venue")
		return
	}

	past, upcoming := models.PartitionShows(venue.Shows, time.Now())
	view := venueDetailView{
		Venue:              *venue,
		PastShows:          venueShowViews(past),
		UpcomingShows:      venueShowViews(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	view.Shows = nil

	renderPage(w, r, http.StatusOK, "show_venue.html", view)
}

// CreateVenueForm renders an empty venue creation form.
func (vh *VenueHandler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "new_venue.html", nil)
}

// CreateVenue validates the submitted form and persists a new venue.
func (vh *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	in, err := parseVenueInput(r)
	if err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "new_venue.html", err.Error(), nil)
		return
	}

	venue := &models.Venue{}
	in.apply(venue)
	if err := vh.Repo.Create(venue); err != nil {
		log.Printf("Error creating venue %q: %v", in.Name, err)
		renderServerError(w, r, "An error occurred. Venue "+in.Name+" could not be listed.")
		return
	}

	setFlash(w, "Venue "+in.Name+" was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditVenueForm renders the edit form pre-filled with the current record.
func (vh *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	venue, err := vh.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(w, "Venue Missing")
			http.Redirect(w, r, "/venues", http.StatusSeeOther)
			return
		}
		log.Printf("Error loading venue %d for edit: %v", id, err)
		renderServerError(w, r, "Failed to load venue")
		return
	}
	renderPage(w, r, http.StatusOK, "edit_venue.html", venue)
}

// UpdateVenue replaces every mutable field of the venue with the submitted
// values and redirects to the detail page.
func (vh *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueIDParam(w, r)
	if !ok {
		return
	}

	in, err := parseVenueInput(r)
	if err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "edit_venue.html", err.Error(), &models.Venue{ID: id})
		return
	}

	venue := &models.Venue{ID: id}
	in.apply(venue)
	if err := vh.Repo.Update(venue); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setFlash(w, "Venue Missing")
			http.Redirect(w, r, "/venues", http.StatusSeeOther)
			return
		}
		log.Printf("Error updating venue %d: %v", id, err)
		renderServerError(w, r, "An error occurred. Venue "+in.Name+" could not be updated.")
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// DeleteVenue removes a venue and its shows. Called from the detail page via
// fetch, so it answers JSON rather than a rendered page.
func (vh *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "venue_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid venue ID format"})
		return
	}

	venue, err := vh.Repo.Delete(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Venue not found"})
			return
		}
		log.Printf("Error deleting venue %d: %v", id, err)
		setFlash(w, "An error occurred. Venue could not be deleted!")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete venue"})
		return
	}

	setFlash(w, "Venue "+venue.Name+" was successfully deleted!")
	w.WriteHeader(http.StatusNoContent)
}

// venueIDParam extracts the venue id from the URL; malformed ids are treated
// like missing venues.
func venueIDParam(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := chi.URLParam(r, "venue_id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		setFlash(w, "Venue Missing")
		http.Redirect(w, r, "/venues", http.StatusSeeOther)
		return 0, false
	}
	return uint(id), true
}

func venueShowViews(shows []models.Show) []venueShowView {
	views := make([]venueShowView, 0, len(shows))
	for _, s := range shows {
		view := venueShowView{ArtistID: s.ArtistID, StartTime: s.StartTime}
		if s.Artist != nil {
			view.ArtistName = s.Artist.Name
			if s.Artist.ImageLink != nil {
				view.ArtistImageLink = *s.Artist.ImageLink
			}
		}
		views = append(views, view)
	}
	return views
}
