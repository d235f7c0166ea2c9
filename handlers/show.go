package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/lukeharding/bandstand/database"
	"github.com/lukeharding/bandstand/models"
	"github.com/lukeharding/bandstand/repository"
)

type ShowHandler struct {
	Repo repository.ShowRepository
	SQL  *sql.DB
}

// ListShows renders the show board: every booking joined with its artist
// and venue, ordered by start time.
func (sh *ShowHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	listings, err := database.ShowBoard(sh.SQL)
	if err != nil {
		log.Printf("Error listing shows: %v", err)
		renderServerError(w, r, "Failed to load the show board")
		return
	}
	renderPage(w, r, http.StatusOK, "shows.html", listings)
}

// CreateShowForm renders an empty show creation form.
func (sh *ShowHandler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusOK, "new_show.html", nil)
}

// CreateShow books an artist into a venue. Both referenced ids must resolve
// before anything is written; unknown ids send the user back to the form.
func (sh *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	in, err := parseShowInput(r)
	if err != nil {
		renderPageFlash(w, r, http.StatusBadRequest, "new_show.html", err.Error(), nil)
		return
	}

	show := &models.Show{
		VenueID:   in.VenueID,
		ArtistID:  in.ArtistID,
		StartTime: in.StartTime,
	}
	err = sh.Repo.Create(show)
	switch {
	case errors.Is(err, repository.ErrUnknownArtist), errors.Is(err, repository.ErrUnknownVenue):
		setFlash(w, "Wrong id")
		http.Redirect(w, r, "/shows/create", http.StatusSeeOther)
		return
	case err != nil:
		log.Printf("Error creating show: %v", err)
		renderServerError(w, r, "An error occurred. Show could not be listed.")
		return
	}

	setFlash(w, "Show was successfully listed!")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
