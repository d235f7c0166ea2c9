package repository

import (
	"time"

	"github.com/lukeharding/bandstand/models"
)

// SearchResult is one name-search match with its upcoming-show count.
type SearchResult struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueRepository defines persistence operations for venues.
type VenueRepository interface {
	Create(venue *models.Venue) error
	GetByID(id uint) (*models.Venue, error)
	Update(venue *models.Venue) error
	Delete(id uint) (*models.Venue, error)
	SearchByName(term string, now time.Time) ([]SearchResult, error)
}

// ArtistRepository defines persistence operations for artists.
type ArtistRepository interface {
	Create(artist *models.Artist) error
	GetByID(id uint) (*models.Artist, error)
	Update(artist *models.Artist) error
	ListAll() ([]models.Artist, error)
	SearchByName(term string, now time.Time) ([]SearchResult, error)
}

// ShowRepository defines persistence operations for shows.
type ShowRepository interface {
	Create(show *models.Show) error
}
