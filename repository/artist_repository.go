package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lukeharding/bandstand/models"
)

// GormArtistRepository handles database operations for Artist entities
type GormArtistRepository struct {
	DB *gorm.DB
}

// NewGormArtistRepository creates a new instance of GormArtistRepository
func NewGormArtistRepository(db *gorm.DB) *GormArtistRepository {
	return &GormArtistRepository{DB: db}
}

// Create inserts a new artist record inside its own transaction
func (r *GormArtistRepository) Create(artist *models.Artist) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create artist %s: %w", artist.Name, err)
	}
	return nil
}

// GetByID retrieves an artist with their shows, each show carrying its venue
func (r *GormArtistRepository) GetByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.DB.Preload("Shows.Venue").First(&artist, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get artist by ID %d: %w", id, err)
	}
	return &artist, nil
}

// Update replaces every mutable field of an existing artist. The record must
// already exist; gorm.ErrRecordNotFound is returned otherwise.
func (r *GormArtistRepository) Update(artist *models.Artist) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.Select("id").First(&existing, artist.ID).Error; err != nil {
			return err
		}
		return tx.Save(artist).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to update artist ID %d: %w", artist.ID, err)
	}
	return nil
}

// ListAll retrieves id and name for every artist, ordered by name
func (r *GormArtistRepository) ListAll() ([]models.Artist, error) {
	var artists []models.Artist
	err := r.DB.Select("id", "name").Order("name ASC, id ASC").Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

// SearchByName finds artists whose name contains term, case-insensitively.
// An empty term matches every artist.
func (r *GormArtistRepository) SearchByName(term string, now time.Time) ([]SearchResult, error) {
	var artists []models.Artist
	likeQuery := "%" + strings.ToLower(term) + "%"

	err := r.DB.Preload("Shows").
		Where("LOWER(name) LIKE ?", likeQuery).
		Order("name ASC, id ASC").
		Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search artists for %q: %w", term, err)
	}

	results := make([]SearchResult, 0, len(artists))
	for _, a := range artists {
		results = append(results, SearchResult{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: models.CountUpcoming(a.Shows, now),
		})
	}
	return results, nil
}
