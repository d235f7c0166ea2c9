package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lukeharding/bandstand/models"
)

// GormShowRepository handles database operations for Show entities
type GormShowRepository struct {
	DB *gorm.DB
}

// NewGormShowRepository creates a new instance of GormShowRepository
func NewGormShowRepository(db *gorm.DB) *GormShowRepository {
	return &GormShowRepository{DB: db}
}

// Create inserts a new show after verifying that both referenced records
// exist. An unknown artist or venue id aborts the transaction before any
// write, returning ErrUnknownArtist or ErrUnknownVenue.
func (r *GormShowRepository) Create(show *models.Show) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.Select("id").First(&artist, show.ArtistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownArtist
			}
			return fmt.Errorf("failed to verify artist ID %d: %w", show.ArtistID, err)
		}

		var venue models.Venue
		if err := tx.Select("id").First(&venue, show.VenueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnknownVenue
			}
			return fmt.Errorf("failed to verify venue ID %d: %w", show.VenueID, err)
		}

		if err := tx.Create(show).Error; err != nil {
			return fmt.Errorf("failed to create show: %w", err)
		}
		return nil
	})
}
