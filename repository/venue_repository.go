package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/lukeharding/bandstand/models"
)

// GormVenueRepository handles database operations for Venue entities
type GormVenueRepository struct {
	DB *gorm.DB
}

// NewGormVenueRepository creates a new instance of GormVenueRepository
func NewGormVenueRepository(db *gorm.DB) *GormVenueRepository {
	return &GormVenueRepository{DB: db}
}

// Create inserts a new venue record inside its own transaction
func (r *GormVenueRepository) Create(venue *models.Venue) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create venue %s: %w", venue.Name, err)
	}
	return nil
}

// GetByID retrieves a venue with its shows, each show carrying its artist
func (r *GormVenueRepository) GetByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.DB.Preload("Shows.Artist").First(&venue, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get venue by ID %d: %w", id, err)
	}
	return &venue, nil
}

// Update replaces every mutable field of an existing venue. The record must
// already exist; gorm.ErrRecordNotFound is returned otherwise.
func (r *GormVenueRepository) Update(venue *models.Venue) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.Select("id").First(&existing, venue.ID).Error; err != nil {
			return err
		}
		return tx.Save(venue).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to update venue ID %d: %w", venue.ID, err)
	}
	return nil
}

// Delete removes a venue and its dependent shows in one transaction and
// returns the deleted record
func (r *GormVenueRepository) Delete(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return err
		}
		// remove dependent shows first so no orphaned bookings remain
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Venue{}, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete venue ID %d: %w", id, err)
	}
	return &venue, nil
}

// SearchByName finds venues whose name contains term, case-insensitively.
// An empty term matches every venue. Each match carries the number of its
// shows starting strictly after now.
func (r *GormVenueRepository) SearchByName(term string, now time.Time) ([]SearchResult, error) {
	var venues []models.Venue
	likeQuery := "%" + strings.ToLower(term) + "%"

	err := r.DB.Preload("Shows").
		Where("LOWER(name) LIKE ?", likeQuery).
		Order("name ASC, id ASC").
		Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search venues for %q: %w", term, err)
	}

	results := make([]SearchResult, 0, len(venues))
	for _, v := range venues {
		results = append(results, SearchResult{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: models.CountUpcoming(v.Shows, now),
		})
	}
	return results, nil
}
