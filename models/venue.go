package models

// Venue represents a location that can host shows.
// It corresponds to the 'venues' table.
type Venue struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"not null" json:"city"`
	State              string    `gorm:"not null" json:"state"`
	Address            string    `gorm:"not null" json:"address"`
	Phone              string    `gorm:"not null" json:"phone"`
	Genres             GenreList `gorm:"type:text;not null" json:"genres"`
	FacebookLink       string    `gorm:"not null" json:"facebook_link"`
	ImageLink          *string   `gorm:"" json:"image_link,omitempty"` // Nullable
	Website            *string   `gorm:"" json:"website,omitempty"`    // Nullable
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription *string   `gorm:"" json:"seeking_description,omitempty"` // Nullable

	// Relationships
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Venue) TableName() string {
	return "venues"
}
