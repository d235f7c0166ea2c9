package models

// Artist represents a performer that can be booked into shows.
// It corresponds to the 'artists' table.
type Artist struct {
	ID                 uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string    `gorm:"not null" json:"name"`
	City               string    `gorm:"not null" json:"city"`
	State              string    `gorm:"not null" json:"state"`
	Phone              string    `gorm:"not null" json:"phone"`
	Genres             GenreList `gorm:"type:text;not null" json:"genres"`
	FacebookLink       string    `gorm:"not null" json:"facebook_link"`
	ImageLink          *string   `gorm:"" json:"image_link,omitempty"` // Nullable
	Website            *string   `gorm:"" json:"website,omitempty"`    // Nullable
	SeekingVenue       bool      `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription *string   `gorm:"" json:"seeking_description,omitempty"` // Nullable

	// Relationships
	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE" json:"shows,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Artist) TableName() string {
	return "artists"
}
