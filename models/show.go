package models

import "time"

// Show is a booking of one Artist at one Venue at a single instant.
// It corresponds to the 'shows' table.
type Show struct {
	ID        uint  `gorm:"primaryKey;autoIncrement" json:"id"`
	StartTime int64 `gorm:"not null;index" json:"start_time"` // Unix timestamp
	ArtistID  uint  `gorm:"not null;index" json:"artist_id"`
	VenueID   uint  `gorm:"not null;index" json:"venue_id"`

	// Relationships
	Artist *Artist `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Venue  *Venue  `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}

// TableName explicitly sets the table name for GORM.
func (Show) TableName() string {
	return "shows"
}

// IsUpcoming reports whether the show starts strictly after now.
// A show starting exactly at now counts as past.
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime > now.Unix()
}

// PartitionShows splits shows into past and upcoming relative to now.
// The two slices are disjoint and together cover the input.
func PartitionShows(shows []Show, now time.Time) (past, upcoming []Show) {
	for _, s := range shows {
		if s.IsUpcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// CountUpcoming returns how many of the given shows start strictly after now.
func CountUpcoming(shows []Show, now time.Time) int {
	count := 0
	for _, s := range shows {
		if s.IsUpcoming(now) {
			count++
		}
	}
	return count
}
