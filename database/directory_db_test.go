package database

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukeharding/bandstand/models"
)

func setupTestDB(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrateModels(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db, sqlDB
}

func seedVenue(t *testing.T, db *gorm.DB, name, city, state string) *models.Venue {
	t.Helper()
	venue := &models.Venue{
		Name:         name,
		City:         city,
		State:        state,
		Address:      "123 Main St",
		Phone:        "555-0100",
		Genres:       models.GenreList{"Jazz"},
		FacebookLink: "https://facebook.com/venue",
	}
	require.NoError(t, db.Create(venue).Error)
	return venue
}

func seedArtist(t *testing.T, db *gorm.DB, name string, imageLink *string) *models.Artist {
	t.Helper()
	artist := &models.Artist{
		Name:         name,
		City:         "Austin",
		State:        "TX",
		Phone:        "555-0200",
		Genres:       models.GenreList{"Rock n Roll"},
		FacebookLink: "https://facebook.com/artist",
		ImageLink:    imageLink,
	}
	require.NoError(t, db.Create(artist).Error)
	return artist
}

func TestVenueDirectoryGroupsByCityAndState(t *testing.T) {
	db, sqlDB := setupTestDB(t)

	v1 := seedVenue(t, db, "Continental Club", "Austin", "TX")
	v2 := seedVenue(t, db, "Mohawk", "Austin", "TX")
	seedVenue(t, db, "The Bowery Ballroom", "New York", "NY")

	groups, err := VenueDirectory(sqlDB, time.Now())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// lexicographic by city: Austin before New York
	assert.Equal(t, "Austin", groups[0].City)
	assert.Equal(t, "TX", groups[0].State)
	require.Len(t, groups[0].Venues, 2, "venues sharing a location form exactly one group")
	ids := []uint{groups[0].Venues[0].ID, groups[0].Venues[1].ID}
	assert.Contains(t, ids, v1.ID)
	assert.Contains(t, ids, v2.ID)

	assert.Equal(t, "New York", groups[1].City)
	require.Len(t, groups[1].Venues, 1)
}

func TestVenueDirectoryCountsOnlyUpcomingShows(t *testing.T) {
	db, sqlDB := setupTestDB(t)

	venue := seedVenue(t, db, "Continental Club", "Austin", "TX")
	artist := seedArtist(t, db, "Guns N Petals", nil)

	now := time.Now()
	for _, start := range []int64{
		now.Add(-24 * time.Hour).Unix(), // past
		now.Unix(),                      // boundary: past
		now.Add(24 * time.Hour).Unix(),  // upcoming
	} {
		require.NoError(t, db.Create(&models.Show{
			VenueID:   venue.ID,
			ArtistID:  artist.ID,
			StartTime: start,
		}).Error)
	}

	groups, err := VenueDirectory(sqlDB, now)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Venues, 1)
	assert.Equal(t, 1, groups[0].Venues[0].NumUpcomingShows)
}

func TestVenueDirectoryNaturalNameOrderWithinGroup(t *testing.T) {
	db, sqlDB := setupTestDB(t)

	seedVenue(t, db, "Stage 10", "Austin", "TX")
	seedVenue(t, db, "Stage 2", "Austin", "TX")
	seedVenue(t, db, "Stage 1", "Austin", "TX")

	groups, err := VenueDirectory(sqlDB, time.Now())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Venues, 3)

	names := []string{
		groups[0].Venues[0].Name,
		groups[0].Venues[1].Name,
		groups[0].Venues[2].Name,
	}
	assert.Equal(t, []string{"Stage 1", "Stage 2", "Stage 10"}, names)
}

func TestVenueDirectoryEmpty(t *testing.T) {
	_, sqlDB := setupTestDB(t)

	groups, err := VenueDirectory(sqlDB, time.Now())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestShowBoardOrderedByStartTime(t *testing.T) {
	db, sqlDB := setupTestDB(t)

	venue := seedVenue(t, db, "Continental Club", "Austin", "TX")
	artist := seedArtist(t, db, "Guns N Petals", nil)

	base := time.Now().Truncate(time.Second)
	starts := []int64{
		base.Add(72 * time.Hour).Unix(),
		base.Add(-24 * time.Hour).Unix(),
		base.Add(24 * time.Hour).Unix(),
	}
	for _, start := range starts {
		require.NoError(t, db.Create(&models.Show{
			VenueID:   venue.ID,
			ArtistID:  artist.ID,
			StartTime: start,
		}).Error)
	}

	listings, err := ShowBoard(sqlDB)
	require.NoError(t, err)
	require.Len(t, listings, 3)

	for i := 1; i < len(listings); i++ {
		assert.LessOrEqual(t, listings[i-1].StartTime, listings[i].StartTime)
	}
	assert.Equal(t, venue.Name, listings[0].VenueName)
	assert.Equal(t, artist.Name, listings[0].ArtistName)
}

func TestShowBoardNullImageLink(t *testing.T) {
	db, sqlDB := setupTestDB(t)

	venue := seedVenue(t, db, "Continental Club", "Austin", "TX")
	artist := seedArtist(t, db, "Guns N Petals", nil)
	require.NoError(t, db.Create(&models.Show{
		VenueID:   venue.ID,
		ArtistID:  artist.ID,
		StartTime: time.Now().Unix(),
	}).Error)

	listings, err := ShowBoard(sqlDB)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "", listings[0].ArtistImageLink, "missing artist image scans as empty string")
}
