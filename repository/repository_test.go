package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lukeharding/bandstand/database"
	"github.com/lukeharding/bandstand/models"
)

// setupTestDB opens a named in-memory sqlite database shared across the
// connection pool for the duration of one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateModels(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func strPtr(s string) *string { return &s }

func testVenue(name, city, state string) *models.Venue {
	return &models.Venue{
		Name:         name,
		City:         city,
		State:        state,
		Address:      "123 Main St",
		Phone:        "555-0100",
		Genres:       models.GenreList{"Jazz", "Blues"},
		FacebookLink: "https://facebook.com/" + strings.ToLower(name),
	}
}

func testArtist(name string) *models.Artist {
	return &models.Artist{
		Name:         name,
		City:         "Austin",
		State:        "TX",
		Phone:        "555-0200",
		Genres:       models.GenreList{"Rock n Roll"},
		FacebookLink: "https://facebook.com/" + strings.ToLower(name),
	}
}
