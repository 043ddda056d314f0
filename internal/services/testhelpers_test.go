package services

import (
	"testing"
	"time"

	"journal-backend/internal/models"
	"journal-backend/internal/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Entry{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		PinHash:  utils.HashPin("1234"),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTag(t *testing.T, db *gorm.DB, name string, prebuilt bool) *models.Tag {
	t.Helper()

	tag := &models.Tag{Name: name, IsPrebuilt: prebuilt}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

// seedEntry writes an entry directly, bypassing the upsert path. Tests that
// exercise the one-entry-per-day invariant must go through EntryService.
func seedEntry(t *testing.T, db *gorm.DB, userID string, date time.Time, mood models.Mood, content string) *models.Entry {
	t.Helper()

	entry := &models.Entry{
		UserID:      userID,
		EntryDate:   models.DateOnly(date),
		Title:       "entry for " + date.Format(models.DateFormat),
		Content:     content,
		IsMarkdown:  true,
		PrimaryMood: mood,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}

func day(s string) time.Time {
	d, err := time.Parse(models.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func tagIDs(tags []models.Tag) []string {
	ids := make([]string, len(tags))
	for i, tag := range tags {
		ids[i] = tag.ID
	}
	return ids
}
