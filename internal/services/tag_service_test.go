package services

import (
	"testing"

	"journal-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateTag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	tag, err := svc.CreateTag(&models.TagCreateRequest{Name: "Chess"})
	require.NoError(t, err)
	assert.Equal(t, "Chess", tag.Name)
	assert.False(t, tag.IsPrebuilt)
	assert.NotEmpty(t, tag.ID)
}

func TestCreateTagDuplicateRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	_, err := svc.CreateTag(&models.TagCreateRequest{Name: "Chess"})
	require.NoError(t, err)

	_, err = svc.CreateTag(&models.TagCreateRequest{Name: "Chess"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateTagBlankNameRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	_, err := svc.CreateTag(&models.TagCreateRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeleteTag(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	custom := seedTag(t, db, "Chess", false)
	prebuilt := seedTag(t, db, "Work", true)

	require.NoError(t, svc.DeleteTag(custom.ID))
	assert.ErrorIs(t, svc.DeleteTag(custom.ID), ErrNotFound)

	// Prebuilt tags survive delete attempts.
	assert.ErrorIs(t, svc.DeleteTag(prebuilt.ID), ErrValidation)
	_, err := svc.GetTagByID(prebuilt.ID)
	assert.NoError(t, err)
}

func TestSeedPrebuiltTags(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)

	require.NoError(t, svc.SeedPrebuiltTags())

	tags, err := svc.GetPrebuiltTags()
	require.NoError(t, err)
	assert.Len(t, tags, len(models.PrebuiltTagNames))

	// Seeding again changes nothing.
	require.NoError(t, svc.SeedPrebuiltTags())
	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(len(models.PrebuiltTagNames)), count)
}

func TestSeedPrebuiltTagsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTagService(db)
	seedTag(t, db, "work", false)

	require.NoError(t, svc.SeedPrebuiltTags())

	// The user's lowercase "work" blocks reseeding "Work".
	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Where("LOWER(name) = ?", "work").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReconcileEntryTags(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	a := seedTag(t, db, "A", false)
	b := seedTag(t, db, "B", false)
	c := seedTag(t, db, "C", false)
	entry := seedEntry(t, db, user.ID, day("2025-06-01"), models.MoodHappy, "x")
	svc := NewTagService(db)

	require.NoError(t, svc.ReconcileEntryTags(db, entry, []string{a.ID, b.ID}))
	assert.ElementsMatch(t, []string{a.ID, b.ID}, entryTagIDs(t, db, entry.ID))

	// Swap B for C.
	require.NoError(t, svc.ReconcileEntryTags(db, entry, []string{a.ID, c.ID}))
	assert.ElementsMatch(t, []string{a.ID, c.ID}, entryTagIDs(t, db, entry.ID))

	// Empty desired set unlinks everything.
	require.NoError(t, svc.ReconcileEntryTags(db, entry, nil))
	assert.Empty(t, entryTagIDs(t, db, entry.ID))
}

func TestReconcileEntryTagsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	a := seedTag(t, db, "A", false)
	b := seedTag(t, db, "B", false)
	entry := seedEntry(t, db, user.ID, day("2025-06-01"), models.MoodHappy, "x")
	svc := NewTagService(db)

	desired := []string{a.ID, b.ID}
	require.NoError(t, svc.ReconcileEntryTags(db, entry, desired))
	require.NoError(t, svc.ReconcileEntryTags(db, entry, desired))

	ids := entryTagIDs(t, db, entry.ID)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
	assert.Len(t, ids, 2)
}

func TestReconcileEntryTagsNameFallback(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	tag := seedTag(t, db, "Travel", true)
	entry := seedEntry(t, db, user.ID, day("2025-06-01"), models.MoodHappy, "x")
	svc := NewTagService(db)

	// An identifier that misses as an id resolves as a name.
	require.NoError(t, svc.ReconcileEntryTags(db, entry, []string{"Travel"}))
	assert.ElementsMatch(t, []string{tag.ID}, entryTagIDs(t, db, entry.ID))
}

func TestReconcileEntryTagsUnknownRejected(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	entry := seedEntry(t, db, user.ID, day("2025-06-01"), models.MoodHappy, "x")
	svc := NewTagService(db)

	err := svc.ReconcileEntryTags(db, entry, []string{"no-such-tag"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func entryTagIDs(t *testing.T, db *gorm.DB, entryID string) []string {
	t.Helper()

	var ids []string
	require.NoError(t, db.Table("entry_tags").Where("entry_id = ?", entryID).Pluck("tag_id", &ids).Error)
	return ids
}
