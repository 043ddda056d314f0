package services

import (
	"testing"
	"time"

	"journal-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dates(days ...string) []time.Time {
	out := make([]time.Time, len(days))
	for i, d := range days {
		out[i] = day(d)
	}
	return out
}

func TestCurrentStreak(t *testing.T) {
	asOf := day("2025-06-10")

	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no entries", nil, 0},
		{"only day before yesterday", dates("2025-06-08"), 0},
		{"yesterday and before, grace day", dates("2025-06-09", "2025-06-08"), 2},
		{"today and two before", dates("2025-06-10", "2025-06-09", "2025-06-08"), 3},
		{"single entry today", dates("2025-06-10"), 1},
		{"single entry yesterday", dates("2025-06-09"), 1},
		{"gap breaks streak", dates("2025-06-10", "2025-06-08", "2025-06-07"), 1},
		{"future entries ignored by anchor", dates("2025-06-12", "2025-06-10"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentStreak(tt.dates, asOf))
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"single", dates("2025-01-01"), 1},
		{"two runs picks longer", dates("2025-01-01", "2025-01-02", "2025-01-05", "2025-01-06", "2025-01-07"), 3},
		{"unsorted input", dates("2025-01-03", "2025-01-01", "2025-01-02"), 3},
		{"duplicates collapse", dates("2025-01-01", "2025-01-01", "2025-01-02"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.dates))
		})
	}
}

func TestLongestStreakNeverBelowCurrent(t *testing.T) {
	entryDates := dates("2025-06-10", "2025-06-09", "2025-06-08", "2025-06-01")
	for _, asOf := range []string{"2025-06-10", "2025-06-11", "2025-06-12", "2025-07-01"} {
		current := CurrentStreak(entryDates, day(asOf))
		assert.GreaterOrEqual(t, LongestStreak(entryDates), current, "asOf=%s", asOf)
	}
}

func TestMissedDays(t *testing.T) {
	entryDates := dates("2025-03-02", "2025-03-04")

	missed := MissedDays(entryDates, day("2025-03-01"), day("2025-03-05"))
	assert.Equal(t, dates("2025-03-01", "2025-03-03", "2025-03-05"), missed)

	// Missed days plus entry days partition the range exactly.
	assert.Len(t, missed, 5-len(entryDates))
	for _, m := range missed {
		for _, e := range entryDates {
			assert.NotEqual(t, e, m)
		}
	}
}

func TestMissedDaysEmptyEntrySet(t *testing.T) {
	missed := MissedDays(nil, day("2025-03-01"), day("2025-03-03"))
	assert.Equal(t, dates("2025-03-01", "2025-03-02", "2025-03-03"), missed)
}

func TestGetStreakInfo(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	other := seedUser(t, db, "bob")

	seedEntry(t, db, user.ID, day("2025-06-09"), models.MoodHappy, "one")
	seedEntry(t, db, user.ID, day("2025-06-08"), models.MoodCalm, "two")
	seedEntry(t, db, user.ID, day("2025-06-01"), models.MoodSad, "three")
	// Another user's entries must not leak into the streak.
	seedEntry(t, db, other.ID, day("2025-06-10"), models.MoodHappy, "not mine")

	svc := NewStreakService(db)
	info, err := svc.GetStreakInfo(user.ID, day("2025-06-10"))
	require.NoError(t, err)

	assert.Equal(t, 2, info.CurrentStreak)
	assert.Equal(t, 2, info.LongestStreak)
	assert.Equal(t, int64(3), info.TotalEntries)
}

func TestGetCalendar(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")

	seedEntry(t, db, user.ID, day("2025-03-02"), models.MoodHappy, "a")
	seedEntry(t, db, user.ID, day("2025-03-05"), models.MoodCalm, "b")
	seedEntry(t, db, user.ID, day("2025-04-01"), models.MoodSad, "other month")

	svc := NewStreakService(db)
	data, err := svc.GetCalendar(user.ID, 2025, time.March, day("2025-03-06"))
	require.NoError(t, err)

	assert.Equal(t, 2025, data.Year)
	assert.Equal(t, 3, data.Month)
	assert.Equal(t, []string{"2025-03-02", "2025-03-05"}, data.DatesWithEntries)
	assert.Equal(t, []string{"2025-03-01", "2025-03-03", "2025-03-04", "2025-03-06"}, data.MissedDays)
}

func TestGetCalendarFutureMonth(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")

	svc := NewStreakService(db)
	data, err := svc.GetCalendar(user.ID, 2025, time.December, day("2025-03-06"))
	require.NoError(t, err)

	assert.Empty(t, data.DatesWithEntries)
	assert.Empty(t, data.MissedDays)
}
