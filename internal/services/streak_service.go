package services

import (
	"sort"
	"time"

	"journal-backend/internal/models"

	"gorm.io/gorm"
)

type StreakService struct {
	db *gorm.DB
}

func NewStreakService(db *gorm.DB) *StreakService {
	return &StreakService{db: db}
}

func (s *StreakService) GetStreakInfo(userID string, asOf time.Time) (*models.StreakInfo, error) {
	dates, err := s.entryDates(userID)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Entry{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	return &models.StreakInfo{
		CurrentStreak: CurrentStreak(dates, asOf),
		LongestStreak: LongestStreak(dates),
		TotalEntries:  total,
	}, nil
}

func (s *StreakService) GetMissedDays(userID string, from, to time.Time) ([]string, error) {
	dates, err := s.entryDates(userID)
	if err != nil {
		return nil, err
	}
	return formatDates(MissedDays(dates, from, to)), nil
}

// GetCalendar returns the month's entry dates plus the days missed so far.
// The missed-day window never extends past today.
func (s *StreakService) GetCalendar(userID string, year int, month time.Month, today time.Time) (*models.CalendarData, error) {
	dates, err := s.entryDates(userID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	end := models.DateOnly(today)
	if monthEnd.Before(end) {
		end = monthEnd
	}

	var inMonth []time.Time
	for _, d := range dates {
		if !d.Before(monthStart) && !d.After(monthEnd) {
			inMonth = append(inMonth, d)
		}
	}
	sort.Slice(inMonth, func(i, j int) bool { return inMonth[i].Before(inMonth[j]) })

	data := &models.CalendarData{
		Year:             year,
		Month:            int(month),
		DatesWithEntries: formatDates(inMonth),
		MissedDays:       []string{},
	}
	if !end.Before(monthStart) {
		data.MissedDays = formatDates(MissedDays(dates, monthStart, end))
	}
	return data, nil
}

func (s *StreakService) entryDates(userID string) ([]time.Time, error) {
	var raw []time.Time
	err := s.db.Model(&models.Entry{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("entry_date", &raw).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(raw))
	for i, d := range raw {
		dates[i] = models.DateOnly(d)
	}
	return dates, nil
}

// CurrentStreak counts consecutive entry days ending at asOf. A streak that
// ran through yesterday still counts before today's entry has been written;
// beyond that one grace day it is broken.
func CurrentStreak(dates []time.Time, asOf time.Time) int {
	set := dateSet(dates)
	day := models.DateOnly(asOf)

	if !set[day] {
		day = day.AddDate(0, 0, -1)
		if !set[day] {
			return 0
		}
	}

	streak := 0
	for set[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak returns the length of the longest run of consecutive entry
// days anywhere in the history.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(dates))
	for d := range dateSet(dates) {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 1
		}
	}
	return longest
}

// MissedDays enumerates [from, to] inclusive and returns the days without an
// entry, ascending.
func MissedDays(dates []time.Time, from, to time.Time) []time.Time {
	set := dateSet(dates)
	var missed []time.Time
	for day := models.DateOnly(from); !day.After(models.DateOnly(to)); day = day.AddDate(0, 0, 1) {
		if !set[day] {
			missed = append(missed, day)
		}
	}
	return missed
}

func dateSet(dates []time.Time) map[time.Time]bool {
	set := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		set[models.DateOnly(d)] = true
	}
	return set
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format(models.DateFormat)
	}
	return out
}
