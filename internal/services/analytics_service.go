package services

import (
	"sort"
	"time"

	"journal-backend/internal/models"

	"gorm.io/gorm"
)

const defaultTopTags = 10

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// GetMoodDistribution counts entries per primary mood in the range and rolls
// the counts up into the three mood categories. Moods with no entries are
// reported as zero.
func (s *AnalyticsService) GetMoodDistribution(userID string, from, to *time.Time) (*models.MoodDistribution, error) {
	query := s.db.Model(&models.Entry{}).Where("user_id = ?", userID)
	query = applyDateRange(query, "entry_date", from, to)

	var rows []struct {
		PrimaryMood models.Mood
		Count       int
	}
	err := query.Select("primary_mood, COUNT(*) AS count").
		Group("primary_mood").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dist := &models.MoodDistribution{
		MoodCounts:     make(map[models.Mood]int, len(models.AllMoods)),
		CategoryCounts: make(map[models.MoodCategory]int, len(models.MoodCategories)),
	}
	for _, m := range models.AllMoods {
		dist.MoodCounts[m] = 0
	}
	for _, c := range models.MoodCategories {
		dist.CategoryCounts[c] = 0
	}

	for _, row := range rows {
		dist.MoodCounts[row.PrimaryMood] = row.Count
		dist.CategoryCounts[row.PrimaryMood.Category()] += row.Count
	}

	dist.MostFrequentMood = mostFrequentMood(rows)
	return dist, nil
}

// GetTagUsage returns the topN most used tags in the range, counting
// entry-tag associations. Ties are broken alphabetically by tag name.
func (s *AnalyticsService) GetTagUsage(userID string, from, to *time.Time, topN int) (*models.TagUsage, error) {
	if topN <= 0 {
		topN = defaultTopTags
	}

	query := s.db.Table("entry_tags").
		Select("tags.name AS tag_name, COUNT(*) AS count").
		Joins("JOIN tags ON tags.id = entry_tags.tag_id").
		Joins("JOIN entries ON entries.id = entry_tags.entry_id").
		Where("entries.user_id = ? AND entries.deleted_at IS NULL AND tags.deleted_at IS NULL", userID)
	query = applyDateRange(query, "entries.entry_date", from, to)

	var counts []models.TagCount
	err := query.Group("tags.name").
		Order("count DESC, tags.name ASC").
		Limit(topN).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	if counts == nil {
		counts = []models.TagCount{}
	}
	return &models.TagUsage{TagCounts: counts}, nil
}

// GetWordCountTrend maps each entry day in [from, to] to its word count.
// Days without an entry are absent rather than zero. The average divides by
// the number of entry days, or by one when there are none.
func (s *AnalyticsService) GetWordCountTrend(userID string, from, to time.Time) (*models.WordCountTrend, error) {
	var rows []struct {
		EntryDate time.Time
		Content   string
	}
	err := s.db.Model(&models.Entry{}).
		Select("entry_date, content").
		Where("user_id = ? AND entry_date >= ? AND entry_date <= ?",
			userID, models.DateOnly(from), models.DateOnly(to)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	daily := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		words := models.CountWords(row.Content)
		daily[models.DateOnly(row.EntryDate).Format(models.DateFormat)] = words
		total += words
	}

	dayCount := len(daily)
	if dayCount == 0 {
		dayCount = 1
	}

	return &models.WordCountTrend{
		DailyWordCounts:    daily,
		TotalWords:         total,
		AverageWordsPerDay: float64(total) / float64(dayCount),
	}, nil
}

func applyDateRange(query *gorm.DB, column string, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where(column+" >= ?", models.DateOnly(*from))
	}
	if to != nil {
		query = query.Where(column+" <= ?", models.DateOnly(*to))
	}
	return query
}

func mostFrequentMood(rows []struct {
	PrimaryMood models.Mood
	Count       int
}) *models.Mood {
	if len(rows) == 0 {
		return nil
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].PrimaryMood < rows[j].PrimaryMood
	})
	mood := rows[0].PrimaryMood
	return &mood
}
