package models

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

type StreakInfo struct {
	CurrentStreak int   `json:"current_streak"`
	LongestStreak int   `json:"longest_streak"`
	TotalEntries  int64 `json:"total_entries"`
}

type CalendarData struct {
	Year             int      `json:"year"`
	Month            int      `json:"month"`
	DatesWithEntries []string `json:"dates_with_entries"`
	MissedDays       []string `json:"missed_days"`
}

type MoodDistribution struct {
	MoodCounts       map[Mood]int         `json:"mood_counts"`
	CategoryCounts   map[MoodCategory]int `json:"category_counts"`
	MostFrequentMood *Mood                `json:"most_frequent_mood"`
}

type TagUsage struct {
	TagCounts []TagCount `json:"tag_counts"`
}

type TagCount struct {
	TagName string `json:"tag_name"`
	Count   int    `json:"count"`
}

type WordCountTrend struct {
	DailyWordCounts    map[string]int `json:"daily_word_counts"`
	TotalWords         int            `json:"total_words"`
	AverageWordsPerDay float64        `json:"average_words_per_day"`
}
