package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Mood is the closed set of moods an entry can carry.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodRelaxed    Mood = "relaxed"
	MoodGrateful   Mood = "grateful"
	MoodConfident  Mood = "confident"
	MoodCalm       Mood = "calm"
	MoodThoughtful Mood = "thoughtful"
	MoodCurious    Mood = "curious"
	MoodNostalgic  Mood = "nostalgic"
	MoodBored      Mood = "bored"
	MoodSad        Mood = "sad"
	MoodAngry      Mood = "angry"
	MoodStressed   Mood = "stressed"
	MoodLonely     Mood = "lonely"
	MoodAnxious    Mood = "anxious"
)

type MoodCategory string

const (
	MoodCategoryPositive MoodCategory = "positive"
	MoodCategoryNeutral  MoodCategory = "neutral"
	MoodCategoryNegative MoodCategory = "negative"
)

// AllMoods lists every mood, grouped by category: 5 positive, 5 neutral, 5 negative.
var AllMoods = []Mood{
	MoodHappy, MoodExcited, MoodRelaxed, MoodGrateful, MoodConfident,
	MoodCalm, MoodThoughtful, MoodCurious, MoodNostalgic, MoodBored,
	MoodSad, MoodAngry, MoodStressed, MoodLonely, MoodAnxious,
}

var MoodCategories = []MoodCategory{
	MoodCategoryPositive,
	MoodCategoryNeutral,
	MoodCategoryNegative,
}

var moodCategoryOf = map[Mood]MoodCategory{
	MoodHappy:      MoodCategoryPositive,
	MoodExcited:    MoodCategoryPositive,
	MoodRelaxed:    MoodCategoryPositive,
	MoodGrateful:   MoodCategoryPositive,
	MoodConfident:  MoodCategoryPositive,
	MoodCalm:       MoodCategoryNeutral,
	MoodThoughtful: MoodCategoryNeutral,
	MoodCurious:    MoodCategoryNeutral,
	MoodNostalgic:  MoodCategoryNeutral,
	MoodBored:      MoodCategoryNeutral,
	MoodSad:        MoodCategoryNegative,
	MoodAngry:      MoodCategoryNegative,
	MoodStressed:   MoodCategoryNegative,
	MoodLonely:     MoodCategoryNegative,
	MoodAnxious:    MoodCategoryNegative,
}

// Category returns the band this mood belongs to.
func (m Mood) Category() MoodCategory {
	return moodCategoryOf[m]
}

// Valid reports whether m is one of the known moods.
func (m Mood) Valid() bool {
	_, ok := moodCategoryOf[m]
	return ok
}

func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

// MoodList holds an entry's secondary moods. The database column stores a
// comma-separated encoding; it never leaves this type.
type MoodList []Mood

func (l MoodList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "", nil
	}
	parts := make([]string, len(l))
	for i, m := range l {
		parts[i] = string(m)
	}
	return strings.Join(parts, ","), nil
}

func (l *MoodList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into MoodList", value)
	}

	*l = nil
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := Mood(part)
		if m.Valid() {
			*l = append(*l, m)
		}
	}
	return nil
}
