package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateFormat is the wire format for calendar dates. Entry dates carry no
// time-of-day or timezone semantics.
const DateFormat = "2006-01-02"

// DateOnly truncates t to a calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type Entry struct {
	ID            string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID        string         `json:"user_id" gorm:"type:varchar(36);not null;index"`
	EntryDate     time.Time      `json:"entry_date" gorm:"not null;index"`
	Title         string         `json:"title" gorm:"size:255"`
	Content       string         `json:"content" gorm:"type:text"`
	IsMarkdown    bool           `json:"is_markdown" gorm:"default:true"`
	PrimaryMood   Mood           `json:"primary_mood" gorm:"type:varchar(20);not null"`
	SecondaryMood MoodList       `json:"secondary_moods" gorm:"column:secondary_moods;type:text"`
	CategoryID    *string        `json:"category_id" gorm:"type:varchar(36);index"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:entry_tags;"`

	// Derived on every read, never stored.
	WordCount int `json:"word_count" gorm:"-"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

func (e *Entry) AfterFind(tx *gorm.DB) error {
	e.WordCount = CountWords(e.Content)
	return nil
}

// CountWords counts whitespace-delimited non-empty tokens.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

type EntryUpsertRequest struct {
	EntryDate      string   `json:"entry_date" validate:"required"`
	Title          string   `json:"title" validate:"max=255"`
	Content        string   `json:"content"`
	IsMarkdown     bool     `json:"is_markdown"`
	PrimaryMood    string   `json:"primary_mood" validate:"required,mood"`
	SecondaryMoods []string `json:"secondary_moods" validate:"max=2,dive,mood"`
	CategoryID     *string  `json:"category_id"`
	TagIDs         []string `json:"tag_ids"`
}

type EntrySearchRequest struct {
	Query      string   `json:"query"`
	From       *string  `json:"from"`
	To         *string  `json:"to"`
	Moods      []string `json:"moods" validate:"dive,mood"`
	TagIDs     []string `json:"tag_ids"`
	CategoryID *string  `json:"category_id"`
	Page       int      `json:"page" validate:"min=1"`
	PageSize   int      `json:"page_size" validate:"min=1,max=100"`
}

type EntrySearchResult struct {
	Entries    []Entry `json:"entries"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}
