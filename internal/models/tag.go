package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID         string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name       string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	IsPrebuilt bool           `json:"is_prebuilt" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	Entries []Entry `json:"entries,omitempty" gorm:"many2many:entry_tags;"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// PrebuiltTagNames is the fixed set of system tags seeded at startup and
// protected from deletion.
var PrebuiltTagNames = []string{
	"Work", "Career", "Studies", "Family", "Friends", "Relationships",
	"Health", "Fitness", "Personal Growth", "Self-care", "Hobbies", "Travel", "Nature",
	"Finance", "Spirituality", "Birthday", "Holiday", "Vacation", "Celebration", "Exercise",
	"Reading", "Writing", "Cooking", "Meditation", "Yoga", "Music", "Shopping", "Parenting",
	"Projects", "Planning", "Reflection",
}

type TagCreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
