package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PinHash   string         `json:"-" gorm:"size:255;not null"`
	Theme     string         `json:"theme" gorm:"size:20;default:light"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Entries []Entry `json:"entries,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Pin      string `json:"pin" validate:"required,min=4"`
	Theme    string `json:"theme" validate:"omitempty,oneof=light dark"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Pin      string `json:"pin" validate:"required"`
}

type ThemeUpdateRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
