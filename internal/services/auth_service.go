package services

import (
	"errors"
	"fmt"
	"strings"

	"journal-backend/internal/models"
	"journal-backend/internal/utils"

	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned on any login failure; it deliberately
// does not distinguish an unknown username from a wrong PIN.
var ErrInvalidCredentials = errors.New("invalid username or PIN")

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if len(req.Pin) < 4 {
		return nil, fmt.Errorf("%w: PIN must be at least 4 characters", ErrValidation)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: username %q", ErrConflict, username)
	}

	user := models.User{
		Username: username,
		PinHash:  utils.HashPin(req.Pin),
	}
	if req.Theme != "" {
		user.Theme = req.Theme
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(req *models.LoginRequest) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !utils.VerifyPin(req.Pin, user.PinHash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) UpdateTheme(userID, theme string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Update("theme", theme).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user and everything they own.
func (s *AuthService) DeleteUser(userID string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var entries []models.Entry
		if err := tx.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
			return err
		}
		for i := range entries {
			if err := tx.Model(&entries[i]).Association("Tags").Clear(); err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Entry{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
