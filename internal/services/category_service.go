package services

import (
	"errors"
	"fmt"
	"strings"

	"journal-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(req *models.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(categoryID string, req *models.CategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", ErrNotFound)
		}
		return nil, err
	}

	if err := s.db.Model(&category).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category and detaches it from any entries that
// referenced it.
func (s *CategoryService) DeleteCategory(categoryID string) error {
	var category models.Category
	if err := s.db.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category", ErrNotFound)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Entry{}).
			Where("category_id = ?", categoryID).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
