package services

import (
	"errors"
	"fmt"
	"strings"

	"journal-backend/internal/models"

	"gorm.io/gorm"
)

type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

func (s *TagService) GetTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) GetPrebuiltTags() ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Where("is_prebuilt = ?", true).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *TagService) GetTagByID(tagID string) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.Where("id = ?", tagID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tag", ErrNotFound)
		}
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) CreateTag(req *models.TagCreateRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", ErrValidation)
	}

	var count int64
	if err := s.db.Model(&models.Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: tag %q", ErrConflict, name)
	}

	tag := models.Tag{Name: name}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a user-created tag and its entry associations. Prebuilt
// tags are protected.
func (s *TagService) DeleteTag(tagID string) error {
	var tag models.Tag
	if err := s.db.Where("id = ?", tagID).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: tag", ErrNotFound)
		}
		return err
	}

	if tag.IsPrebuilt {
		return fmt.Errorf("%w: prebuilt tags cannot be deleted", ErrValidation)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&tag).Association("Entries").Clear(); err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}

// SeedPrebuiltTags inserts any missing prebuilt tags. Existence is checked
// case-insensitively so a user-created "work" blocks reseeding "Work".
func (s *TagService) SeedPrebuiltTags() error {
	for _, name := range models.PrebuiltTagNames {
		var count int64
		if err := s.db.Model(&models.Tag{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		tag := models.Tag{Name: name, IsPrebuilt: true}
		if err := s.db.Create(&tag).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReconcileEntryTags brings an entry's tag associations in line with the
// desired set, linking and unlinking only the difference. Running it twice
// with the same desired set is a no-op.
func (s *TagService) ReconcileEntryTags(tx *gorm.DB, entry *models.Entry, desired []string) error {
	want, err := s.resolveTags(tx, desired)
	if err != nil {
		return err
	}

	var current []models.Tag
	if err := tx.Model(entry).Association("Tags").Find(&current); err != nil {
		return err
	}

	wantByID := make(map[string]models.Tag, len(want))
	for _, t := range want {
		wantByID[t.ID] = t
	}
	haveByID := make(map[string]models.Tag, len(current))
	for _, t := range current {
		haveByID[t.ID] = t
	}

	var toRemove []models.Tag
	for id, t := range haveByID {
		if _, ok := wantByID[id]; !ok {
			toRemove = append(toRemove, t)
		}
	}
	var toAdd []models.Tag
	for id, t := range wantByID {
		if _, ok := haveByID[id]; !ok {
			toAdd = append(toAdd, t)
		}
	}

	if len(toRemove) > 0 {
		if err := tx.Model(entry).Association("Tags").Delete(&toRemove); err != nil {
			return err
		}
	}
	if len(toAdd) > 0 {
		if err := tx.Model(entry).Association("Tags").Append(&toAdd); err != nil {
			return err
		}
	}
	return nil
}

// resolveTags looks each identifier up by id, then by name. The name fallback
// keeps tag references working across a rename that reissued ids.
func (s *TagService) resolveTags(tx *gorm.DB, refs []string) ([]models.Tag, error) {
	var tags []models.Tag
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		var tag models.Tag
		err := tx.Where("id = ?", ref).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = tx.Where("name = ?", ref).First(&tag).Error
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tag %q", ErrNotFound, ref)
		}
		if err != nil {
			return nil, err
		}
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		tags = append(tags, tag)
	}
	return tags, nil
}
