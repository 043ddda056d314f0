package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"journal-backend/internal/models"

	"gorm.io/gorm"
)

type EntryService struct {
	db   *gorm.DB
	tags *TagService
}

func NewEntryService(db *gorm.DB, tags *TagService) *EntryService {
	return &EntryService{db: db, tags: tags}
}

// Upsert is the only write path for entries. It finds or creates the entry
// for (user, date), so a user can never end up with two entries on one day.
func (s *EntryService) Upsert(userID string, req *models.EntryUpsertRequest) (*models.Entry, error) {
	date, err := time.Parse(models.DateFormat, req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: entry_date must be %s", ErrValidation, models.DateFormat)
	}
	date = models.DateOnly(date)

	primary, err := models.ParseMood(req.PrimaryMood)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	secondary, err := parseMoodList(req.SecondaryMoods)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.CategoryID != nil {
		var count int64
		if err := s.db.Model(&models.Category{}).Where("id = ?", *req.CategoryID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: category", ErrNotFound)
		}
	}

	var entryID string
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var entry models.Entry
		err := tx.Where("user_id = ? AND entry_date = ?", userID, date).First(&entry).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"title":           req.Title,
				"content":         req.Content,
				"is_markdown":     req.IsMarkdown,
				"primary_mood":    primary,
				"secondary_moods": secondary,
				"category_id":     req.CategoryID,
			}
			if err := tx.Model(&entry).Updates(updates).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = models.Entry{
				UserID:        userID,
				EntryDate:     date,
				Title:         req.Title,
				Content:       req.Content,
				IsMarkdown:    req.IsMarkdown,
				PrimaryMood:   primary,
				SecondaryMood: secondary,
				CategoryID:    req.CategoryID,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		default:
			return err
		}

		if err := s.tags.ReconcileEntryTags(tx, &entry, req.TagIDs); err != nil {
			return err
		}
		entryID = entry.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetEntryByID(userID, entryID)
}

func (s *EntryService) GetEntryByID(userID, entryID string) (*models.Entry, error) {
	var entry models.Entry
	err := s.db.Preload("Category").Preload("Tags").
		Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: entry", ErrNotFound)
		}
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) GetEntryByDate(userID string, date time.Time) (*models.Entry, error) {
	var entry models.Entry
	err := s.db.Preload("Category").Preload("Tags").
		Where("user_id = ? AND entry_date = ?", userID, models.DateOnly(date)).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no entry for this date", ErrNotFound)
		}
		return nil, err
	}
	return &entry, nil
}

func (s *EntryService) HasEntryForDate(userID string, date time.Time) (bool, error) {
	var count int64
	err := s.db.Model(&models.Entry{}).
		Where("user_id = ? AND entry_date = ?", userID, models.DateOnly(date)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *EntryService) DeleteEntry(userID, entryID string) error {
	var entry models.Entry
	if err := s.db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: entry", ErrNotFound)
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entry).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&entry).Error
	})
}

// Search applies every supplied filter, ANDed across predicate groups and
// ORed within one. Absent or empty filters are no-ops.
func (s *EntryService) Search(userID string, req *models.EntrySearchRequest) (*models.EntrySearchResult, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}

	query := s.db.Model(&models.Entry{}).Where("user_id = ?", userID)

	if text := strings.TrimSpace(req.Query); text != "" {
		pattern := "%" + strings.ToLower(text) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	if req.From != nil {
		from, err := time.Parse(models.DateFormat, *req.From)
		if err != nil {
			return nil, fmt.Errorf("%w: from must be %s", ErrValidation, models.DateFormat)
		}
		query = query.Where("entry_date >= ?", models.DateOnly(from))
	}
	if req.To != nil {
		to, err := time.Parse(models.DateFormat, *req.To)
		if err != nil {
			return nil, fmt.Errorf("%w: to must be %s", ErrValidation, models.DateFormat)
		}
		query = query.Where("entry_date <= ?", models.DateOnly(to))
	}

	if len(req.Moods) > 0 {
		moods := make([]models.Mood, 0, len(req.Moods))
		for _, raw := range req.Moods {
			mood, err := models.ParseMood(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrValidation, err)
			}
			moods = append(moods, mood)
		}
		query = query.Where("primary_mood IN ?", moods)
	}

	if len(req.TagIDs) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM entry_tags WHERE entry_tags.entry_id = entries.id AND entry_tags.tag_id IN ?)",
			req.TagIDs)
	}

	if req.CategoryID != nil {
		query = query.Where("category_id = ?", *req.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (req.Page - 1) * req.PageSize
	var entries []models.Entry
	err := query.Preload("Category").Preload("Tags").
		Order("entry_date DESC, id DESC").
		Limit(req.PageSize).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return &models.EntrySearchResult{
		Entries:    entries,
		TotalCount: total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(req.PageSize))),
	}, nil
}

func parseMoodList(raw []string) (models.MoodList, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	moods := make(models.MoodList, 0, len(raw))
	for _, r := range raw {
		m, err := models.ParseMood(r)
		if err != nil {
			return nil, err
		}
		moods = append(moods, m)
	}
	return moods, nil
}
