package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/potatolake/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeoService stores per-page head metadata keyed by page key ("home", "fishing", ...).
type SeoService struct {
	db *gorm.DB
}

// SeoInput creates or replaces the metadata for one page.
type SeoInput struct {
	Page        string  `json:"page" binding:"required,notblank"`
	Title       string  `json:"title" binding:"required,notblank"`
	Description string  `json:"description"`
	Keywords    *string `json:"keywords"`
	OgImageURL  *string `json:"ogImageUrl"`
}

// NewSeoService creates a SeoService instance.
func NewSeoService(gdb *gorm.DB) *SeoService {
	return &SeoService{db: gdb}
}

// List returns all metadata rows by page key.
func (s *SeoService) List() ([]db.SeoMetadata, error) {
	items := make([]db.SeoMetadata, 0)
	if err := s.db.Order("page asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("seo metadata: %w", err)
	}
	return items, nil
}

// ForPage returns the metadata for a page, or nil when none is stored.
func (s *SeoService) ForPage(page string) (*db.SeoMetadata, error) {
	var item db.SeoMetadata
	if err := s.db.Where("page = ?", strings.TrimSpace(page)).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Upsert inserts or overwrites the row for input.Page in one statement.
func (s *SeoService) Upsert(input SeoInput) (*db.SeoMetadata, error) {
	item := db.SeoMetadata{
		Page:        strings.TrimSpace(input.Page),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Keywords:    optionalString(input.Keywords),
		OgImageURL:  optionalString(input.OgImageURL),
	}
	if item.Page == "" {
		return nil, invalidField("page", "is required")
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "keywords", "og_image_url", "updated_at"}),
	}).Create(&item).Error
	if err != nil {
		return nil, fmt.Errorf("upsert seo %s: %w", item.Page, err)
	}

	return s.ForPage(item.Page)
}
