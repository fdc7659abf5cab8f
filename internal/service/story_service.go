package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/potatolake/internal/db"
	"gorm.io/gorm"
)

// StoryService manages community stories. Public reads only see approved rows.
type StoryService struct {
	db *gorm.DB
}

// StoryInput is a visitor submission.
type StoryInput struct {
	AuthorName string  `json:"authorName" binding:"required,notblank"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Title      string  `json:"title" binding:"required,notblank"`
	Content    string  `json:"content" binding:"required,notblank"`
	ImageURL   *string `json:"imageUrl"`
}

// StoryPatch is an admin edit or approval.
type StoryPatch struct {
	PatchID
	AuthorName *string `json:"authorName" binding:"omitempty,notblank"`
	Title      *string `json:"title" binding:"omitempty,notblank"`
	Content    *string `json:"content" binding:"omitempty,notblank"`
	ImageURL   *string `json:"imageUrl"`
	IsApproved *bool   `json:"isApproved"`
}

func (p StoryPatch) Columns() (map[string]any, error) {
	c := columns{}
	if err := c.required("author_name", "authorName", p.AuthorName); err != nil {
		return nil, err
	}
	if err := c.required("title", "title", p.Title); err != nil {
		return nil, err
	}
	if err := c.required("content", "content", p.Content); err != nil {
		return nil, err
	}
	c.optional("image_url", p.ImageURL)
	c.boolean("is_approved", p.IsApproved)
	return c, nil
}

// NewStoryService creates a StoryService instance.
func NewStoryService(gdb *gorm.DB) *StoryService {
	return &StoryService{db: gdb}
}

// ListApproved returns approved stories, newest first.
func (s *StoryService) ListApproved() ([]db.CommunityStory, error) {
	stories := make([]db.CommunityStory, 0)
	if err := s.db.Where("is_approved = ?", true).
		Order("created_at desc, id desc").
		Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("approved stories: %w", err)
	}
	return stories, nil
}

// ListAll returns every story for moderation.
func (s *StoryService) ListAll() ([]db.CommunityStory, error) {
	stories := make([]db.CommunityStory, 0)
	if err := s.db.Order("is_approved asc, created_at desc, id desc").Find(&stories).Error; err != nil {
		return nil, fmt.Errorf("stories: %w", err)
	}
	return stories, nil
}

// Submit stores a story as unapproved.
func (s *StoryService) Submit(input StoryInput) (*db.CommunityStory, error) {
	story := db.CommunityStory{
		AuthorName: strings.TrimSpace(input.AuthorName),
		Email:      optionalString(input.Email),
		Title:      strings.TrimSpace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		ImageURL:   optionalString(input.ImageURL),
		IsApproved: false,
	}
	if err := s.db.Create(&story).Error; err != nil {
		return nil, fmt.Errorf("submit story: %w", err)
	}
	return &story, nil
}

// Update merges an admin edit into the story.
func (s *StoryService) Update(patch StoryPatch) (*db.CommunityStory, error) {
	if patch.ID == 0 {
		return nil, invalidField("id", "is required")
	}

	var story db.CommunityStory
	if err := s.db.First(&story, patch.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	updates, err := patch.Columns()
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(&story).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update story %d: %w", patch.ID, err)
		}
	}
	if err := s.db.First(&story, patch.ID).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// Delete removes a story. Unknown ids return ErrNotFound.
func (s *StoryService) Delete(id uint) error {
	result := s.db.Delete(&db.CommunityStory{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete story %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountPending returns the number of stories awaiting approval.
func (s *StoryService) CountPending() (int64, error) {
	var total int64
	err := s.db.Model(&db.CommunityStory{}).Where("is_approved = ?", false).Count(&total).Error
	return total, err
}
