package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

type ResourceInput struct {
	Title       string  `json:"title" binding:"required,notblank"`
	URL         string  `json:"url" binding:"required,notblank"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Order       int     `json:"order"`
}

func (in ResourceInput) Model() (db.Resource, error) {
	item := db.Resource{
		Title:       strings.TrimSpace(in.Title),
		URL:         strings.TrimSpace(in.URL),
		Description: optionalString(in.Description),
		Category:    optionalString(in.Category),
	}
	item.SortOrder = in.Order
	return item, nil
}

type ResourcePatch struct {
	PatchID
	Title       *string `json:"title" binding:"omitempty,notblank"`
	URL         *string `json:"url" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Order       *int    `json:"order"`
}

func (p ResourcePatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("title", p.Title)
	c.text("url", p.URL)
	c.optional("description", p.Description)
	c.optional("category", p.Category)
	c.integer("sort_order", p.Order)
	return c, nil
}
