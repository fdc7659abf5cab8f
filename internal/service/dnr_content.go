package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

type DnrLinkInput struct {
	Title       string  `json:"title" binding:"required,notblank"`
	URL         string  `json:"url" binding:"required,notblank"`
	Description *string `json:"description"`
	Order       int     `json:"order"`
}

func (in DnrLinkInput) Model() (db.DnrLink, error) {
	item := db.DnrLink{
		Title:       strings.TrimSpace(in.Title),
		URL:         strings.TrimSpace(in.URL),
		Description: optionalString(in.Description),
	}
	item.SortOrder = in.Order
	return item, nil
}

type DnrLinkPatch struct {
	PatchID
	Title       *string `json:"title" binding:"omitempty,notblank"`
	URL         *string `json:"url" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

func (p DnrLinkPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("title", p.Title)
	c.text("url", p.URL)
	c.optional("description", p.Description)
	c.integer("sort_order", p.Order)
	return c, nil
}

type DnrResourceInput struct {
	Title       string  `json:"title" binding:"required,notblank"`
	Description string  `json:"description" binding:"required,notblank"`
	URL         *string `json:"url"`
	Order       int     `json:"order"`
}

func (in DnrResourceInput) Model() (db.DnrResource, error) {
	item := db.DnrResource{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		URL:         optionalString(in.URL),
	}
	item.SortOrder = in.Order
	return item, nil
}

type DnrResourcePatch struct {
	PatchID
	Title       *string `json:"title" binding:"omitempty,notblank"`
	Description *string `json:"description" binding:"omitempty,notblank"`
	URL         *string `json:"url"`
	Order       *int    `json:"order"`
}

func (p DnrResourcePatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("title", p.Title)
	c.text("description", p.Description)
	c.optional("url", p.URL)
	c.integer("sort_order", p.Order)
	return c, nil
}
