package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

type FishSpeciesInput struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Order       int     `json:"order"`
}

func (in FishSpeciesInput) Model() (db.FishSpecies, error) {
	item := db.FishSpecies{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		ImageURL:    optionalString(in.ImageURL),
	}
	item.SortOrder = in.Order
	return item, nil
}

type FishSpeciesPatch struct {
	PatchID
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
}

func (p FishSpeciesPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("name", p.Name)
	c.text("description", p.Description)
	c.optional("image_url", p.ImageURL)
	c.integer("sort_order", p.Order)
	return c, nil
}

type GalleryImageInput struct {
	URL     string  `json:"url" binding:"required,notblank"`
	Caption *string `json:"caption"`
	Order   int     `json:"order"`
}

func (in GalleryImageInput) Model() (db.GalleryImage, error) {
	item := db.GalleryImage{URL: strings.TrimSpace(in.URL), Caption: optionalString(in.Caption)}
	item.SortOrder = in.Order
	return item, nil
}

type GalleryImagePatch struct {
	PatchID
	URL     *string `json:"url" binding:"omitempty,notblank"`
	Caption *string `json:"caption"`
	Order   *int    `json:"order"`
}

func (p GalleryImagePatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("url", p.URL)
	c.optional("caption", p.Caption)
	c.integer("sort_order", p.Order)
	return c, nil
}

type FishingTipInput struct {
	Title   string `json:"title" binding:"required,notblank"`
	Content string `json:"content" binding:"required,notblank"`
	Order   int    `json:"order"`
}

func (in FishingTipInput) Model() (db.FishingTip, error) {
	item := db.FishingTip{Title: strings.TrimSpace(in.Title), Content: strings.TrimSpace(in.Content)}
	item.SortOrder = in.Order
	return item, nil
}

type FishingTipPatch struct {
	PatchID
	Title   *string `json:"title" binding:"omitempty,notblank"`
	Content *string `json:"content" binding:"omitempty,notblank"`
	Order   *int    `json:"order"`
}

func (p FishingTipPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("title", p.Title)
	c.text("content", p.Content)
	c.integer("sort_order", p.Order)
	return c, nil
}
