package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

type ResortInput struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description string  `json:"description"`
	Website     *string `json:"website"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	ImageURL    *string `json:"imageUrl"`
	Order       int     `json:"order"`
}

func (in ResortInput) Model() (db.Resort, error) {
	item := db.Resort{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Website:     optionalString(in.Website),
		Phone:       optionalString(in.Phone),
		Address:     optionalString(in.Address),
		ImageURL:    optionalString(in.ImageURL),
	}
	item.SortOrder = in.Order
	return item, nil
}

type ResortPatch struct {
	PatchID
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	ImageURL    *string `json:"imageUrl"`
	Order       *int    `json:"order"`
}

func (p ResortPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("name", p.Name)
	c.text("description", p.Description)
	c.optional("website", p.Website)
	c.optional("phone", p.Phone)
	c.optional("address", p.Address)
	c.optional("image_url", p.ImageURL)
	c.integer("sort_order", p.Order)
	return c, nil
}
