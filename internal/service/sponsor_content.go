package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

type SponsorInput struct {
	Name        string  `json:"name" binding:"required,notblank"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Website     *string `json:"website"`
	Phone       *string `json:"phone"`
	LogoURL     *string `json:"logoUrl"`
}

func (in SponsorInput) Model() (db.Sponsor, error) {
	return db.Sponsor{
		Name:        strings.TrimSpace(in.Name),
		Description: optionalString(in.Description),
		Category:    optionalString(in.Category),
		Website:     optionalString(in.Website),
		Phone:       optionalString(in.Phone),
		LogoURL:     optionalString(in.LogoURL),
	}, nil
}

type SponsorPatch struct {
	PatchID
	Name        *string `json:"name" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Website     *string `json:"website"`
	Phone       *string `json:"phone"`
	LogoURL     *string `json:"logoUrl"`
}

func (p SponsorPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("name", p.Name)
	c.optional("description", p.Description)
	c.optional("category", p.Category)
	c.optional("website", p.Website)
	c.optional("phone", p.Phone)
	c.optional("logo_url", p.LogoURL)
	return c, nil
}
