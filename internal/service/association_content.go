package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

type MemberInput struct {
	Name     string  `json:"name" binding:"required,notblank"`
	Role     *string `json:"role"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	ImageURL *string `json:"imageUrl"`
	Order    int     `json:"order"`
}

func (in MemberInput) Model() (db.Member, error) {
	item := db.Member{
		Name:     strings.TrimSpace(in.Name),
		Role:     optionalString(in.Role),
		Email:    optionalString(in.Email),
		Phone:    optionalString(in.Phone),
		ImageURL: optionalString(in.ImageURL),
	}
	item.SortOrder = in.Order
	return item, nil
}

type MemberPatch struct {
	PatchID
	Name     *string `json:"name" binding:"omitempty,notblank"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	ImageURL *string `json:"imageUrl"`
	Order    *int    `json:"order"`
}

func (p MemberPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("name", p.Name)
	c.optional("role", p.Role)
	c.optional("email", p.Email)
	c.optional("phone", p.Phone)
	c.optional("image_url", p.ImageURL)
	c.integer("sort_order", p.Order)
	return c, nil
}

// MembershipTierInput 会员等级，Benefits 以 JSON 数组存储。
type MembershipTierInput struct {
	Name        string   `json:"name" binding:"required,notblank"`
	Price       string   `json:"price" binding:"required,notblank"`
	Description *string  `json:"description"`
	Benefits    []string `json:"benefits"`
	Order       int      `json:"order"`
}

func (in MembershipTierInput) Model() (db.MembershipTier, error) {
	item := db.MembershipTier{
		Name:        strings.TrimSpace(in.Name),
		Price:       strings.TrimSpace(in.Price),
		Description: optionalString(in.Description),
		Benefits:    cleanList(in.Benefits),
	}
	item.SortOrder = in.Order
	return item, nil
}

type MembershipTierPatch struct {
	PatchID
	Name        *string   `json:"name" binding:"omitempty,notblank"`
	Price       *string   `json:"price" binding:"omitempty,notblank"`
	Description *string   `json:"description"`
	Benefits    *[]string `json:"benefits"`
	Order       *int      `json:"order"`
}

func (p MembershipTierPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("name", p.Name)
	c.text("price", p.Price)
	c.optional("description", p.Description)
	c.list("benefits", p.Benefits)
	c.integer("sort_order", p.Order)
	return c, nil
}
