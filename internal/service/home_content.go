package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

// CarouselImageInput 创建首页轮播图。
type CarouselImageInput struct {
	URL   string  `json:"url" binding:"required,notblank"`
	Alt   *string `json:"alt"`
	Order int     `json:"order"`
}

func (in CarouselImageInput) Model() (db.CarouselImage, error) {
	item := db.CarouselImage{URL: strings.TrimSpace(in.URL), Alt: optionalString(in.Alt)}
	item.SortOrder = in.Order
	return item, nil
}

// CarouselImagePatch 更新首页轮播图。
type CarouselImagePatch struct {
	PatchID
	URL   *string `json:"url" binding:"omitempty,notblank"`
	Alt   *string `json:"alt"`
	Order *int    `json:"order"`
}

func (p CarouselImagePatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("url", p.URL)
	c.optional("alt", p.Alt)
	c.integer("sort_order", p.Order)
	return c, nil
}
