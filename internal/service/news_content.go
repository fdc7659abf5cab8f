package service

import (
	"strings"

	"github.com/potatolake/internal/db"
)

// EventInput accepts dates as YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339.
type EventInput struct {
	Title       string  `json:"title" binding:"required,notblank"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required,notblank"`
	Location    *string `json:"location"`
}

func (in EventInput) Model() (db.Event, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return db.Event{}, invalidField("date", "must be a date")
	}
	return db.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: optionalString(in.Description),
		Date:        date,
		Location:    optionalString(in.Location),
	}, nil
}

type EventPatch struct {
	PatchID
	Title       *string `json:"title" binding:"omitempty,notblank"`
	Description *string `json:"description"`
	Date        *string `json:"date" binding:"omitempty,notblank"`
	Location    *string `json:"location"`
}

func (p EventPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("title", p.Title)
	c.optional("description", p.Description)
	c.optional("location", p.Location)
	if err := c.date("date", "date", p.Date); err != nil {
		return nil, err
	}
	return c, nil
}

type NewsItemInput struct {
	Title    string  `json:"title" binding:"required,notblank"`
	Content  string  `json:"content" binding:"required,notblank"`
	Date     string  `json:"date" binding:"required,notblank"`
	ImageURL *string `json:"imageUrl"`
}

func (in NewsItemInput) Model() (db.NewsItem, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return db.NewsItem{}, invalidField("date", "must be a date")
	}
	return db.NewsItem{
		Title:    strings.TrimSpace(in.Title),
		Content:  strings.TrimSpace(in.Content),
		Date:     date,
		ImageURL: optionalString(in.ImageURL),
	}, nil
}

type NewsItemPatch struct {
	PatchID
	Title    *string `json:"title" binding:"omitempty,notblank"`
	Content  *string `json:"content" binding:"omitempty,notblank"`
	Date     *string `json:"date" binding:"omitempty,notblank"`
	ImageURL *string `json:"imageUrl"`
}

func (p NewsItemPatch) Columns() (map[string]any, error) {
	c := columns{}
	c.text("title", p.Title)
	c.text("content", p.Content)
	c.optional("image_url", p.ImageURL)
	if err := c.date("date", "date", p.Date); err != nil {
		return nil, err
	}
	return c, nil
}
