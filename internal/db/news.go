package db

import "time"

// Event is a dated association event.
type Event struct {
	Model
	NewsPageID  uint      `gorm:"index;not null" json:"newsPageId"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Location    *string   `json:"location"`
}

// NewsItem is a dated news post.
type NewsItem struct {
	Model
	NewsPageID uint      `gorm:"index;not null" json:"newsPageId"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	ImageURL   *string   `json:"imageUrl"`
}
