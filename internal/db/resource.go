package db

// Resource is a downloadable document or external link for members.
type Resource struct {
	Model
	Ordered
	Title       string  `gorm:"not null" json:"title"`
	URL         string  `gorm:"not null" json:"url"`
	Description *string `gorm:"type:text" json:"description"`
	Category    *string `json:"category"`
}
