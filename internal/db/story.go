package db

// CommunityStory is a visitor-submitted story. Only approved stories are public.
type CommunityStory struct {
	Model
	AuthorName string  `gorm:"not null" json:"authorName"`
	Email      *string `json:"email,omitempty"`
	Title      string  `gorm:"not null" json:"title"`
	Content    string  `gorm:"type:text;not null" json:"content"`
	ImageURL   *string `json:"imageUrl"`
	IsApproved bool    `gorm:"index;default:false" json:"isApproved"`
}
