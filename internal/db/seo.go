package db

// SeoMetadata holds per-page head metadata keyed by page path key.
type SeoMetadata struct {
	Model
	Page        string  `gorm:"size:100;uniqueIndex;not null" json:"page"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Keywords    *string `json:"keywords"`
	OgImageURL  *string `json:"ogImageUrl"`
}

// TableName 保持表名单数形式。
func (SeoMetadata) TableName() string {
	return "seo_metadata"
}
