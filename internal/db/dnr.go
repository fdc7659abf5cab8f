package db

// DnrLink is an external Department of Natural Resources link.
type DnrLink struct {
	Model
	Ordered
	Title       string  `gorm:"not null" json:"title"`
	URL         string  `gorm:"not null" json:"url"`
	Description *string `gorm:"type:text" json:"description"`
}

// DnrResource is a DNR document or notice, optionally linked.
type DnrResource struct {
	Model
	Ordered
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	URL         *string `json:"url"`
}
