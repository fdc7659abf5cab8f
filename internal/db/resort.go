package db

// Resort is a lodging listing on the resorts page.
type Resort struct {
	Model
	Ordered
	ResortsPageID uint    `gorm:"index;not null" json:"resortsPageId"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	Website       *string `json:"website"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	ImageURL      *string `json:"imageUrl"`
}
