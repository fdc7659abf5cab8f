package db

// Sponsor is a local business listed on the area services page.
type Sponsor struct {
	Model
	AreaServicesPageID uint    `gorm:"index;not null" json:"areaServicesPageId"`
	Name               string  `gorm:"not null" json:"name"`
	Description        *string `gorm:"type:text" json:"description"`
	Category           *string `json:"category"`
	Website            *string `json:"website"`
	Phone              *string `json:"phone"`
	LogoURL            *string `json:"logoUrl"`
}
