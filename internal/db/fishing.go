package db

// FishSpecies describes a species found in the lake.
type FishSpecies struct {
	Model
	Ordered
	FishingPageID uint    `gorm:"index;not null" json:"fishingPageId"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `gorm:"type:text" json:"description"`
	ImageURL      *string `json:"imageUrl"`
}

// TableName keeps the plural-less species name.
func (FishSpecies) TableName() string {
	return "fish_species"
}

// GalleryImage is a photo in the fishing page gallery.
type GalleryImage struct {
	Model
	Ordered
	FishingPageID uint    `gorm:"index;not null" json:"fishingPageId"`
	URL           string  `gorm:"not null" json:"url"`
	Caption       *string `json:"caption"`
}

// FishingTip is a short how-to shown under the species list.
type FishingTip struct {
	Model
	Ordered
	FishingPageID uint   `gorm:"index;not null" json:"fishingPageId"`
	Title         string `gorm:"not null" json:"title"`
	Content       string `gorm:"type:text" json:"content"`
}
