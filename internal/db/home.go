package db

// CarouselImage is one slide of the home page carousel.
type CarouselImage struct {
	Model
	Ordered
	HomePageID uint    `gorm:"index;not null" json:"homePageId"`
	URL        string  `gorm:"not null" json:"url"`
	Alt        *string `json:"alt"`
}
