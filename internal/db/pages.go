package db

import "gorm.io/datatypes"

// HomePage backs the landing page. FishingCardItems is a JSON list of bullet points.
type HomePage struct {
	Model
	Hero
	WelcomeTitle         string                      `json:"welcomeTitle"`
	WelcomeText          string                      `gorm:"type:text" json:"welcomeText"`
	FishingCardTitle     string                      `json:"fishingCardTitle"`
	FishingCardText      string                      `gorm:"type:text" json:"fishingCardText"`
	FishingCardItems     datatypes.JSONSlice[string] `json:"fishingCardItems"`
	ResortsCardTitle     *string                     `json:"resortsCardTitle"`
	ResortsCardText      *string                     `gorm:"type:text" json:"resortsCardText"`
	AssociationCardTitle *string                     `json:"associationCardTitle"`
	AssociationCardText  *string                     `gorm:"type:text" json:"associationCardText"`
	CarouselImages       []CarouselImage             `gorm:"foreignKey:HomePageID" json:"carouselImages"`
}

// FishingPage backs /fishing and owns species, gallery and tips.
type FishingPage struct {
	Model
	Hero
	IntroText       string         `gorm:"type:text" json:"introText"`
	RegulationsText *string        `gorm:"type:text" json:"regulationsText"`
	FishSpecies     []FishSpecies  `gorm:"foreignKey:FishingPageID" json:"fishSpecies"`
	GalleryImages   []GalleryImage `gorm:"foreignKey:FishingPageID" json:"galleryImages"`
	FishingTips     []FishingTip   `gorm:"foreignKey:FishingPageID" json:"fishingTips"`
}

// ResortsPage backs /resorts.
type ResortsPage struct {
	Model
	Hero
	IntroText string   `gorm:"type:text" json:"introText"`
	Resorts   []Resort `gorm:"foreignKey:ResortsPageID" json:"resorts"`
}

// DnrPage backs /dnr. Its links and resources are top-level tables.
type DnrPage struct {
	Model
	Hero
	IntroText   string  `gorm:"type:text" json:"introText"`
	LakeFacts   string  `gorm:"type:text" json:"lakeFacts"`
	ContactInfo *string `gorm:"type:text" json:"contactInfo"`
}

// NewsPage backs /news and owns events and news items.
type NewsPage struct {
	Model
	Hero
	IntroText string     `gorm:"type:text" json:"introText"`
	Events    []Event    `gorm:"foreignKey:NewsPageID" json:"events"`
	News      []NewsItem `gorm:"foreignKey:NewsPageID" json:"news"`
}

// AssociationPage backs /association.
type AssociationPage struct {
	Model
	Hero
	MissionText    string  `gorm:"type:text" json:"missionText"`
	MembershipText string  `gorm:"type:text" json:"membershipText"`
	MeetingInfo    *string `gorm:"type:text" json:"meetingInfo"`
}

// AreaServicesPage backs /area-services and owns sponsors.
type AreaServicesPage struct {
	Model
	Hero
	IntroText string    `gorm:"type:text" json:"introText"`
	Sponsors  []Sponsor `gorm:"foreignKey:AreaServicesPageID" json:"sponsors"`
}
