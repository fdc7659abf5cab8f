package service

// HeroPatch 对应各页面共有的横幅字段。
type HeroPatch struct {
	HeroTitle    *string `json:"heroTitle" binding:"omitempty,notblank"`
	HeroSubtitle *string `json:"heroSubtitle"`
	HeroImageURL *string `json:"heroImageUrl"`
}

func (p HeroPatch) columns() columns {
	c := columns{}
	c.text("hero_title", p.HeroTitle)
	c.text("hero_subtitle", p.HeroSubtitle)
	c.optional("hero_image_url", p.HeroImageURL)
	return c
}

type HomePagePatch struct {
	HeroPatch
	WelcomeTitle         *string   `json:"welcomeTitle"`
	WelcomeText          *string   `json:"welcomeText"`
	FishingCardTitle     *string   `json:"fishingCardTitle"`
	FishingCardText      *string   `json:"fishingCardText"`
	FishingCardItems     *[]string `json:"fishingCardItems"`
	ResortsCardTitle     *string   `json:"resortsCardTitle"`
	ResortsCardText      *string   `json:"resortsCardText"`
	AssociationCardTitle *string   `json:"associationCardTitle"`
	AssociationCardText  *string   `json:"associationCardText"`
}

func (p HomePagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("welcome_title", p.WelcomeTitle)
	c.text("welcome_text", p.WelcomeText)
	c.text("fishing_card_title", p.FishingCardTitle)
	c.text("fishing_card_text", p.FishingCardText)
	c.list("fishing_card_items", p.FishingCardItems)
	c.clearable("resorts_card_title", p.ResortsCardTitle)
	c.clearable("resorts_card_text", p.ResortsCardText)
	c.clearable("association_card_title", p.AssociationCardTitle)
	c.clearable("association_card_text", p.AssociationCardText)
	return c, nil
}

type FishingPagePatch struct {
	HeroPatch
	IntroText       *string `json:"introText"`
	RegulationsText *string `json:"regulationsText"`
}

func (p FishingPagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("intro_text", p.IntroText)
	c.clearable("regulations_text", p.RegulationsText)
	return c, nil
}

type ResortsPagePatch struct {
	HeroPatch
	IntroText *string `json:"introText"`
}

func (p ResortsPagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("intro_text", p.IntroText)
	return c, nil
}

type DnrPagePatch struct {
	HeroPatch
	IntroText   *string `json:"introText"`
	LakeFacts   *string `json:"lakeFacts"`
	ContactInfo *string `json:"contactInfo"`
}

func (p DnrPagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("intro_text", p.IntroText)
	c.text("lake_facts", p.LakeFacts)
	c.clearable("contact_info", p.ContactInfo)
	return c, nil
}

type NewsPagePatch struct {
	HeroPatch
	IntroText *string `json:"introText"`
}

func (p NewsPagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("intro_text", p.IntroText)
	return c, nil
}

type AssociationPagePatch struct {
	HeroPatch
	MissionText    *string `json:"missionText"`
	MembershipText *string `json:"membershipText"`
	MeetingInfo    *string `json:"meetingInfo"`
}

func (p AssociationPagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("mission_text", p.MissionText)
	c.text("membership_text", p.MembershipText)
	c.clearable("meeting_info", p.MeetingInfo)
	return c, nil
}

type AreaServicesPagePatch struct {
	HeroPatch
	IntroText *string `json:"introText"`
}

func (p AreaServicesPagePatch) Columns() (map[string]any, error) {
	c := p.HeroPatch.columns()
	c.text("intro_text", p.IntroText)
	return c, nil
}
