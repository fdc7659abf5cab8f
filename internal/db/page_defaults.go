package db

import "gorm.io/datatypes"

const (
	defaultResortsCardTitle     = "Lakeside Resorts"
	defaultResortsCardText      = "Cabins, campgrounds and family resorts right on the water."
	defaultAssociationCardTitle = "Join the Association"
	defaultAssociationCardText  = "Help protect Potato Lake for the next generation."
	defaultRegulationsText      = "Follow current Minnesota DNR fishing regulations. Check size and possession limits before you keep a fish."
	defaultDnrContactInfo       = "Minnesota DNR Information Center: 888-646-6367 or info.dnr@state.mn.us"
	defaultMeetingInfo          = "The annual meeting is held each summer at the Potato Lake town hall. Watch the news page for the date."
)

// DefaultHomePage is the row inserted on the first visit to /.
func DefaultHomePage() HomePage {
	return HomePage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "Welcome to Potato Lake",
			HeroSubtitle: "A clear northern lake cared for by its neighbours",
		},
		WelcomeTitle:     "Welcome to Potato Lake",
		WelcomeText:      "Potato Lake is a 2,100 acre lake in Hubbard County known for clear water, good fishing and quiet evenings.",
		FishingCardTitle: "Great Fishing",
		FishingCardText:  "Walleye, northern pike and bass are all found in the lake.",
		FishingCardItems: datatypes.JSONSlice[string]{
			"Walleye",
			"Northern Pike",
			"Largemouth Bass",
			"Panfish",
		},
		ResortsCardTitle:     StringPtr(defaultResortsCardTitle),
		ResortsCardText:      StringPtr(defaultResortsCardText),
		AssociationCardTitle: StringPtr(defaultAssociationCardTitle),
		AssociationCardText:  StringPtr(defaultAssociationCardText),
	}
}

func (p *HomePage) backfill() map[string]any {
	updates := map[string]any{}
	if p.ResortsCardTitle == nil {
		p.ResortsCardTitle = StringPtr(defaultResortsCardTitle)
		updates["resorts_card_title"] = defaultResortsCardTitle
	}
	if p.ResortsCardText == nil {
		p.ResortsCardText = StringPtr(defaultResortsCardText)
		updates["resorts_card_text"] = defaultResortsCardText
	}
	if p.AssociationCardTitle == nil {
		p.AssociationCardTitle = StringPtr(defaultAssociationCardTitle)
		updates["association_card_title"] = defaultAssociationCardTitle
	}
	if p.AssociationCardText == nil {
		p.AssociationCardText = StringPtr(defaultAssociationCardText)
		updates["association_card_text"] = defaultAssociationCardText
	}
	return updates
}

// DefaultFishingPage is the row inserted on the first visit to /fishing.
func DefaultFishingPage() FishingPage {
	return FishingPage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "Fishing on Potato Lake",
			HeroSubtitle: "Species, tips and regulations",
		},
		IntroText:       "Potato Lake supports a healthy mix of game fish and panfish all year round.",
		RegulationsText: StringPtr(defaultRegulationsText),
	}
}

func (p *FishingPage) backfill() map[string]any {
	if p.RegulationsText != nil {
		return nil
	}
	p.RegulationsText = StringPtr(defaultRegulationsText)
	return map[string]any{"regulations_text": defaultRegulationsText}
}

// DefaultResortsPage is the row inserted on the first visit to /resorts.
func DefaultResortsPage() ResortsPage {
	return ResortsPage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "Resorts & Lodging",
			HeroSubtitle: "Places to stay around the lake",
		},
		IntroText: "Find a cabin, campground or resort for your next stay on Potato Lake.",
	}
}

// DefaultDnrPage is the row inserted on the first visit to /dnr.
func DefaultDnrPage() DnrPage {
	return DnrPage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "DNR Information",
			HeroSubtitle: "Lake data and resources from the Minnesota DNR",
		},
		IntroText:   "The Minnesota Department of Natural Resources surveys Potato Lake and publishes lake data.",
		LakeFacts:   "Surface area: about 2,100 acres. Maximum depth: 41 feet. Water clarity: 14 feet.",
		ContactInfo: StringPtr(defaultDnrContactInfo),
	}
}

func (p *DnrPage) backfill() map[string]any {
	if p.ContactInfo != nil {
		return nil
	}
	p.ContactInfo = StringPtr(defaultDnrContactInfo)
	return map[string]any{"contact_info": defaultDnrContactInfo}
}

// DefaultNewsPage is the row inserted on the first visit to /news.
func DefaultNewsPage() NewsPage {
	return NewsPage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "News & Events",
			HeroSubtitle: "What is happening around Potato Lake",
		},
		IntroText: "Stay up to date with association news and upcoming events.",
	}
}

// DefaultAssociationPage is the row inserted on the first visit to /association.
func DefaultAssociationPage() AssociationPage {
	return AssociationPage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "Potato Lake Association",
			HeroSubtitle: "Neighbours working together for the lake",
		},
		MissionText:    "The Potato Lake Association works to preserve and improve water quality, habitat and the lake community.",
		MembershipText: "Membership is open to anyone who cares about Potato Lake. Dues support water testing and invasive species prevention.",
		MeetingInfo:    StringPtr(defaultMeetingInfo),
	}
}

func (p *AssociationPage) backfill() map[string]any {
	if p.MeetingInfo != nil {
		return nil
	}
	p.MeetingInfo = StringPtr(defaultMeetingInfo)
	return map[string]any{"meeting_info": defaultMeetingInfo}
}

// DefaultAreaServicesPage is the row inserted on the first visit to /area-services.
func DefaultAreaServicesPage() AreaServicesPage {
	return AreaServicesPage{
		Model: Model{ID: SingletonID},
		Hero: Hero{
			HeroTitle:    "Area Services",
			HeroSubtitle: "Local businesses that support the association",
		},
		IntroText: "These local businesses sponsor the association. Please support them.",
	}
}
