package handler

import (
	"encoding/json"

	"github.com/potatolake/internal/db"
)

// formField describes one input on an admin form. Kind selects the widget:
// text, textarea, image, url, email, date, number, list or checkbox.
type formField struct {
	Key      string
	Label    string
	Kind     string
	Required bool
}

type pageForm struct {
	Kind   db.PageKind
	Title  string
	Fields []formField
}

type collectionForm struct {
	Name         string
	Title        string
	Singular     string
	Parent       db.PageKind
	Fields       []formField
	Columns      []string
	Ordered      bool
	DeleteByPath bool
}

func heroFields(extra ...formField) []formField {
	fields := []formField{
		{Key: "heroTitle", Label: "Hero title", Kind: "text", Required: true},
		{Key: "heroSubtitle", Label: "Hero subtitle", Kind: "text"},
		{Key: "heroImageUrl", Label: "Hero image", Kind: "image"},
	}
	return append(fields, extra...)
}

var pageForms = []pageForm{
	{Kind: db.PageHome, Title: "Home Page", Fields: heroFields(
		formField{Key: "welcomeTitle", Label: "Welcome title", Kind: "text"},
		formField{Key: "welcomeText", Label: "Welcome text", Kind: "textarea"},
		formField{Key: "fishingCardTitle", Label: "Fishing card title", Kind: "text"},
		formField{Key: "fishingCardText", Label: "Fishing card text", Kind: "textarea"},
		formField{Key: "fishingCardItems", Label: "Fishing card items", Kind: "list"},
		formField{Key: "resortsCardTitle", Label: "Resorts card title", Kind: "text"},
		formField{Key: "resortsCardText", Label: "Resorts card text", Kind: "textarea"},
		formField{Key: "associationCardTitle", Label: "Association card title", Kind: "text"},
		formField{Key: "associationCardText", Label: "Association card text", Kind: "textarea"},
	)},
	{Kind: db.PageFishing, Title: "Fishing Page", Fields: heroFields(
		formField{Key: "introText", Label: "Introduction", Kind: "textarea"},
		formField{Key: "regulationsText", Label: "Regulations", Kind: "textarea"},
	)},
	{Kind: db.PageResorts, Title: "Resorts Page", Fields: heroFields(
		formField{Key: "introText", Label: "Introduction", Kind: "textarea"},
	)},
	{Kind: db.PageNews, Title: "News Page", Fields: heroFields(
		formField{Key: "introText", Label: "Introduction", Kind: "textarea"},
	)},
	{Kind: db.PageDnr, Title: "DNR Page", Fields: heroFields(
		formField{Key: "introText", Label: "Introduction", Kind: "textarea"},
		formField{Key: "lakeFacts", Label: "Lake facts", Kind: "textarea"},
		formField{Key: "contactInfo", Label: "Contact information", Kind: "textarea"},
	)},
	{Kind: db.PageAssociation, Title: "Association Page", Fields: heroFields(
		formField{Key: "missionText", Label: "Mission", Kind: "textarea"},
		formField{Key: "membershipText", Label: "Membership", Kind: "textarea"},
		formField{Key: "meetingInfo", Label: "Meeting information", Kind: "textarea"},
	)},
	{Kind: db.PageAreaServices, Title: "Area Services Page", Fields: heroFields(
		formField{Key: "introText", Label: "Introduction", Kind: "textarea"},
	)},
}

var collectionForms = []collectionForm{
	{
		Name: "carousel-images", Title: "Home Carousel", Singular: "carousel image", Parent: db.PageHome, Ordered: true,
		Fields: []formField{
			{Key: "url", Label: "Image", Kind: "image", Required: true},
			{Key: "alt", Label: "Alt text", Kind: "text"},
		},
		Columns: []string{"url", "alt"},
	},
	{
		Name: "fish-species", Title: "Fish Species", Singular: "fish species", Parent: db.PageFishing, Ordered: true,
		Fields: []formField{
			{Key: "name", Label: "Name", Kind: "text", Required: true},
			{Key: "description", Label: "Description", Kind: "textarea"},
			{Key: "imageUrl", Label: "Image", Kind: "image"},
		},
		Columns: []string{"name", "description"},
	},
	{
		Name: "gallery-images", Title: "Fishing Gallery", Singular: "gallery image", Parent: db.PageFishing, Ordered: true,
		Fields: []formField{
			{Key: "url", Label: "Image", Kind: "image", Required: true},
			{Key: "caption", Label: "Caption", Kind: "text"},
		},
		Columns: []string{"url", "caption"},
	},
	{
		Name: "fishing-tips", Title: "Fishing Tips", Singular: "fishing tip", Parent: db.PageFishing, Ordered: true,
		Fields: []formField{
			{Key: "title", Label: "Title", Kind: "text", Required: true},
			{Key: "content", Label: "Tip", Kind: "textarea", Required: true},
		},
		Columns: []string{"title", "content"},
	},
	{
		Name: "resorts", Title: "Resorts", Singular: "resort", Parent: db.PageResorts, Ordered: true,
		Fields: []formField{
			{Key: "name", Label: "Name", Kind: "text", Required: true},
			{Key: "description", Label: "Description", Kind: "textarea"},
			{Key: "website", Label: "Website", Kind: "url"},
			{Key: "phone", Label: "Phone", Kind: "text"},
			{Key: "address", Label: "Address", Kind: "text"},
			{Key: "imageUrl", Label: "Image", Kind: "image"},
		},
		Columns: []string{"name", "phone", "website"},
	},
	{
		Name: "events", Title: "Events", Singular: "event", Parent: db.PageNews,
		Fields: []formField{
			{Key: "title", Label: "Title", Kind: "text", Required: true},
			{Key: "date", Label: "Date", Kind: "date", Required: true},
			{Key: "location", Label: "Location", Kind: "text"},
			{Key: "description", Label: "Description", Kind: "textarea"},
		},
		Columns: []string{"date", "title", "location"},
	},
	{
		Name: "news", Title: "News", Singular: "news item", Parent: db.PageNews,
		Fields: []formField{
			{Key: "title", Label: "Title", Kind: "text", Required: true},
			{Key: "date", Label: "Date", Kind: "date", Required: true},
			{Key: "content", Label: "Content", Kind: "textarea", Required: true},
			{Key: "imageUrl", Label: "Image", Kind: "image"},
		},
		Columns: []string{"date", "title"},
	},
	{
		Name: "sponsors", Title: "Sponsors", Singular: "sponsor", Parent: db.PageAreaServices,
		Fields: []formField{
			{Key: "name", Label: "Name", Kind: "text", Required: true},
			{Key: "category", Label: "Category", Kind: "text"},
			{Key: "description", Label: "Description", Kind: "textarea"},
			{Key: "website", Label: "Website", Kind: "url"},
			{Key: "phone", Label: "Phone", Kind: "text"},
			{Key: "logoUrl", Label: "Logo", Kind: "image"},
		},
		Columns: []string{"name", "category", "phone"},
	},
	{
		Name: "members", Title: "Board Members", Singular: "member", Ordered: true,
		Fields: []formField{
			{Key: "name", Label: "Name", Kind: "text", Required: true},
			{Key: "role", Label: "Role", Kind: "text"},
			{Key: "email", Label: "Email", Kind: "email"},
			{Key: "phone", Label: "Phone", Kind: "text"},
			{Key: "imageUrl", Label: "Photo", Kind: "image"},
		},
		Columns: []string{"name", "role", "email"},
	},
	{
		Name: "membership-tiers", Title: "Membership Tiers", Singular: "membership tier", Ordered: true,
		Fields: []formField{
			{Key: "name", Label: "Name", Kind: "text", Required: true},
			{Key: "price", Label: "Price", Kind: "text", Required: true},
			{Key: "description", Label: "Description", Kind: "textarea"},
			{Key: "benefits", Label: "Benefits", Kind: "list"},
		},
		Columns: []string{"name", "price"},
	},
	{
		Name: "resources", Title: "Member Resources", Singular: "resource", Ordered: true,
		Fields: []formField{
			{Key: "title", Label: "Title", Kind: "text", Required: true},
			{Key: "url", Label: "File or link", Kind: "file", Required: true},
			{Key: "category", Label: "Category", Kind: "text"},
			{Key: "description", Label: "Description", Kind: "textarea"},
		},
		Columns: []string{"title", "category", "url"},
	},
	{
		Name: "dnr-links", Title: "DNR Links", Singular: "DNR link", Ordered: true, DeleteByPath: true,
		Fields: []formField{
			{Key: "title", Label: "Title", Kind: "text", Required: true},
			{Key: "url", Label: "URL", Kind: "url", Required: true},
			{Key: "description", Label: "Description", Kind: "textarea"},
		},
		Columns: []string{"title", "url"},
	},
	{
		Name: "dnr-resources", Title: "DNR Resources", Singular: "DNR resource", Ordered: true, DeleteByPath: true,
		Fields: []formField{
			{Key: "title", Label: "Title", Kind: "text", Required: true},
			{Key: "description", Label: "Description", Kind: "textarea", Required: true},
			{Key: "url", Label: "File or link", Kind: "file"},
		},
		Columns: []string{"title", "url"},
	},
}

var seoPageKeys = []string{"home", "fishing", "resorts", "news", "dnr", "association", "area-services", "stories"}

func findPageForm(kind string) (pageForm, bool) {
	for _, form := range pageForms {
		if string(form.Kind) == kind {
			return form, true
		}
	}
	return pageForm{}, false
}

func findCollectionForm(name string) (collectionForm, bool) {
	for _, form := range collectionForms {
		if form.Name == name {
			return form, true
		}
	}
	return collectionForm{}, false
}

// toValues flattens a model to its JSON field map for pre-filling forms.
func toValues(model any) map[string]any {
	values := map[string]any{}
	raw, err := json.Marshal(model)
	if err != nil {
		return values
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return map[string]any{}
	}
	return values
}
