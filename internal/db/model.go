package db

import "time"

// Model mirrors gorm.Model without DeletedAt: content rows are removed outright.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SingletonID is the fixed primary key of every page row.
const SingletonID uint = 1

// PageKind identifies one of the singleton content pages.
type PageKind string

const (
	PageHome         PageKind = "home"
	PageFishing      PageKind = "fishing"
	PageResorts      PageKind = "resorts"
	PageDnr          PageKind = "dnr"
	PageNews         PageKind = "news"
	PageAssociation  PageKind = "association"
	PageAreaServices PageKind = "area-services"
)

// PageKinds lists every page kind in navigation order.
var PageKinds = []PageKind{
	PageHome,
	PageFishing,
	PageResorts,
	PageNews,
	PageDnr,
	PageAssociation,
	PageAreaServices,
}

// ParsePageKind validates a kind coming from a URL segment.
func ParsePageKind(raw string) (PageKind, bool) {
	for _, kind := range PageKinds {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}

// Hero holds the banner fields every page shares.
type Hero struct {
	HeroTitle    string  `gorm:"not null" json:"heroTitle"`
	HeroSubtitle string  `json:"heroSubtitle"`
	HeroImageURL *string `json:"heroImageUrl"`
}

// StringValue dereferences an optional column, returning fallback for nil or blank.
func StringValue(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Ordered gives a row an explicit display position.
type Ordered struct {
	SortOrder int `gorm:"column:sort_order;default:0;index" json:"order"`
}

// Position returns the display position.
func (o *Ordered) Position() int {
	return o.SortOrder
}

// SetPosition sets the display position.
func (o *Ordered) SetPosition(order int) {
	o.SortOrder = order
}
