package service

import (
	"github.com/potatolake/internal/db"
	"gorm.io/gorm"
)

const (
	orderByPosition = "sort_order asc, id asc"
	orderByDateDesc = "date desc, id desc"
	orderByName     = "name asc, id asc"
)

// Content bundles one Collection per admin-managed table.
type Content struct {
	CarouselImages  *Collection[db.CarouselImage, CarouselImageInput, CarouselImagePatch]
	FishSpecies     *Collection[db.FishSpecies, FishSpeciesInput, FishSpeciesPatch]
	GalleryImages   *Collection[db.GalleryImage, GalleryImageInput, GalleryImagePatch]
	FishingTips     *Collection[db.FishingTip, FishingTipInput, FishingTipPatch]
	Resorts         *Collection[db.Resort, ResortInput, ResortPatch]
	Events          *Collection[db.Event, EventInput, EventPatch]
	News            *Collection[db.NewsItem, NewsItemInput, NewsItemPatch]
	Sponsors        *Collection[db.Sponsor, SponsorInput, SponsorPatch]
	Members         *Collection[db.Member, MemberInput, MemberPatch]
	MembershipTiers *Collection[db.MembershipTier, MembershipTierInput, MembershipTierPatch]
	Resources       *Collection[db.Resource, ResourceInput, ResourcePatch]
	DnrLinks        *Collection[db.DnrLink, DnrLinkInput, DnrLinkPatch]
	DnrResources    *Collection[db.DnrResource, DnrResourceInput, DnrResourcePatch]
}

// NewContent wires every collection to gdb.
func NewContent(gdb *gorm.DB) *Content {
	return &Content{
		CarouselImages: newCollection[db.CarouselImage, CarouselImageInput, CarouselImagePatch](gdb, "carousel-images", orderByPosition).
			withSortOrder().
			childOf(db.PageHome, &db.HomePage{}, func(item *db.CarouselImage, id uint) { item.HomePageID = id }),
		FishSpecies: newCollection[db.FishSpecies, FishSpeciesInput, FishSpeciesPatch](gdb, "fish-species", orderByPosition).
			withSortOrder().
			childOf(db.PageFishing, &db.FishingPage{}, func(item *db.FishSpecies, id uint) { item.FishingPageID = id }),
		GalleryImages: newCollection[db.GalleryImage, GalleryImageInput, GalleryImagePatch](gdb, "gallery-images", orderByPosition).
			withSortOrder().
			childOf(db.PageFishing, &db.FishingPage{}, func(item *db.GalleryImage, id uint) { item.FishingPageID = id }),
		FishingTips: newCollection[db.FishingTip, FishingTipInput, FishingTipPatch](gdb, "fishing-tips", orderByPosition).
			withSortOrder().
			childOf(db.PageFishing, &db.FishingPage{}, func(item *db.FishingTip, id uint) { item.FishingPageID = id }),
		Resorts: newCollection[db.Resort, ResortInput, ResortPatch](gdb, "resorts", orderByPosition).
			withSortOrder().
			childOf(db.PageResorts, &db.ResortsPage{}, func(item *db.Resort, id uint) { item.ResortsPageID = id }),
		Events: newCollection[db.Event, EventInput, EventPatch](gdb, "events", orderByDateDesc).
			childOf(db.PageNews, &db.NewsPage{}, func(item *db.Event, id uint) { item.NewsPageID = id }),
		News: newCollection[db.NewsItem, NewsItemInput, NewsItemPatch](gdb, "news", orderByDateDesc).
			childOf(db.PageNews, &db.NewsPage{}, func(item *db.NewsItem, id uint) { item.NewsPageID = id }),
		Sponsors: newCollection[db.Sponsor, SponsorInput, SponsorPatch](gdb, "sponsors", orderByName).
			childOf(db.PageAreaServices, &db.AreaServicesPage{}, func(item *db.Sponsor, id uint) { item.AreaServicesPageID = id }),
		Members:         newCollection[db.Member, MemberInput, MemberPatch](gdb, "members", orderByPosition).withSortOrder(),
		MembershipTiers: newCollection[db.MembershipTier, MembershipTierInput, MembershipTierPatch](gdb, "membership-tiers", orderByPosition).withSortOrder(),
		Resources:       newCollection[db.Resource, ResourceInput, ResourcePatch](gdb, "resources", orderByPosition).withSortOrder(),
		DnrLinks:        newCollection[db.DnrLink, DnrLinkInput, DnrLinkPatch](gdb, "dnr-links", orderByPosition).withSortOrder(),
		DnrResources:    newCollection[db.DnrResource, DnrResourceInput, DnrResourcePatch](gdb, "dnr-resources", orderByPosition).withSortOrder(),
	}
}

// counter is satisfied by every Collection instantiation.
type counter interface {
	Name() string
	Count() (int64, error)
}

// Counts returns row totals keyed by collection name for the dashboard.
func (c *Content) Counts() (map[string]int64, error) {
	all := []counter{
		c.CarouselImages, c.FishSpecies, c.GalleryImages, c.FishingTips,
		c.Resorts, c.Events, c.News, c.Sponsors, c.Members,
		c.MembershipTiers, c.Resources, c.DnrLinks, c.DnrResources,
	}

	totals := make(map[string]int64, len(all))
	for _, item := range all {
		total, err := item.Count()
		if err != nil {
			return nil, err
		}
		totals[item.Name()] = total
	}
	return totals, nil
}
