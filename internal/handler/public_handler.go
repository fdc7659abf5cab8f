package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/service"
	"github.com/potatolake/internal/view"
)

const otherSponsorCategory = "Other Services"

type sponsorGroup struct {
	Category string
	Sponsors []db.Sponsor
}

// pageFailed logs err and shows the not-found page.
func (a *API) pageFailed(c *gin.Context, err error, page string) {
	logging.Error().Err(err).Str("page", page).Str("path", c.Request.URL.Path).Msg("render public page")
	a.NotFound(c)
}

// NotFound renders the 404 page.
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{
		"title": "Page Not Found",
	})
}

// ShowHome renders the landing page with carousel, latest news and events.
func (a *API) ShowHome(c *gin.Context) {
	page, err := a.pages.Home()
	if err != nil {
		a.pageFailed(c, err, "home")
		return
	}
	news, err := a.feed.LatestNews(service.DefaultLatestNews)
	if err != nil {
		a.pageFailed(c, err, "home")
		return
	}
	events, err := a.feed.UpcomingEvents(a.now(), service.UpcomingEventSlot)
	if err != nil {
		a.pageFailed(c, err, "home")
		return
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":            page.HeroTitle,
		"seo":              a.seoFor(c, "home", "Home"),
		"page":             page,
		"carousel":         view.NewCarousel(len(page.CarouselImages)),
		"carouselInterval": view.CarouselInterval.Milliseconds(),
		"news":             news,
		"events":           events,
	})
}

// ShowFishing renders species, gallery, tips and regulations.
func (a *API) ShowFishing(c *gin.Context) {
	page, err := a.pages.Fishing()
	if err != nil {
		a.pageFailed(c, err, "fishing")
		return
	}
	a.renderHTML(c, http.StatusOK, "fishing.html", gin.H{
		"title": page.HeroTitle,
		"seo":   a.seoFor(c, "fishing", "Fishing"),
		"page":  page,
	})
}

func (a *API) ShowResorts(c *gin.Context) {
	page, err := a.pages.Resorts()
	if err != nil {
		a.pageFailed(c, err, "resorts")
		return
	}
	a.renderHTML(c, http.StatusOK, "resorts.html", gin.H{
		"title": page.HeroTitle,
		"seo":   a.seoFor(c, "resorts", "Resorts"),
		"page":  page,
	})
}

// ShowNews 渲染新闻与活动页，活动区分即将开始与已结束。
func (a *API) ShowNews(c *gin.Context) {
	page, err := a.pages.News()
	if err != nil {
		a.pageFailed(c, err, "news")
		return
	}

	now := a.now()
	var upcoming, past []db.Event
	for _, event := range page.Events {
		if event.Date.Before(now) {
			past = append(past, event)
		} else {
			upcoming = append(upcoming, event)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date.Before(upcoming[j].Date) })

	a.renderHTML(c, http.StatusOK, "news.html", gin.H{
		"title":    page.HeroTitle,
		"seo":      a.seoFor(c, "news", "News & Events"),
		"page":     page,
		"upcoming": upcoming,
		"past":     past,
	})
}

func (a *API) ShowDnr(c *gin.Context) {
	page, err := a.pages.Dnr()
	if err != nil {
		a.pageFailed(c, err, "dnr")
		return
	}
	links, err := a.feed.DnrLinks()
	if err != nil {
		a.pageFailed(c, err, "dnr")
		return
	}
	resources, err := a.feed.DnrResources()
	if err != nil {
		a.pageFailed(c, err, "dnr")
		return
	}

	a.renderHTML(c, http.StatusOK, "dnr.html", gin.H{
		"title":     page.HeroTitle,
		"seo":       a.seoFor(c, "dnr", "DNR Information"),
		"page":      page,
		"links":     links,
		"resources": resources,
	})
}

func (a *API) ShowAssociation(c *gin.Context) {
	page, err := a.pages.Association()
	if err != nil {
		a.pageFailed(c, err, "association")
		return
	}
	members, err := a.feed.Members()
	if err != nil {
		a.pageFailed(c, err, "association")
		return
	}
	tiers, err := a.feed.MembershipTiers()
	if err != nil {
		a.pageFailed(c, err, "association")
		return
	}
	resources, err := a.feed.Resources()
	if err != nil {
		a.pageFailed(c, err, "association")
		return
	}

	a.renderHTML(c, http.StatusOK, "association.html", gin.H{
		"title":     page.HeroTitle,
		"seo":       a.seoFor(c, "association", "Association"),
		"page":      page,
		"members":   members,
		"tiers":     tiers,
		"resources": resources,
	})
}

// ShowAreaServices renders sponsors grouped by category.
func (a *API) ShowAreaServices(c *gin.Context) {
	page, err := a.pages.AreaServices()
	if err != nil {
		a.pageFailed(c, err, "area-services")
		return
	}
	a.renderHTML(c, http.StatusOK, "area_services.html", gin.H{
		"title":  page.HeroTitle,
		"seo":    a.seoFor(c, "area-services", "Area Services"),
		"page":   page,
		"groups": groupSponsors(page.Sponsors),
	})
}

func (a *API) ShowStories(c *gin.Context) {
	stories, err := a.stories.ListApproved()
	if err != nil {
		a.pageFailed(c, err, "stories")
		return
	}
	a.renderHTML(c, http.StatusOK, "stories.html", gin.H{
		"title":   "Community Stories",
		"seo":     a.seoFor(c, "stories", "Community Stories"),
		"stories": stories,
	})
}

// groupSponsors keeps first-seen category order; uncategorised sponsors go last.
func groupSponsors(sponsors []db.Sponsor) []sponsorGroup {
	groups := make([]sponsorGroup, 0)
	index := map[string]int{}
	var other []db.Sponsor

	for _, sponsor := range sponsors {
		category := db.StringValue(sponsor.Category, "")
		if category == "" {
			other = append(other, sponsor)
			continue
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, sponsorGroup{Category: category})
		}
		groups[i].Sponsors = append(groups[i].Sponsors, sponsor)
	}
	if len(other) > 0 {
		groups = append(groups, sponsorGroup{Category: otherSponsorCategory, Sponsors: other})
	}
	return groups
}
