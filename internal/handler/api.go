package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/objectstore"
	"github.com/potatolake/internal/service"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

const defaultSiteName = "Potato Lake Association"

// Options configures an API instance.
type Options struct {
	Store              objectstore.Store
	LoginRatePerMinute int
	SiteName           string
	SiteBaseURL        string
	Now                func() time.Time
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db      *gorm.DB
	pages   *service.PageService
	content *service.Content
	feed    *service.FeedService
	stories *service.StoryService
	seo     *service.SeoService
	users   *service.UserService
	store   objectstore.Store
	limiter *rate.Limiter
	site    siteViewModel
	now     func() time.Time
}

type siteViewModel struct {
	Name    string
	BaseURL string
}

type navItem struct {
	Path  string
	Label string
}

var publicNav = []navItem{
	{Path: "/", Label: "Home"},
	{Path: "/fishing", Label: "Fishing"},
	{Path: "/resorts", Label: "Resorts"},
	{Path: "/news", Label: "News & Events"},
	{Path: "/dnr", Label: "DNR Info"},
	{Path: "/association", Label: "Association"},
	{Path: "/area-services", Label: "Area Services"},
	{Path: "/stories", Label: "Stories"},
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, opts Options) *API {
	perMinute := opts.LoginRatePerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	name := strings.TrimSpace(opts.SiteName)
	if name == "" {
		name = defaultSiteName
	}

	return &API{
		db:      gdb,
		pages:   service.NewPageService(gdb),
		content: service.NewContent(gdb),
		feed:    service.NewFeedService(gdb),
		stories: service.NewStoryService(gdb),
		seo:     service.NewSeoService(gdb),
		users:   service.NewUserService(gdb),
		store:   opts.Store,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
		site: siteViewModel{
			Name:    name,
			BaseURL: strings.TrimRight(strings.TrimSpace(opts.SiteBaseURL), "/"),
		},
		now: now,
	}
}

// seoFor 读取页面的 SEO 元数据，缺失时使用标题作为回退。
func (a *API) seoFor(c *gin.Context, pageKey, fallbackTitle string) gin.H {
	meta := gin.H{
		"title":       fallbackTitle + " | " + a.site.Name,
		"description": "",
		"keywords":    "",
		"ogImage":     "",
	}

	item, err := a.seo.ForPage(pageKey)
	if err != nil {
		logging.Warn().Err(err).Str("page", pageKey).Msg("load seo metadata")
		return meta
	}
	if item == nil {
		return meta
	}

	meta["title"] = item.Title
	meta["description"] = item.Description
	meta["keywords"] = db.StringValue(item.Keywords, "")
	meta["ogImage"] = db.StringValue(item.OgImageURL, "")
	return meta
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":    a.site.Name,
			"baseUrl": a.site.BaseURL,
			"nav":     publicNav,
			"year":    a.now().Year(),
		}
	}
	if _, exists := payload["path"]; !exists {
		payload["path"] = c.Request.URL.Path
	}
	if _, exists := payload["seo"]; !exists {
		title, _ := payload["title"].(string)
		if title == "" {
			title = a.site.Name
		}
		payload["seo"] = gin.H{"title": title + " | " + a.site.Name}
	}

	c.HTML(status, template, payload)
}
