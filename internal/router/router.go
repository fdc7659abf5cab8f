package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/handler"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/metrics"
	"github.com/potatolake/internal/objectstore"
	"github.com/potatolake/internal/view"
	"github.com/potatolake/web"
	"gorm.io/gorm"
)

const sessionName = "potatolake_session"

// Options 汇总路由层需要的外部配置。
type Options struct {
	SessionSecret      string
	SecureCookie       bool
	Store              objectstore.Store
	LoginRatePerMinute int
	SiteName           string
	SiteBaseURL        string
	// UploadDir is served under UploadURLPath when uploads are stored locally.
	UploadDir     string
	UploadURLPath string
	Now           func() time.Time
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(gdb *gorm.DB, opts Options) (*gin.Engine, error) {
	if gdb == nil {
		return nil, fmt.Errorf("router: database is required")
	}
	if opts.Store == nil {
		return nil, fmt.Errorf("router: object store is required")
	}

	templates, err := web.Templates(view.FuncMap())
	if err != nil {
		return nil, fmt.Errorf("router: parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), logging.GinMiddleware(), metrics.Middleware())
	r.SetHTMLTemplate(templates)

	// 配置会话中间件
	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((7 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	// 静态文件服务
	r.StaticFS("/assets", web.Static())
	if dir := strings.TrimSpace(opts.UploadDir); dir != "" {
		urlPath := "/" + strings.Trim(opts.UploadURLPath, "/")
		if urlPath == "/" {
			urlPath = "/static/uploads"
		}
		r.Static(urlPath, dir)
	}

	api := handler.NewAPI(gdb, handler.Options{
		Store:              opts.Store,
		LoginRatePerMinute: opts.LoginRatePerMinute,
		SiteName:           opts.SiteName,
		SiteBaseURL:        opts.SiteBaseURL,
		Now:                opts.Now,
	})

	r.GET("/healthz", api.HealthCheck)
	r.GET("/metrics", metrics.Handler())

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", api.Login)
		auth.POST("/logout", api.Logout)
		auth.GET("/session", api.Session)
	}

	// 公开 JSON 接口
	public := r.Group("/api")
	{
		public.GET("/pages/:kind", api.GetPage)
		public.GET("/news/latest", api.LatestNews)
		public.GET("/events/upcoming", api.UpcomingEvents)
		public.GET("/dnr/links", api.DnrLinks)
		public.GET("/dnr/resources", api.DnrResources)
		public.GET("/stories", api.ListStories)
		public.POST("/stories", api.SubmitStory)
	}

	r.POST("/api/upload", handler.APIAuthRequired(), api.Upload)

	adminAPI := r.Group("/api/admin")
	adminAPI.Use(handler.APIAuthRequired())
	api.RegisterAdminAPI(adminAPI)

	// 公开页面
	r.GET("/", api.ShowHome)
	r.GET("/fishing", api.ShowFishing)
	r.GET("/resorts", api.ShowResorts)
	r.GET("/news", api.ShowNews)
	r.GET("/dnr", api.ShowDnr)
	r.GET("/association", api.ShowAssociation)
	r.GET("/area-services", api.ShowAreaServices)
	r.GET("/stories", api.ShowStories)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		protected := admin.Group("")
		protected.Use(handler.AuthRequired())
		{
			protected.GET("", api.ShowDashboard)
			protected.GET("/pages/:kind", api.ShowPageEditor)
			protected.GET("/collections/:name", api.ShowCollectionManager)
			protected.GET("/stories", api.ShowStoryModeration)
			protected.GET("/seo", api.ShowSeoEditor)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		api.NotFound(c)
	})

	return r, nil
}
