package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/service"
)

const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
)

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ShowLoginPage 渲染登录页面
func (a *API) ShowLoginPage(c *gin.Context) {
	if sessions.Default(c).Get(sessionUserID) != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login 校验凭据并写入会话。JSON 请求返回 JSON，表单请求重定向。
func (a *API) Login(c *gin.Context) {
	wantsJSON := strings.HasPrefix(c.ContentType(), gin.MIMEJSON)
	fail := func(status int, message string) {
		if wantsJSON {
			respondError(c, status, message)
			return
		}
		a.renderHTML(c, status, "admin_login.html", gin.H{"title": "Admin Login", "error": message})
	}

	if !a.limiter.Allow() {
		fail(http.StatusTooManyRequests, "too many login attempts, try again in a minute")
		return
	}

	var payload loginRequest
	if err := c.ShouldBind(&payload); err != nil {
		message := "username and password are required"
		if text, ok := validationMessage(err); ok {
			message = text
		}
		fail(http.StatusBadRequest, message)
		return
	}

	user, err := a.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logging.Warn().Str("username", payload.Username).Str("client_ip", c.ClientIP()).Msg("failed login")
			fail(http.StatusUnauthorized, "invalid username or password")
			return
		}
		logging.Error().Err(err).Msg("login lookup failed")
		fail(http.StatusInternalServerError, internalErrorMessage)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUsername, user.Username)
	if err := session.Save(); err != nil {
		logging.Error().Err(err).Msg("save session")
		fail(http.StatusInternalServerError, "could not save session")
		return
	}

	if wantsJSON {
		c.JSON(http.StatusOK, gin.H{"message": "logged in", "username": user.Username, "redirect": "/admin"})
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logging.Warn().Err(err).Msg("clear session")
	}

	if c.Request.Method == http.MethodGet {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Session reports whether the caller is logged in.
func (a *API) Session(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(sessionUserID) == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      session.Get(sessionUsername),
	})
}

// AuthRequired 保护后台页面：未登录时重定向到登录页。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Default(c).Get(sessionUserID) == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIAuthRequired 保护 JSON 接口：未登录时返回 401，不触达数据层。
func APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Default(c).Get(sessionUserID) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	counts, err := a.content.Counts()
	if err != nil {
		logging.Error().Err(err).Msg("dashboard counts")
		counts = map[string]int64{}
	}
	pending, err := a.stories.CountPending()
	if err != nil {
		logging.Error().Err(err).Msg("dashboard pending stories")
	}

	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":       "Dashboard",
		"username":    sessions.Default(c).Get(sessionUsername),
		"pages":       pageForms,
		"collections": collectionForms,
		"counts":      counts,
		"pending":     pending,
	})
}

// DashboardStats returns the dashboard counters as JSON.
func (a *API) DashboardStats(c *gin.Context) {
	counts, err := a.content.Counts()
	if err != nil {
		respondInternal(c, err, "dashboard counts")
		return
	}
	pending, err := a.stories.CountPending()
	if err != nil {
		respondInternal(c, err, "dashboard pending stories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts, "pendingStories": pending})
}

// ShowPageEditor renders the form for one singleton page.
func (a *API) ShowPageEditor(c *gin.Context) {
	form, ok := findPageForm(c.Param("kind"))
	if !ok {
		a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{"title": "Not Found"})
		return
	}

	page, err := a.pages.Get(form.Kind)
	if err != nil {
		logging.Error().Err(err).Str("kind", string(form.Kind)).Msg("load page for editor")
		a.renderHTML(c, http.StatusInternalServerError, "admin_page_edit.html", gin.H{
			"title": form.Title,
			"form":  form,
			"error": "could not load page content",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_page_edit.html", gin.H{
		"title":  form.Title,
		"form":   form,
		"values": toValues(page),
	})
}

// ShowCollectionManager renders the list/add/remove screen for a collection.
func (a *API) ShowCollectionManager(c *gin.Context) {
	form, ok := findCollectionForm(c.Param("name"))
	if !ok {
		a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{"title": "Not Found"})
		return
	}

	// Child rows need their page to exist before the first add.
	if form.Parent != "" {
		if _, err := a.pages.Get(form.Parent); err != nil {
			logging.Error().Err(err).Str("kind", string(form.Parent)).Msg("provision parent page")
		}
	}

	a.renderHTML(c, http.StatusOK, "admin_collection.html", gin.H{
		"title": form.Title,
		"form":  form,
	})
}

// ShowStoryModeration renders the story approval screen.
func (a *API) ShowStoryModeration(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_stories.html", gin.H{"title": "Community Stories"})
}

// ShowSeoEditor renders the SEO metadata screen.
func (a *API) ShowSeoEditor(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_seo.html", gin.H{
		"title":    "SEO Metadata",
		"pageKeys": seoPageKeys,
	})
}
