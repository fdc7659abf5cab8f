package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/objectstore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "walleye-season"
)

type stubHTMLRender struct {
	name string
	data interface{}
}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	r.name = name
	r.data = data
	return &stubHTMLInstance{name: name, data: data}
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

// payload returns the template data of the last render.
func (r *stubHTMLRender) payload(t *testing.T) gin.H {
	t.Helper()
	data, ok := r.data.(gin.H)
	if !ok {
		t.Fatalf("expected gin.H template data, got %T", r.data)
	}
	return data
}

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	if _, err := db.EnsureUser(gdb, testAdminUser, testAdminPassword); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

type testServer struct {
	api    *API
	router *gin.Engine
	html   *stubHTMLRender
	cookie []*http.Cookie
}

func newTestServer(t *testing.T, gdb *gorm.DB, opts Options) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if opts.Store == nil {
		opts.Store = objectstore.NewLocal(t.TempDir(), "/static/uploads")
	}
	api := NewAPI(gdb, opts)
	html := &stubHTMLRender{}

	r := gin.New()
	r.HTMLRender = html
	r.Use(sessions.Sessions("potatolake_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/api/auth/login", api.Login)
	r.POST("/api/auth/logout", api.Logout)
	r.GET("/api/auth/session", api.Session)
	r.GET("/api/news/latest", api.LatestNews)
	r.GET("/api/events/upcoming", api.UpcomingEvents)
	r.GET("/api/dnr/links", api.DnrLinks)
	r.GET("/api/stories", api.ListStories)
	r.POST("/api/stories", api.SubmitStory)
	r.GET("/api/pages/:kind", api.GetPage)
	r.POST("/api/upload", APIAuthRequired(), api.Upload)
	api.RegisterAdminAPI(r.Group("/api/admin", APIAuthRequired()))

	r.GET("/", api.ShowHome)
	r.GET("/fishing", api.ShowFishing)
	r.GET("/area-services", api.ShowAreaServices)
	r.GET("/healthz", api.HealthCheck)
	r.GET("/admin", AuthRequired(), api.ShowDashboard)
	r.GET("/admin/collections/:name", AuthRequired(), api.ShowCollectionManager)

	return &testServer{api: api, router: r, html: html}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range s.cookie {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// login authenticates as the seeded admin and keeps the session cookie.
func (s *testServer) login(t *testing.T) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": testAdminUser, "password": testAdminPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", w.Code, w.Body.String())
	}
	s.cookie = w.Result().Cookies()
	if len(s.cookie) == 0 {
		t.Fatal("expected a session cookie after login")
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func decodeItems(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var body struct {
		Items []map[string]interface{} `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode items %q: %v", w.Body.String(), err)
	}
	return body.Items
}

// countStatements counts every statement gorm issues against gdb.
func countStatements(t *testing.T, gdb *gorm.DB) *int {
	t.Helper()

	count := new(int)
	hook := func(*gorm.DB) { *count++ }
	cb := gdb.Callback()
	register := []error{
		cb.Query().Before("gorm:query").Register("test:count_query", hook),
		cb.Create().Before("gorm:create").Register("test:count_create", hook),
		cb.Update().Before("gorm:update").Register("test:count_update", hook),
		cb.Delete().Before("gorm:delete").Register("test:count_delete", hook),
		cb.Row().Before("gorm:row").Register("test:count_row", hook),
		cb.Raw().Before("gorm:raw").Register("test:count_raw", hook),
	}
	for _, err := range register {
		if err != nil {
			t.Fatalf("failed to register callback: %v", err)
		}
	}
	return count
}

func TestHealthCheck(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})

	w := srv.do(t, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "ok" || body["database"] != "up" {
		t.Fatalf("expected healthy database, got %v", body)
	}
	pages := body["pages"].(map[string]interface{})
	if pages["provisioned"].(float64) != 0 || len(pages["missing"].([]interface{})) != 7 {
		t.Fatalf("expected every page missing on a fresh database, got %v", pages)
	}

	srv.do(t, http.MethodGet, "/api/pages/fishing", nil)
	pages = decodeBody(t, srv.do(t, http.MethodGet, "/healthz", nil))["pages"].(map[string]interface{})
	if pages["provisioned"].(float64) != 1 {
		t.Fatalf("expected fishing page counted after first visit, got %v", pages)
	}

	var count int64
	gdb.Model(&db.HomePage{}).Count(&count)
	if count != 0 {
		t.Fatalf("health check must not provision pages, got %d home rows", count)
	}
}

func TestHealthCheckReportsClosedDatabase(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.Close()

	w := srv.do(t, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if decodeBody(t, w)["database"] != "down" {
		t.Fatalf("expected database down, got %s", w.Body.String())
	}
}
