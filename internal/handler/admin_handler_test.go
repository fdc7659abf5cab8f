package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/db"
)

func TestLoginAndSession(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})

	w := srv.do(t, http.MethodGet, "/api/auth/session", nil)
	if decodeBody(t, w)["authenticated"] != false {
		t.Fatalf("expected anonymous session, got %s", w.Body.String())
	}

	srv.login(t)

	w = srv.do(t, http.MethodGet, "/api/auth/session", nil)
	body := decodeBody(t, w)
	if body["authenticated"] != true || body["username"] != testAdminUser {
		t.Fatalf("expected authenticated admin session, got %v", body)
	}

	w = srv.do(t, http.MethodGet, "/api/admin/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected dashboard stats with session, got %d", w.Code)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})

	w := srv.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": testAdminUser, "password": "pike"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if msg := decodeBody(t, w)["error"]; msg != "invalid username or password" {
		t.Fatalf("unexpected error %v", msg)
	}

	w = srv.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": testAdminUser})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without password, got %d", w.Code)
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{LoginRatePerMinute: 2})

	for i := 0; i < 2; i++ {
		w := srv.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": testAdminUser, "password": "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i+1, w.Code)
		}
	}

	w := srv.do(t, http.MethodPost, "/api/auth/login", gin.H{"username": testAdminUser, "password": testAdminPassword})
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the bucket is empty, got %d", w.Code)
	}
}

func TestFormLoginRedirectsToDashboard(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})
	srv.router.POST("/admin/login", srv.api.Login)

	form := url.Values{"username": {testAdminUser}, "password": {testAdminPassword}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
}

func TestAdminPagesRedirectWithoutSession(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})

	w := srv.do(t, http.MethodGet, "/admin", nil)
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})
	srv.login(t)

	w := srv.do(t, http.MethodPost, "/api/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	srv.cookie = w.Result().Cookies()

	w = srv.do(t, http.MethodGet, "/api/admin/members", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestDashboardListsFormsAndCounts(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})
	srv.login(t)

	if err := gdb.Create(&db.CommunityStory{AuthorName: "Ann", Title: "First ice", Content: "Cold."}).Error; err != nil {
		t.Fatalf("failed to seed story: %v", err)
	}

	w := srv.do(t, http.MethodGet, "/admin", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if srv.html.name != "admin_dashboard.html" {
		t.Fatalf("unexpected template %q", srv.html.name)
	}
	data := srv.html.payload(t)
	if data["pending"].(int64) != 1 {
		t.Fatalf("expected 1 pending story, got %v", data["pending"])
	}
	counts := data["counts"].(map[string]int64)
	if _, ok := counts["fish-species"]; !ok {
		t.Fatalf("expected fish-species count, got %v", counts)
	}
}

func TestCollectionManagerProvisionsParentPage(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	srv := newTestServer(t, gdb, Options{})
	srv.login(t)

	w := srv.do(t, http.MethodGet, "/admin/collections/sponsors", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var pages int64
	gdb.Model(&db.AreaServicesPage{}).Count(&pages)
	if pages != 1 {
		t.Fatalf("expected area services page provisioned, got %d", pages)
	}

	w = srv.do(t, http.MethodGet, "/admin/collections/boats", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown collection, got %d", w.Code)
	}
}

func TestCollectionFormsMatchRegisteredCollections(t *testing.T) {
	gdb := setupHandlerTestDB(t)
	api := NewAPI(gdb, Options{})

	counts, err := api.content.Counts()
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if len(counts) != len(collectionForms) {
		t.Fatalf("expected %d collections, got %d", len(collectionForms), len(counts))
	}
	for _, form := range collectionForms {
		if _, ok := counts[form.Name]; !ok {
			t.Fatalf("form %q has no matching collection", form.Name)
		}
	}
	for _, form := range pageForms {
		if _, ok := db.ParsePageKind(string(form.Kind)); !ok {
			t.Fatalf("page form %q has an unknown kind", form.Kind)
		}
	}
}
