package db

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:db-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func TestEnsureSingletonCreatesOnce(t *testing.T) {
	gdb := setupTestDB(t)

	first, created, err := EnsureSingleton(gdb, DefaultHomePage())
	if err != nil {
		t.Fatalf("EnsureSingleton returned error: %v", err)
	}
	if !created {
		t.Fatal("expected first call to create the row")
	}
	if first.ID != SingletonID {
		t.Fatalf("expected id %d, got %d", SingletonID, first.ID)
	}
	if first.HeroTitle != "Welcome to Potato Lake" {
		t.Fatalf("unexpected hero title %q", first.HeroTitle)
	}
	if len(first.FishingCardItems) != 4 {
		t.Fatalf("expected default fishing card items, got %v", first.FishingCardItems)
	}

	second, created, err := EnsureSingleton(gdb, DefaultHomePage())
	if err != nil {
		t.Fatalf("second EnsureSingleton returned error: %v", err)
	}
	if created {
		t.Fatal("expected second call to reuse the row")
	}
	if second.ID != first.ID {
		t.Fatalf("expected same row, got %d and %d", first.ID, second.ID)
	}

	var count int64
	gdb.Model(&HomePage{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one home page row, got %d", count)
	}
}

func TestEnsureSingletonKeepsEditedContent(t *testing.T) {
	gdb := setupTestDB(t)

	if _, _, err := EnsureSingleton(gdb, DefaultFishingPage()); err != nil {
		t.Fatalf("EnsureSingleton returned error: %v", err)
	}
	if err := gdb.Model(&FishingPage{}).Where("id = ?", SingletonID).Update("intro_text", "edited").Error; err != nil {
		t.Fatalf("failed to edit page: %v", err)
	}

	page, created, err := EnsureSingleton(gdb, DefaultFishingPage())
	if err != nil {
		t.Fatalf("EnsureSingleton returned error: %v", err)
	}
	if created {
		t.Fatal("expected existing row")
	}
	if page.IntroText != "edited" {
		t.Fatalf("expected edited intro text, got %q", page.IntroText)
	}
}

func TestEnsureSingletonBackfillsNullColumns(t *testing.T) {
	gdb := setupTestDB(t)

	if _, _, err := EnsureSingleton(gdb, DefaultHomePage()); err != nil {
		t.Fatalf("EnsureSingleton returned error: %v", err)
	}
	if err := gdb.Model(&HomePage{}).Where("id = ?", SingletonID).
		Updates(map[string]any{"resorts_card_title": gorm.Expr("NULL"), "association_card_title": gorm.Expr("NULL")}).Error; err != nil {
		t.Fatalf("failed to null columns: %v", err)
	}

	page, _, err := EnsureSingleton(gdb, DefaultHomePage())
	if err != nil {
		t.Fatalf("EnsureSingleton returned error: %v", err)
	}
	if StringValue(page.ResortsCardTitle, "") != defaultResortsCardTitle {
		t.Fatalf("expected backfilled resorts title, got %v", page.ResortsCardTitle)
	}

	var stored HomePage
	if err := gdb.First(&stored, SingletonID).Error; err != nil {
		t.Fatalf("failed to reload page: %v", err)
	}
	if StringValue(stored.AssociationCardTitle, "") != defaultAssociationCardTitle {
		t.Fatalf("expected association title persisted, got %v", stored.AssociationCardTitle)
	}
}

func TestEnsureSingletonConcurrentFirstVisits(t *testing.T) {
	gdb := setupTestDB(t)
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := EnsureSingleton(gdb, DefaultNewsPage()); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("EnsureSingleton returned error: %v", err)
	}

	var count int64
	gdb.Model(&NewsPage{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one news page row, got %d", count)
	}
}

func TestFindSingletonDoesNotCreate(t *testing.T) {
	gdb := setupTestDB(t)

	if _, err := FindSingleton[ResortsPage](gdb); err == nil {
		t.Fatal("expected not found error")
	}

	var count int64
	gdb.Model(&ResortsPage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no rows, got %d", count)
	}
}

func TestParsePageKind(t *testing.T) {
	if kind, ok := ParsePageKind("area-services"); !ok || kind != PageAreaServices {
		t.Fatalf("expected area-services, got %q %v", kind, ok)
	}
	if _, ok := ParsePageKind("stories"); ok {
		t.Fatal("stories is not a singleton page")
	}
}
