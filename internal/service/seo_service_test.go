package service

import (
	"testing"

	"github.com/potatolake/internal/db"
)

func TestSeoUpsertReplacesExistingRow(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewSeoService(gdb)

	if _, err := svc.Upsert(SeoInput{Page: "fishing", Title: "Fishing"}); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	updated, err := svc.Upsert(SeoInput{Page: "fishing", Title: "Fishing Potato Lake", Keywords: strPtr("walleye, pike")})
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if updated.Title != "Fishing Potato Lake" || db.StringValue(updated.Keywords, "") != "walleye, pike" {
		t.Fatalf("unexpected row %+v", updated)
	}

	items, _ := svc.List()
	if len(items) != 1 {
		t.Fatalf("expected one row, got %d", len(items))
	}
}

func TestSeoForPageMissingReturnsNil(t *testing.T) {
	gdb := setupServiceTestDB(t)
	item, err := NewSeoService(gdb).ForPage("resorts")
	if err != nil || item != nil {
		t.Fatalf("expected nil, nil; got %v, %v", item, err)
	}
}
