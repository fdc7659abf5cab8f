package service

import (
	"errors"
	"testing"

	"github.com/potatolake/internal/db"
)

func TestCreateChildRequiresParentPage(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	_, err := content.FishSpecies.Create(FishSpeciesInput{Name: "Walleye"})
	if !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
	if err.Error() != "fishing page not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	var pages int64
	gdb.Model(&db.FishingPage{}).Count(&pages)
	if pages != 0 {
		t.Fatal("parent page must not be provisioned by a child create")
	}
}

func TestCreateAssignsNextOrder(t *testing.T) {
	gdb := setupServiceTestDB(t)
	if _, err := NewPageService(gdb).Fishing(); err != nil {
		t.Fatalf("failed to provision fishing page: %v", err)
	}
	content := NewContent(gdb)

	first, err := content.FishSpecies.Create(FishSpeciesInput{Name: " Walleye "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := content.FishSpecies.Create(FishSpeciesInput{Name: "Northern Pike"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	explicit, err := content.FishSpecies.Create(FishSpeciesInput{Name: "Bluegill", Order: 10})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if first.Name != "Walleye" || first.SortOrder != 1 || second.SortOrder != 2 || explicit.SortOrder != 10 {
		t.Fatalf("unexpected rows: %+v %+v %+v", first, second, explicit)
	}
	if first.FishingPageID != db.SingletonID {
		t.Fatalf("expected parent id %d, got %d", db.SingletonID, first.FishingPageID)
	}
}

func TestUpdateMergesOnlySuppliedFields(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	link, err := content.DnrLinks.Create(DnrLinkInput{
		Title:       "Lake Finder",
		URL:         "https://www.dnr.state.mn.us/lakefind/",
		Description: strPtr("Survey data"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := content.DnrLinks.Update(DnrLinkPatch{
		PatchID: PatchID{ID: link.ID},
		Title:   strPtr("LakeFinder"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "LakeFinder" {
		t.Fatalf("expected title to change, got %q", updated.Title)
	}
	if updated.URL != link.URL || db.StringValue(updated.Description, "") != "Survey data" {
		t.Fatalf("omitted fields were overwritten: %+v", updated)
	}

	cleared, err := content.DnrLinks.Update(DnrLinkPatch{
		PatchID:     PatchID{ID: link.ID},
		Description: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if cleared.Description != nil {
		t.Fatalf("expected description cleared, got %v", *cleared.Description)
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	_, err := content.Members.Update(MemberPatch{PatchID: PatchID{ID: 99}, Name: strPtr("Nobody")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_, err = content.Members.Update(MemberPatch{Name: strPtr("Nobody")})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "id" {
		t.Fatalf("expected id field error, got %v", err)
	}
}

func TestDeleteUnknownIDLeavesOtherRows(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	for _, name := range []string{"President", "Treasurer"} {
		if _, err := content.Members.Create(MemberInput{Name: name}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	if err := content.Members.Delete(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	total, _ := content.Members.Count()
	if total != 2 {
		t.Fatalf("expected 2 members to remain, got %d", total)
	}

	items, _ := content.Members.List()
	if err := content.Members.Delete(items[0].ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	total, _ = content.Members.Count()
	if total != 1 {
		t.Fatalf("expected 1 member to remain, got %d", total)
	}
}

func TestReorderAppliesNewPositions(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	var ids []uint
	for _, title := range []string{"A", "B", "C"} {
		link, err := content.DnrLinks.Create(DnrLinkInput{Title: title, URL: "https://example.com/" + title})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		ids = append(ids, link.ID)
	}

	err := content.DnrLinks.Reorder([]OrderItem{
		{ID: ids[0], Order: 3},
		{ID: ids[1], Order: 1},
		{ID: ids[2], Order: 2},
	})
	if err != nil {
		t.Fatalf("Reorder returned error: %v", err)
	}

	links, err := content.DnrLinks.List()
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	got := []string{links[0].Title, links[1].Title, links[2].Title}
	if got[0] != "B" || got[1] != "C" || got[2] != "A" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestReorderRollsBackOnUnknownID(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	first, _ := content.Resources.Create(ResourceInput{Title: "Bylaws", URL: "/static/uploads/bylaws.pdf"})
	second, _ := content.Resources.Create(ResourceInput{Title: "Minutes", URL: "/static/uploads/minutes.pdf"})

	err := content.Resources.Reorder([]OrderItem{
		{ID: first.ID, Order: 9},
		{ID: 777, Order: 1},
		{ID: second.ID, Order: 8},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	reloaded, _ := content.Resources.Get(first.ID)
	if reloaded.SortOrder != first.SortOrder {
		t.Fatalf("expected rollback to keep order %d, got %d", first.SortOrder, reloaded.SortOrder)
	}
}

func TestReorderUnsupportedForDatedCollections(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	if err := content.Events.Reorder(nil); !errors.Is(err, ErrReorderUnsupported) {
		t.Fatalf("expected ErrReorderUnsupported, got %v", err)
	}
	if content.Events.Ordered() || !content.DnrLinks.Ordered() {
		t.Fatal("unexpected Ordered flags")
	}
}

func TestEventInputRejectsBadDate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	if _, err := NewPageService(gdb).News(); err != nil {
		t.Fatalf("failed to provision news page: %v", err)
	}

	_, err := NewContent(gdb).Events.Create(EventInput{Title: "Picnic", Date: "next tuesday"})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "date" {
		t.Fatalf("expected date field error, got %v", err)
	}
}

func TestMembershipTierBenefitsRoundTrip(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	tier, err := content.MembershipTiers.Create(MembershipTierInput{
		Name:     "Family",
		Price:    "$40",
		Benefits: []string{"Newsletter", " ", "Voting rights"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	benefits := []string{"Newsletter"}
	updated, err := content.MembershipTiers.Update(MembershipTierPatch{PatchID: PatchID{ID: tier.ID}, Benefits: &benefits})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Benefits) != 1 || updated.Benefits[0] != "Newsletter" {
		t.Fatalf("unexpected benefits %v", updated.Benefits)
	}
	if updated.Price != "$40" {
		t.Fatalf("expected price kept, got %q", updated.Price)
	}
}

func TestContentCounts(t *testing.T) {
	gdb := setupServiceTestDB(t)
	content := NewContent(gdb)

	if _, err := content.Resources.Create(ResourceInput{Title: "Map", URL: "https://example.com/map"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	counts, err := content.Counts()
	if err != nil {
		t.Fatalf("Counts returned error: %v", err)
	}
	if counts["resources"] != 1 || counts["events"] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if len(counts) != 13 {
		t.Fatalf("expected 13 collections, got %d", len(counts))
	}
}
