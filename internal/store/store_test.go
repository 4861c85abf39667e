package store_test

import (
	"errors"
	"testing"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/store"
	"github.com/eihojp/corpsite/internal/testutil"
)

func TestGetOrCreateHome_SeedsDefaults(t *testing.T) {
	db := testutil.NewStore(t)

	h, err := db.GetOrCreateHome()
	if err != nil {
		t.Fatalf("GetOrCreateHome: %v", err)
	}
	if h.ID == 0 {
		t.Error("seeded home has zero ID")
	}
	if h.NavBrand == "" || h.HeroTitle == "" {
		t.Errorf("seeded home missing default copy: %+v", h)
	}
	if h.ServicesJSON == "" || h.ServicesJSON == "[]" {
		t.Errorf("ServicesJSON = %q, want seeded list", h.ServicesJSON)
	}

	again, err := db.GetOrCreateHome()
	if err != nil {
		t.Fatalf("second GetOrCreateHome: %v", err)
	}
	if again.ID != h.ID {
		t.Errorf("second call returned ID %d, want singleton %d", again.ID, h.ID)
	}
}

func TestSaveHome_RoundTrips(t *testing.T) {
	db := testutil.NewStore(t)

	h, err := db.GetOrCreateHome()
	if err != nil {
		t.Fatalf("GetOrCreateHome: %v", err)
	}
	h.HeroTitle = "new title"
	h.ProfileRowsJSON = `[{"label":"名称","value":"Acme"}]`
	if err := db.SaveHome(h); err != nil {
		t.Fatalf("SaveHome: %v", err)
	}

	got, err := db.GetOrCreateHome()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.HeroTitle != "new title" {
		t.Errorf("HeroTitle = %q, want %q", got.HeroTitle, "new title")
	}
	if got.ProfileRowsJSON != h.ProfileRowsJSON {
		t.Errorf("ProfileRowsJSON = %q, want %q", got.ProfileRowsJSON, h.ProfileRowsJSON)
	}
	if !got.UpdatedAt.After(h.UpdatedAt) && !got.UpdatedAt.Equal(h.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", h.UpdatedAt, got.UpdatedAt)
	}
}

func seedNews(t *testing.T, db *store.DB, title string, published bool) *models.News {
	t.Helper()
	n, err := db.CreateNews(&models.News{Title: title, Body: "body of " + title, IsPublished: published})
	if err != nil {
		t.Fatalf("CreateNews(%q): %v", title, err)
	}
	return n
}

func TestNews_CRUD(t *testing.T) {
	db := testutil.NewStore(t)

	created := seedNews(t, db, "hello", false)
	if created.ID == 0 {
		t.Fatal("created news has zero ID")
	}
	if created.ImagePathsJSON != "[]" || created.FilePathsJSON != "[]" {
		t.Errorf("empty asset lists stored as %q / %q, want []", created.ImagePathsJSON, created.FilePathsJSON)
	}

	got, err := db.GetNews(created.ID)
	if err != nil {
		t.Fatalf("GetNews: %v", err)
	}
	if got.Title != "hello" || got.IsPublished {
		t.Errorf("got %+v", got)
	}

	updated, err := db.UpdateNews(created.ID, models.NewsPatch{
		Title:       testutil.StrPtr("renamed"),
		IsPublished: testutil.BoolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}
	if updated.Title != "renamed" || !updated.IsPublished {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Body != created.Body {
		t.Errorf("nil patch field overwrote body: %q", updated.Body)
	}

	ok, err := db.DeleteNews(created.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteNews = (%v, %v), want (true, nil)", ok, err)
	}
	ok, err = db.DeleteNews(created.ID)
	if err != nil || ok {
		t.Fatalf("second DeleteNews = (%v, %v), want (false, nil)", ok, err)
	}
	if _, err := db.GetNews(created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetNews after delete = %v, want ErrNotFound", err)
	}
}

func TestListNews_Filters(t *testing.T) {
	db := testutil.NewStore(t)

	seedNews(t, db, "published one", true)
	seedNews(t, db, "draft one", false)
	seedNews(t, db, "published two", true)

	items, total, err := db.ListNews(store.NewsQuery{Status: store.StatusPublished})
	if err != nil {
		t.Fatalf("ListNews published: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("published total = %d, len = %d, want 2/2", total, len(items))
	}
	for _, n := range items {
		if !n.IsPublished {
			t.Errorf("unpublished entry leaked: %+v", n)
		}
	}

	_, total, err = db.ListNews(store.NewsQuery{Status: store.StatusDraft})
	if err != nil {
		t.Fatalf("ListNews draft: %v", err)
	}
	if total != 1 {
		t.Errorf("draft total = %d, want 1", total)
	}

	items, total, err = db.ListNews(store.NewsQuery{Keyword: "two"})
	if err != nil {
		t.Fatalf("ListNews keyword: %v", err)
	}
	if total != 1 || items[0].Title != "published two" {
		t.Errorf("keyword filter: total = %d, items = %+v", total, items)
	}
}

func TestListNews_SortAndPaging(t *testing.T) {
	db := testutil.NewStore(t)

	for _, title := range []string{"a", "b", "c", "d", "e"} {
		seedNews(t, db, title, true)
	}

	items, total, err := db.ListNews(store.NewsQuery{Sort: store.SortOldest, Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("ListNews: %v", err)
	}
	if total != 5 || len(items) != 2 {
		t.Fatalf("total = %d, len = %d, want 5/2", total, len(items))
	}
	if items[0].Title != "a" || items[1].Title != "b" {
		t.Errorf("oldest page 1 = [%s %s], want [a b]", items[0].Title, items[1].Title)
	}

	items, _, err = db.ListNews(store.NewsQuery{Sort: store.SortOldest, Page: 3, PageSize: 2})
	if err != nil {
		t.Fatalf("ListNews page 3: %v", err)
	}
	if len(items) != 1 || items[0].Title != "e" {
		t.Errorf("oldest page 3 = %+v, want [e]", items)
	}

	items, _, err = db.ListNews(store.NewsQuery{PageSize: 1})
	if err != nil {
		t.Fatalf("ListNews latest: %v", err)
	}
	if len(items) != 1 || items[0].Title != "e" {
		t.Errorf("latest first = %+v, want [e]", items)
	}
}
