package sitesvc_test

import (
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/sitesvc"
	"github.com/eihojp/corpsite/internal/testutil"
)

func newService(t *testing.T) *sitesvc.Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return sitesvc.New(testutil.NewStore(t), logger)
}

func TestProjectHome_ProfileRowsFallback(t *testing.T) {
	h := &models.Home{ProfileRowsJSON: "[]", CompanyName: "Acme"}
	view := sitesvc.ProjectHome(h)

	if len(view.ProfileRows) != 6 {
		t.Fatalf("profile rows = %d, want 6 synthesized", len(view.ProfileRows))
	}
	want := models.ProfileRow{Label: "名称", Value: "Acme"}
	if view.ProfileRows[0] != want {
		t.Errorf("first row = %+v, want %+v", view.ProfileRows[0], want)
	}
	if view.ProfileRows[1].Label != "所在地" || view.ProfileRows[1].Value != "" {
		t.Errorf("second row = %+v", view.ProfileRows[1])
	}
}

func TestProjectHome_DynamicRowsOverrideLegacy(t *testing.T) {
	h := &models.Home{
		ProfileRowsJSON: `[{"label":"名称","value":"Dynamic"}]`,
		CompanyName:     "Legacy",
	}
	view := sitesvc.ProjectHome(h)
	if len(view.ProfileRows) != 1 || view.ProfileRows[0].Value != "Dynamic" {
		t.Errorf("profile rows = %+v, want single dynamic row", view.ProfileRows)
	}
}

func TestProjectHome_NavDefaults(t *testing.T) {
	view := sitesvc.ProjectHome(&models.Home{})
	if view.NavConcept != "メッセージ" || view.NavNews != "ニュース" {
		t.Errorf("nav defaults = %q / %q", view.NavConcept, view.NavNews)
	}
	if view.NavBrand != "" {
		t.Errorf("NavBrand = %q, want empty", view.NavBrand)
	}
}

func TestUpdateHome_PartialByPresence(t *testing.T) {
	s := newService(t)

	before, err := s.EditHome()
	if err != nil {
		t.Fatalf("EditHome: %v", err)
	}

	title := "updated hero"
	stats := []models.HeroStat{{Value: 5, Suffix: "社", Label: "取引先"}}
	if _, err := s.UpdateHome(models.HomePatch{HeroTitle: &title, HeroStats: &stats}); err != nil {
		t.Fatalf("UpdateHome: %v", err)
	}

	after, err := s.EditHome()
	if err != nil {
		t.Fatalf("EditHome: %v", err)
	}
	if after.HeroTitle != "updated hero" {
		t.Errorf("HeroTitle = %q", after.HeroTitle)
	}
	if !reflect.DeepEqual(after.HeroStats, stats) {
		t.Errorf("HeroStats = %+v, want %+v", after.HeroStats, stats)
	}
	// Untouched fields keep their seeded values.
	if after.HeroSubtitle != before.HeroSubtitle {
		t.Errorf("HeroSubtitle changed: %q -> %q", before.HeroSubtitle, after.HeroSubtitle)
	}
}

func TestUpdateHome_ExplicitEmptyListClears(t *testing.T) {
	s := newService(t)

	empty := []models.ServiceItem{}
	if _, err := s.UpdateHome(models.HomePatch{Services: &empty}); err != nil {
		t.Fatalf("UpdateHome: %v", err)
	}
	view, err := s.Home()
	if err != nil {
		t.Fatalf("Home: %v", err)
	}
	if len(view.Services) != 0 {
		t.Errorf("Services = %+v, want cleared", view.Services)
	}
}

func TestNewsLifecycleAndMergeRule(t *testing.T) {
	s := newService(t)

	created, err := s.CreateNews(sitesvc.NewsInput{
		Title:       "release",
		Body:        "Intro.\n[img:1]",
		IsPublished: true,
		NewImages:   []string{"a.png"},
	})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if created.ImagePath != "a.png" {
		t.Errorf("legacy image column = %q, want first upload", created.ImagePath)
	}

	// Update with zero new uploads keeps the stored image list.
	updated, err := s.UpdateNews(created.ID, sitesvc.NewsInput{
		Title:       "release v2",
		Body:        created.Body,
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}
	if updated.ImagePathsJSON != `["a.png"]` {
		t.Errorf("images after no-upload update = %q, want [\"a.png\"]", updated.ImagePathsJSON)
	}

	// New uploads append after the existing ones.
	updated, err = s.UpdateNews(created.ID, sitesvc.NewsInput{
		Title:       "release v3",
		Body:        created.Body,
		IsPublished: true,
		NewImages:   []string{"b.png"},
	})
	if err != nil {
		t.Fatalf("UpdateNews: %v", err)
	}
	if updated.ImagePathsJSON != `["a.png","b.png"]` {
		t.Errorf("merged images = %q", updated.ImagePathsJSON)
	}
	if updated.ImagePath != "a.png" {
		t.Errorf("legacy column = %q, want first merged", updated.ImagePath)
	}

	if err := s.DeleteNews(created.ID); err != nil {
		t.Fatalf("DeleteNews: %v", err)
	}
	if err := s.DeleteNews(created.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

func TestCreateNews_RequiresTitle(t *testing.T) {
	s := newService(t)
	if _, err := s.CreateNews(sitesvc.NewsInput{Title: "   "}); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("blank title = %v, want ErrInvalid", err)
	}
}

func TestNewsDetail_RendersBlocksAndFallbacks(t *testing.T) {
	s := newService(t)

	n, err := s.CreateNews(sitesvc.NewsInput{
		Title:       "with markup",
		Body:        "Intro.\n[h2]Update[/h2]\n[img:2]",
		IsPublished: true,
		NewImages:   []string{"u1", "u2"},
		NewFiles:    []models.FileRef{{Name: "spec.pdf", URL: "/f/spec.pdf"}},
	})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}

	view, err := s.NewsDetail(n.ID)
	if err != nil {
		t.Fatalf("NewsDetail: %v", err)
	}
	if len(view.Blocks) != 3 {
		t.Fatalf("blocks = %+v, want text+heading+image", view.Blocks)
	}
	if view.Blocks[2].Image == nil || view.Blocks[2].Image.URL != "u2" {
		t.Errorf("image block = %+v", view.Blocks[2])
	}
	if !reflect.DeepEqual(view.LeftoverImages, []string{"u1"}) {
		t.Errorf("leftover = %v", view.LeftoverImages)
	}
	if len(view.Files) != 1 || view.Files[0].Name != "spec.pdf" {
		t.Errorf("files = %+v", view.Files)
	}
}

func TestNewsDetail_UnpublishedIsNotFound(t *testing.T) {
	s := newService(t)
	n, err := s.CreateNews(sitesvc.NewsInput{Title: "draft"})
	if err != nil {
		t.Fatalf("CreateNews: %v", err)
	}
	if _, err := s.NewsDetail(n.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("draft detail = %v, want ErrNotFound", err)
	}
	if _, err := s.NewsDetail(99999); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("missing detail = %v, want ErrNotFound", err)
	}
}

func TestPublicNews_ClampsLimit(t *testing.T) {
	s := newService(t)
	for i := 0; i < 12; i++ {
		if _, err := s.CreateNews(sitesvc.NewsInput{Title: "n", IsPublished: true}); err != nil {
			t.Fatal(err)
		}
	}

	links, err := s.PublicNews(0)
	if err != nil {
		t.Fatalf("PublicNews: %v", err)
	}
	if len(links) != 8 {
		t.Errorf("default limit = %d, want 8", len(links))
	}
	if links[0].URL == "" {
		t.Error("missing URL")
	}

	links, err = s.PublicNews(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 3 {
		t.Errorf("limit 3 = %d items", len(links))
	}
}

func TestPublishedList_PaginationWindowAndClamp(t *testing.T) {
	s := newService(t)
	for i := 0; i < 25; i++ {
		if _, err := s.CreateNews(sitesvc.NewsInput{Title: "entry", IsPublished: true}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.CreateNews(sitesvc.NewsInput{Title: "hidden draft"}); err != nil {
		t.Fatal(err)
	}

	view, err := s.PublishedList("", "latest", 1)
	if err != nil {
		t.Fatalf("PublishedList: %v", err)
	}
	if view.TotalItems != 25 || view.TotalPages != 3 || len(view.Items) != 10 {
		t.Errorf("view = total %d pages %d items %d", view.TotalItems, view.TotalPages, len(view.Items))
	}
	if !reflect.DeepEqual(view.PageNumbers, []int{1, 2, 3}) {
		t.Errorf("page numbers = %v", view.PageNumbers)
	}

	// An out-of-range page clamps to the last page and still returns rows.
	view, err = s.PublishedList("", "latest", 99)
	if err != nil {
		t.Fatal(err)
	}
	if view.Page != 3 || len(view.Items) != 5 {
		t.Errorf("clamped view: page %d items %d", view.Page, len(view.Items))
	}

	// Bad sort values read as latest.
	view, err = s.PublishedList("", "sideways", 1)
	if err != nil {
		t.Fatal(err)
	}
	if view.Sort != "latest" {
		t.Errorf("sort = %q", view.Sort)
	}
}

func TestServiceDetail_StoredAndFallback(t *testing.T) {
	s := newService(t)

	// Fresh install: the seeded services serve.
	view, err := s.ServiceDetail(0)
	if err != nil {
		t.Fatalf("ServiceDetail: %v", err)
	}
	if view.Title == "" {
		t.Error("seeded service has no title")
	}
	if len(view.Blocks) == 0 {
		t.Error("no blocks; summary fallback missing")
	}

	if _, err := s.ServiceDetail(99); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("out of range = %v, want ErrNotFound", err)
	}
	if _, err := s.ServiceDetail(-1); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("negative index = %v, want ErrNotFound", err)
	}

	// Clearing the stored list switches to the built-in defaults.
	empty := []models.ServiceItem{}
	if _, err := s.UpdateHome(models.HomePatch{Services: &empty}); err != nil {
		t.Fatal(err)
	}
	view, err = s.ServiceDetail(2)
	if err != nil {
		t.Fatalf("fallback ServiceDetail: %v", err)
	}
	if view.Title != "コンサル・OEM受託" {
		t.Errorf("fallback title = %q", view.Title)
	}
}
