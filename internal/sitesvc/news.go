package sitesvc

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/assets"
	"github.com/eihojp/corpsite/internal/jsonlist"
	"github.com/eihojp/corpsite/internal/markup"
	"github.com/eihojp/corpsite/internal/models"
	"github.com/eihojp/corpsite/internal/store"
)

const publicPageSize = 10

// NewsLink is the minimal public summary exposed by the widget API.
type NewsLink struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewsSummary is one row of the public news list page.
type NewsSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewsListView is the public, paginated news list: items plus everything a
// list page needs to render its pager.
type NewsListView struct {
	Items       []NewsSummary `json:"items"`
	Keyword     string        `json:"keyword"`
	Sort        string        `json:"sort"`
	Page        int           `json:"page"`
	TotalPages  int           `json:"total_pages"`
	TotalItems  int           `json:"total_items"`
	PageNumbers []int         `json:"page_numbers"`
}

// NewsDetailView is a published entry rendered for display: markup blocks,
// images not placed by any tag, and attached files.
type NewsDetailView struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	Blocks         []markup.Block   `json:"blocks"`
	LeftoverImages []string         `json:"leftover_images"`
	Files          []models.FileRef `json:"files"`
}

// PublicNews returns up to limit published entries, newest first. The limit
// is clamped to [1, 100] and defaults to 8.
func (s *Service) PublicNews(limit int) ([]NewsLink, error) {
	if limit <= 0 {
		limit = 8
	}
	if limit > 100 {
		limit = 100
	}
	items, _, err := s.store.ListNews(store.NewsQuery{
		Status:   store.StatusPublished,
		PageSize: limit,
	})
	if err != nil {
		return nil, err
	}
	links := make([]NewsLink, 0, len(items))
	for _, n := range items {
		links = append(links, NewsLink{ID: n.ID, Title: n.Title, URL: newsURL(n.ID)})
	}
	return links, nil
}

// PublishedList returns one page of the public news list. An out-of-range
// page is clamped to the last page and re-queried, so the caller always gets
// the rows it will render.
func (s *Service) PublishedList(keyword, sort string, page int) (NewsListView, error) {
	sort = strings.ToLower(strings.TrimSpace(sort))
	if sort != store.SortOldest {
		sort = store.SortLatest
	}
	if page < 1 {
		page = 1
	}
	keyword = strings.TrimSpace(keyword)

	q := store.NewsQuery{
		Keyword:  keyword,
		Status:   store.StatusPublished,
		Sort:     sort,
		Page:     page,
		PageSize: publicPageSize,
	}
	items, total, err := s.store.ListNews(q)
	if err != nil {
		return NewsListView{}, err
	}

	totalPages := (total + publicPageSize - 1) / publicPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
		q.Page = page
		if items, total, err = s.store.ListNews(q); err != nil {
			return NewsListView{}, err
		}
	}

	summaries := make([]NewsSummary, 0, len(items))
	for _, n := range items {
		summaries = append(summaries, NewsSummary{
			ID:        n.ID,
			Title:     n.Title,
			URL:       newsURL(n.ID),
			CreatedAt: n.CreatedAt,
		})
	}

	first := page - 2
	if first < 1 {
		first = 1
	}
	last := page + 2
	if last > totalPages {
		last = totalPages
	}
	numbers := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		numbers = append(numbers, i)
	}

	return NewsListView{
		Items:       summaries,
		Keyword:     keyword,
		Sort:        sort,
		Page:        page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageNumbers: numbers,
	}, nil
}

// AdminList returns one page of news for the admin table, drafts included.
func (s *Service) AdminList(q store.NewsQuery) ([]models.News, int, error) {
	return s.store.ListNews(q)
}

// NewsDetail renders a published entry. Unpublished and missing entries both
// read as not found.
func (s *Service) NewsDetail(id int64) (NewsDetailView, error) {
	n, err := s.store.GetNews(id)
	if err != nil {
		return NewsDetailView{}, err
	}
	if !n.IsPublished {
		return NewsDetailView{}, fmt.Errorf("sitesvc: news %d unpublished: %w", id, apperr.ErrNotFound)
	}

	images := newsImages(n)
	blocks, leftover := markup.Parse(n.Body, images)

	return NewsDetailView{
		ID:             n.ID,
		Title:          n.Title,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		Blocks:         blocks,
		LeftoverImages: leftover,
		Files:          newsFiles(n),
	}, nil
}

// newsImages resolves the entry's image list, falling back to the legacy
// single column when the JSON list is empty.
func newsImages(n *models.News) []string {
	if urls := jsonlist.DecodeURLList(n.ImagePathsJSON); len(urls) > 0 {
		return urls
	}
	if n.ImagePath != "" {
		return []string{n.ImagePath}
	}
	return nil
}

// newsFiles resolves the entry's attachment list with the legacy single
// column fallback.
func newsFiles(n *models.News) []models.FileRef {
	if refs := jsonlist.DecodeFileRefs(n.FilePathsJSON); len(refs) > 0 {
		return refs
	}
	if n.FilePath != "" {
		return []models.FileRef{{Name: "附件", URL: n.FilePath}}
	}
	return nil
}

// NewsInput carries an admin news submission. NewImages/NewFiles are the
// already-stored URLs of uploads made during this request.
type NewsInput struct {
	Title       string
	Body        string
	IsPublished bool
	NewImages   []string
	NewFiles    []models.FileRef
}

// CreateNews stores a new entry. The legacy single-asset columns mirror the
// first element of each list for old readers.
func (s *Service) CreateNews(in NewsInput) (*models.News, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: news title is required", apperr.ErrInvalid)
	}

	imagesJSON, err := jsonlist.Encode("news images", stringsOrEmpty(in.NewImages))
	if err != nil {
		return nil, err
	}
	filesJSON, err := jsonlist.Encode("news files", filesOrEmpty(in.NewFiles))
	if err != nil {
		return nil, err
	}

	n, err := s.store.CreateNews(&models.News{
		Title:          title,
		Body:           in.Body,
		ImagePath:      firstString(in.NewImages),
		FilePath:       firstFileURL(in.NewFiles),
		ImagePathsJSON: imagesJSON,
		FilePathsJSON:  filesJSON,
		IsPublished:    in.IsPublished,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("news created", slog.Int64("id", n.ID), slog.Bool("published", n.IsPublished))
	return n, nil
}

// UpdateNews rewrites an entry, merging any new uploads into the stored
// asset lists. With no new uploads the stored lists survive unchanged.
func (s *Service) UpdateNews(id int64, in NewsInput) (*models.News, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: news title is required", apperr.ErrInvalid)
	}

	cur, err := s.store.GetNews(id)
	if err != nil {
		return nil, err
	}

	mergedImages := assets.MergeAssets(newsImages(cur), in.NewImages)
	mergedFiles := mergeFiles(newsFiles(cur), in.NewFiles)

	imagesJSON, err := jsonlist.Encode("news images", stringsOrEmpty(mergedImages))
	if err != nil {
		return nil, err
	}
	filesJSON, err := jsonlist.Encode("news files", filesOrEmpty(mergedFiles))
	if err != nil {
		return nil, err
	}

	imagePath := firstString(mergedImages)
	filePath := firstFileURL(mergedFiles)
	n, err := s.store.UpdateNews(id, models.NewsPatch{
		Title:          &title,
		Body:           &in.Body,
		ImagePath:      &imagePath,
		FilePath:       &filePath,
		ImagePathsJSON: &imagesJSON,
		FilePathsJSON:  &filesJSON,
		IsPublished:    &in.IsPublished,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("news updated", slog.Int64("id", n.ID), slog.Bool("published", n.IsPublished))
	return n, nil
}

// DeleteNews removes an entry; a missing id reads as not found.
func (s *Service) DeleteNews(id int64) error {
	ok, err := s.store.DeleteNews(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("sitesvc: news %d: %w", id, apperr.ErrNotFound)
	}
	s.logger.Info("news deleted", slog.Int64("id", id))
	return nil
}

func mergeFiles(existing, added []models.FileRef) []models.FileRef {
	if len(added) == 0 {
		return existing
	}
	out := make([]models.FileRef, 0, len(existing)+len(added))
	out = append(out, existing...)
	return append(out, added...)
}

func newsURL(id int64) string {
	return "/news/" + strconv.FormatInt(id, 10)
}

func firstString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func firstFileURL(list []models.FileRef) string {
	if len(list) == 0 {
		return ""
	}
	return list[0].URL
}

func stringsOrEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func filesOrEmpty(list []models.FileRef) []models.FileRef {
	if list == nil {
		return []models.FileRef{}
	}
	return list
}
