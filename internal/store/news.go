package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/eihojp/corpsite/internal/apperr"
	"github.com/eihojp/corpsite/internal/models"
)

// News visibility filters.
const (
	StatusAll       = "all"
	StatusPublished = "published"
	StatusDraft     = "draft"
)

// News sort orders.
const (
	SortLatest = "latest"
	SortOldest = "oldest"
)

// NewsQuery selects a page of news entries. Zero values mean: no keyword,
// all statuses, latest first, first page, default page size.
type NewsQuery struct {
	Keyword  string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

const newsColumns = "id, title, body, image_path, file_path, image_paths_json, file_paths_json, is_published, created_at, updated_at"

func scanNews(row interface{ Scan(...any) error }) (*models.News, error) {
	n := &models.News{}
	err := row.Scan(&n.ID, &n.Title, &n.Body, &n.ImagePath, &n.FilePath,
		&n.ImagePathsJSON, &n.FilePathsJSON, &n.IsPublished, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ListNews returns one page of entries plus the total count matching the
// filter, so callers can build pagination without a second query of their own.
func (db *DB) ListNews(q NewsQuery) ([]models.News, int, error) {
	var conds []string
	var args []any

	switch q.Status {
	case StatusPublished:
		conds = append(conds, "is_published = 1")
	case StatusDraft:
		conds = append(conds, "is_published = 0")
	}
	if kw := strings.TrimSpace(q.Keyword); kw != "" {
		conds = append(conds, "(title LIKE ? OR body LIKE ?)")
		pat := "%" + kw + "%"
		args = append(args, pat, pat)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM news"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("store: count news: %w", err)
	}

	order := " ORDER BY created_at DESC, id DESC"
	if q.Sort == SortOldest {
		order = " ORDER BY created_at ASC, id ASC"
	}

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	page := q.Page
	if page < 1 {
		page = 1
	}

	query := "SELECT " + newsColumns + " FROM news" + where + order + " LIMIT ? OFFSET ?"
	rows, err := db.conn.Query(query, append(args, pageSize, (page-1)*pageSize)...)
	if err != nil {
		return nil, 0, fmt.Errorf("store: list news: %w", err)
	}
	defer rows.Close()

	var items []models.News
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("store: scan news: %w", err)
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("store: iterate news: %w", err)
	}
	return items, total, nil
}

// GetNews returns a single entry by ID, published or not.
func (db *DB) GetNews(id int64) (*models.News, error) {
	n, err := scanNews(db.conn.QueryRow(
		"SELECT "+newsColumns+" FROM news WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: news %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: get news %d: %w", id, err)
	}
	return n, nil
}

// CreateNews inserts a new entry and returns the stored row.
func (db *DB) CreateNews(n *models.News) (*models.News, error) {
	res, err := db.conn.Exec(
		`INSERT INTO news (title, body, image_path, file_path, image_paths_json, file_paths_json, is_published)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.Title, n.Body, n.ImagePath, n.FilePath,
		orEmptyList(n.ImagePathsJSON), orEmptyList(n.FilePathsJSON), n.IsPublished)
	if err != nil {
		return nil, fmt.Errorf("store: create news: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("store: create news id: %w", err)
	}
	return db.GetNews(id)
}

// UpdateNews applies a partial update and returns the resulting row.
// Nil patch fields keep the stored values.
func (db *DB) UpdateNews(id int64, p models.NewsPatch) (*models.News, error) {
	cur, err := db.GetNews(id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		cur.Title = *p.Title
	}
	if p.Body != nil {
		cur.Body = *p.Body
	}
	if p.ImagePath != nil {
		cur.ImagePath = *p.ImagePath
	}
	if p.FilePath != nil {
		cur.FilePath = *p.FilePath
	}
	if p.ImagePathsJSON != nil {
		cur.ImagePathsJSON = *p.ImagePathsJSON
	}
	if p.FilePathsJSON != nil {
		cur.FilePathsJSON = *p.FilePathsJSON
	}
	if p.IsPublished != nil {
		cur.IsPublished = *p.IsPublished
	}

	_, err = db.conn.Exec(
		`UPDATE news SET title = ?, body = ?, image_path = ?, file_path = ?,
		 image_paths_json = ?, file_paths_json = ?, is_published = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		cur.Title, cur.Body, cur.ImagePath, cur.FilePath,
		orEmptyList(cur.ImagePathsJSON), orEmptyList(cur.FilePathsJSON), cur.IsPublished, id)
	if err != nil {
		return nil, fmt.Errorf("store: update news %d: %w", id, err)
	}
	return db.GetNews(id)
}

// DeleteNews removes an entry. The bool reports whether a row existed.
func (db *DB) DeleteNews(id int64) (bool, error) {
	res, err := db.conn.Exec("DELETE FROM news WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("store: delete news %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: delete news %d: %w", id, err)
	}
	return affected > 0, nil
}

func orEmptyList(s string) string {
	if strings.TrimSpace(s) == "" {
		return "[]"
	}
	return s
}
