// Package store provides the SQLite-backed record store for the singleton
// home record and the news list.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/eihojp/corpsite/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS homepage (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nav_brand_text TEXT NOT NULL DEFAULT '',
	nav_top_text TEXT NOT NULL DEFAULT '',
	nav_concept_text TEXT NOT NULL DEFAULT '',
	nav_news_text TEXT NOT NULL DEFAULT '',
	nav_services_text TEXT NOT NULL DEFAULT '',
	nav_strengths_text TEXT NOT NULL DEFAULT '',
	nav_profile_text TEXT NOT NULL DEFAULT '',
	nav_contact_text TEXT NOT NULL DEFAULT '',
	hero_kicker_text TEXT NOT NULL DEFAULT '',
	hero_title TEXT NOT NULL DEFAULT '',
	hero_subtitle TEXT NOT NULL DEFAULT '',
	hero_bg_image TEXT NOT NULL DEFAULT '',
	hero_cta_primary_text TEXT NOT NULL DEFAULT '',
	hero_cta_secondary_text TEXT NOT NULL DEFAULT '',
	hero_stats_json TEXT NOT NULL DEFAULT '[]',
	concept_title TEXT NOT NULL DEFAULT '',
	concept_body TEXT NOT NULL DEFAULT '',
	concept_points_json TEXT NOT NULL DEFAULT '[]',
	mission_title TEXT NOT NULL DEFAULT '',
	mission_body TEXT NOT NULL DEFAULT '',
	vision_title TEXT NOT NULL DEFAULT '',
	vision_body TEXT NOT NULL DEFAULT '',
	value_title TEXT NOT NULL DEFAULT '',
	value_body TEXT NOT NULL DEFAULT '',
	president_message_label TEXT NOT NULL DEFAULT '',
	president_message_title TEXT NOT NULL DEFAULT '',
	president_name TEXT NOT NULL DEFAULT '',
	president_role TEXT NOT NULL DEFAULT '',
	president_message_body TEXT NOT NULL DEFAULT '',
	president_message_quote TEXT NOT NULL DEFAULT '',
	president_points_json TEXT NOT NULL DEFAULT '[]',
	services_title TEXT NOT NULL DEFAULT '',
	services_subtitle TEXT NOT NULL DEFAULT '',
	strengths_title TEXT NOT NULL DEFAULT '',
	strengths_subtitle TEXT NOT NULL DEFAULT '',
	services_json TEXT NOT NULL DEFAULT '[]',
	strengths_json TEXT NOT NULL DEFAULT '[]',
	profile_title TEXT NOT NULL DEFAULT '',
	profile_subtitle TEXT NOT NULL DEFAULT '',
	profile_rows_json TEXT NOT NULL DEFAULT '[]',
	company_name TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	representative TEXT NOT NULL DEFAULT '',
	established TEXT NOT NULL DEFAULT '',
	business_desc TEXT NOT NULL DEFAULT '',
	clients TEXT NOT NULL DEFAULT '',
	contact_title TEXT NOT NULL DEFAULT '',
	contact_body TEXT NOT NULL DEFAULT '',
	contact_button_text TEXT NOT NULL DEFAULT '',
	contact_phone_text TEXT NOT NULL DEFAULT '',
	contact_form_title TEXT NOT NULL DEFAULT '',
	contact_form_note TEXT NOT NULL DEFAULT '',
	contact_examples_title TEXT NOT NULL DEFAULT '',
	contact_examples_json TEXT NOT NULL DEFAULT '[]',
	access_title TEXT NOT NULL DEFAULT '',
	access_address TEXT NOT NULL DEFAULT '',
	footer_text TEXT NOT NULL DEFAULT '',
	footer_link_top TEXT NOT NULL DEFAULT '',
	footer_link_services TEXT NOT NULL DEFAULT '',
	footer_link_profile TEXT NOT NULL DEFAULT '',
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS news (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	body TEXT NOT NULL DEFAULT '',
	image_path TEXT NOT NULL DEFAULT '',
	file_path TEXT NOT NULL DEFAULT '',
	image_paths_json TEXT NOT NULL DEFAULT '[]',
	file_paths_json TEXT NOT NULL DEFAULT '[]',
	is_published INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_news_published ON news(is_published, created_at);
`

// RecordStore is the persistence contract consumed by the service layer.
// Depend on this interface rather than *DB to keep handlers testable.
type RecordStore interface {
	GetOrCreateHome() (*models.Home, error)
	SaveHome(h *models.Home) error
	ListNews(q NewsQuery) ([]models.News, int, error)
	GetNews(id int64) (*models.News, error)
	CreateNews(n *models.News) (*models.News, error)
	UpdateNews(id int64, p models.NewsPatch) (*models.News, error)
	DeleteNews(id int64) (bool, error)
	Close() error
}

var _ RecordStore = (*DB)(nil)

// DB wraps a sql.DB with record-store operations.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
