package geoweb

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gerayyy/qingflow-geo-web/content"
)

// timeLayout is RFC 3339 with fixed-width nanoseconds. All stored times
// are UTC, so lexicographic order on the column equals chronological
// order and the paging ORDER BY stays correct.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite database and provides the article repository:
// upsert-by-slug on the write side, published-only reads on the read side.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy_timeout so concurrent
	// publishes to the same slug wait on the row instead of failing with
	// SQLITE_BUSY. synchronous=NORMAL is safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    summary TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'draft',
    published_at TEXT NOT NULL,
    content TEXT NOT NULL,
    geo_data TEXT,
    seo_meta TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_articles_published ON articles (status, published_at DESC, id ASC);

CREATE TABLE IF NOT EXISTS uploads (
    filename TEXT PRIMARY KEY,
    original_name TEXT NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    size INTEGER NOT NULL,
    uploaded_at TEXT NOT NULL
);
`)
	return err
}

// Upsert creates or fully replaces the article identified by in.Slug.
// created_at is stamped on first insert only and never altered afterwards;
// updated_at is stamped on every call. The single conditional write keyed
// by the unique slug constraint makes concurrent publishes to one slug
// resolve last-write-wins.
func (s *Store) Upsert(in content.ArticleInput) (content.Article, error) {
	contentJSON, err := json.Marshal(in.Content)
	if err != nil {
		return content.Article{}, fmt.Errorf("marshal content: %w", err)
	}
	geoJSON, err := marshalNullable(in.GeoData == nil, in.GeoData)
	if err != nil {
		return content.Article{}, fmt.Errorf("marshal geo_data: %w", err)
	}
	seoJSON, err := marshalNullable(in.SeoMeta == nil, in.SeoMeta)
	if err != nil {
		return content.Article{}, fmt.Errorf("marshal seo_meta: %w", err)
	}

	now := time.Now().UTC().Format(timeLayout)
	_, err = s.db.Exec(`
INSERT INTO articles (slug, title, summary, status, published_at, content, geo_data, seo_meta, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(slug) DO UPDATE SET
    title = excluded.title,
    summary = excluded.summary,
    status = excluded.status,
    published_at = excluded.published_at,
    content = excluded.content,
    geo_data = excluded.geo_data,
    seo_meta = excluded.seo_meta,
    updated_at = excluded.updated_at`,
		in.Slug, in.Title, in.Summary, string(in.Status),
		in.PublishedAt.UTC().Format(timeLayout),
		string(contentJSON), geoJSON, seoJSON, now, now)
	if err != nil {
		return content.Article{}, err
	}
	return s.getBySlug(in.Slug, false)
}

// GetPublished returns the published article with the exact slug, or
// content.ErrNotFound when the slug is missing or the article is not
// published. No case-folding, no partial match.
func (s *Store) GetPublished(slug string) (content.Article, error) {
	return s.getBySlug(slug, true)
}

// GetAny returns the article with the given slug regardless of status
// (admin surface only).
func (s *Store) GetAny(slug string) (content.Article, error) {
	return s.getBySlug(slug, false)
}

func (s *Store) getBySlug(slug string, publishedOnly bool) (content.Article, error) {
	query := `SELECT id, slug, title, summary, status, published_at, content, geo_data, seo_meta, created_at, updated_at
FROM articles WHERE slug = ?`
	if publishedOnly {
		query += ` AND status = 'published'`
	}
	return scanArticle(s.db.QueryRow(query, slug))
}

// ListPublishedPage returns one page of published article summaries
// ordered by published_at descending with id ascending as tie-break, so
// the ordering is total and pagination is stable across repeated calls.
// total is the full count of published articles regardless of the window.
func (s *Store) ListPublishedPage(page, pageSize int) ([]content.ArticleSummary, int, error) {
	if page < 1 {
		page = 1
	}
	rows, err := s.db.Query(`
SELECT id, slug, title, summary, status, published_at
FROM articles WHERE status = 'published'
ORDER BY published_at DESC, id ASC
LIMIT ? OFFSET ?`, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	items, err := scanSummaries(rows)
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM articles WHERE status = 'published'`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListPublished returns every published article summary in listing order
// (for the sitemap, feed, and read cache).
func (s *Store) ListPublished() ([]content.ArticleSummary, error) {
	rows, err := s.db.Query(`
SELECT id, slug, title, summary, status, published_at
FROM articles WHERE status = 'published'
ORDER BY published_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanSummaries(rows)
}

// ListAll returns every article regardless of status in listing order
// (admin dashboard).
func (s *Store) ListAll() ([]content.ArticleSummary, error) {
	rows, err := s.db.Query(`
SELECT id, slug, title, summary, status, published_at
FROM articles
ORDER BY published_at DESC, id ASC`)
	if err != nil {
		return nil, err
	}
	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]content.ArticleSummary, error) {
	defer rows.Close()
	var items []content.ArticleSummary
	for rows.Next() {
		var it content.ArticleSummary
		var status, publishedAt string
		if err := rows.Scan(&it.ID, &it.Slug, &it.Title, &it.Summary, &status, &publishedAt); err != nil {
			return nil, err
		}
		it.Status = content.Status(status)
		t, err := time.Parse(timeLayout, publishedAt)
		if err != nil {
			return nil, fmt.Errorf("parse published_at: %w", err)
		}
		it.PublishedAt = t
		items = append(items, it)
	}
	return items, rows.Err()
}

func scanArticle(row *sql.Row) (content.Article, error) {
	var a content.Article
	var status, publishedAt, createdAt, updatedAt, blocks string
	var geoData, seoMeta sql.NullString
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Summary, &status, &publishedAt, &blocks, &geoData, &seoMeta, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return content.Article{}, content.ErrNotFound
	}
	if err != nil {
		return content.Article{}, err
	}
	a.Status = content.Status(status)
	if a.PublishedAt, err = time.Parse(timeLayout, publishedAt); err != nil {
		return content.Article{}, fmt.Errorf("parse published_at: %w", err)
	}
	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return content.Article{}, fmt.Errorf("parse created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return content.Article{}, fmt.Errorf("parse updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(blocks), &a.Content); err != nil {
		return content.Article{}, fmt.Errorf("unmarshal content: %w", err)
	}
	if geoData.Valid {
		a.GeoData = &content.GeoEnhancement{}
		if err := json.Unmarshal([]byte(geoData.String), a.GeoData); err != nil {
			return content.Article{}, fmt.Errorf("unmarshal geo_data: %w", err)
		}
	}
	if seoMeta.Valid {
		a.SeoMeta = &content.SeoMeta{}
		if err := json.Unmarshal([]byte(seoMeta.String), a.SeoMeta); err != nil {
			return content.Article{}, fmt.Errorf("unmarshal seo_meta: %w", err)
		}
	}
	return a, nil
}

// marshalNullable marshals v to JSON, mapping a nil value to SQL NULL.
func marshalNullable(isNil bool, v any) (sql.NullString, error) {
	if isNil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}
