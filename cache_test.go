package geoweb

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gerayyy/qingflow-geo-web/content"
)

func TestCacheListServesFromCacheUntilInvalidated(t *testing.T) {
	s := setupTestStore(t)
	cache := NewArticleCache(s, time.Minute)

	if _, err := s.Upsert(articleInput("one", content.StatusPublished, time.Now().UTC())); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	items, err := cache.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}

	// Writing behind the cache's back is invisible until invalidation.
	if _, err := s.Upsert(articleInput("two", content.StatusPublished, time.Now().UTC())); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	items, err = cache.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("len = %d, want stale 1 before invalidation", len(items))
	}

	cache.Invalidate()
	items, err = cache.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2 after invalidation", len(items))
	}
}

func TestCacheListExpiresAfterTTL(t *testing.T) {
	s := setupTestStore(t)
	cache := NewArticleCache(s, 50*time.Millisecond)

	if _, err := cache.List(); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if _, err := s.Upsert(articleInput("late", content.StatusPublished, time.Now().UTC())); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	time.Sleep(80 * time.Millisecond)
	items, err := cache.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("len = %d, want fresh 1 after TTL expiry", len(items))
	}
}

func TestCacheGetArticle(t *testing.T) {
	s := setupTestStore(t)
	cache := NewArticleCache(s, time.Minute)

	if _, err := s.Upsert(articleInput("cached", content.StatusPublished, time.Now().UTC())); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	got, err := cache.GetArticle("cached")
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if got.Slug != "cached" {
		t.Errorf("Slug = %q", got.Slug)
	}

	if _, err := cache.GetArticle("missing"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("GetArticle(missing) = %v, want ErrNotFound", err)
	}
}

func TestCacheGetArticleSkipsDrafts(t *testing.T) {
	s := setupTestStore(t)
	cache := NewArticleCache(s, time.Minute)

	if _, err := s.Upsert(articleInput("hidden", content.StatusDraft, time.Now().UTC())); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := cache.GetArticle("hidden"); !errors.Is(err, content.ErrNotFound) {
		t.Errorf("drafts must not be served: %v", err)
	}
}

func TestCacheSurvivesStoreClose(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "articles.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	cache := NewArticleCache(s, time.Minute)

	if _, err := s.Upsert(articleInput("kept", content.StatusPublished, time.Now().UTC())); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := cache.List(); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	s.Close()

	// Cached reads keep working against a closed store until expiry.
	items, err := cache.List()
	if err != nil {
		t.Fatalf("cached List failed after close: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("len = %d, want 1", len(items))
	}
}
