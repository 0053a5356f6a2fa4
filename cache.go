package geoweb

import (
	"sync"
	"time"

	"github.com/gerayyy/qingflow-geo-web/content"
)

// ArticleCache is an in-memory TTL cache in front of the store's
// published read paths. It caches the ordered summary list (sitemap,
// feed) and full articles by slug. Freshness is this layer's concern, not
// the repository's: the publish webhook invalidates it after every write.
type ArticleCache struct {
	mu        sync.RWMutex
	summaries []content.ArticleSummary
	articles  map[string]content.Article
	fetched   time.Time
	ttl       time.Duration
	store     *Store
}

// NewArticleCache creates an ArticleCache backed by the given Store.
func NewArticleCache(s *Store, ttl time.Duration) *ArticleCache {
	return &ArticleCache{store: s, ttl: ttl, articles: make(map[string]content.Article)}
}

func (c *ArticleCache) valid() bool {
	return c.summaries != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ArticleCache) Invalidate() {
	c.mu.Lock()
	c.summaries = nil
	c.articles = make(map[string]content.Article)
	c.mu.Unlock()
}

// List returns every published article summary in listing order.
func (c *ArticleCache) List() ([]content.ArticleSummary, error) {
	c.mu.RLock()
	if c.valid() {
		items := c.summaries
		c.mu.RUnlock()
		return items, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.summaries, nil
	}
	items, err := c.store.ListPublished()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []content.ArticleSummary{}
	}
	c.summaries = items
	c.articles = make(map[string]content.Article)
	c.fetched = time.Now()
	return items, nil
}

// GetArticle returns a published article by slug, from cache when
// possible. Misses are not cached; content.ErrNotFound passes through.
func (c *ArticleCache) GetArticle(slug string) (content.Article, error) {
	c.mu.RLock()
	if c.valid() {
		if a, ok := c.articles[slug]; ok {
			c.mu.RUnlock()
			return a, nil
		}
	}
	c.mu.RUnlock()

	a, err := c.store.GetPublished(slug)
	if err != nil {
		return content.Article{}, err
	}

	c.mu.Lock()
	if c.valid() {
		c.articles[slug] = a
	}
	c.mu.Unlock()
	return a, nil
}
