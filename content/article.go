// Package content defines the article domain model: the content block
// schema, the webhook publish payload, and the validation rules that gate
// every write.
package content

import "time"

// Status is the article lifecycle state. Only published articles are
// visible through public read paths.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// SeoMeta carries the head-level title and description supplied by the
// publisher. Opaque beyond non-emptiness.
type SeoMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FAQ is a single question/answer pair inside a GeoEnhancement.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeoEnhancement is supplementary machine-readable content emitted as
// structured data alongside the rendered article. Absent sections are
// omitted from output entirely.
type GeoEnhancement struct {
	KeyTakeaways []string `json:"key_takeaways"`
	FAQs         []FAQ    `json:"faqs"`
}

// Article is the persisted entity. Slug is the unique natural key for
// upsert; ID is engine-assigned and immutable.
type Article struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Summary     string          `json:"summary"`
	Status      Status          `json:"status"`
	PublishedAt time.Time       `json:"publishedAt"`
	Content     []Block         `json:"content"`
	GeoData     *GeoEnhancement `json:"geoData,omitempty"`
	SeoMeta     *SeoMeta        `json:"seoMeta,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ArticleSummary is the listing projection of an Article, without the
// content blobs.
type ArticleSummary struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Status      Status    `json:"status"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ArticleInput holds the fields a publish call replaces. Every upsert is a
// full replace; there is no partial merge.
type ArticleInput struct {
	Slug        string
	Title       string
	Summary     string
	Status      Status
	PublishedAt time.Time
	Content     []Block
	GeoData     *GeoEnhancement
	SeoMeta     *SeoMeta
}

// PublishRequest is the inbound webhook payload.
type PublishRequest struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Summary        string          `json:"summary"`
	Status         Status          `json:"status"`
	Seo            *SeoMeta        `json:"seo,omitempty"`
	GeoEnhancement *GeoEnhancement `json:"geo_enhancement,omitempty"`
	ContentBlocks  []Block         `json:"content_blocks"`
}

// Input converts a validated request into the upsert input, stamping
// publishedAt. Every publish call is treated as a fresh publish event, so
// the stamp is applied on re-publishes too.
func (r *PublishRequest) Input(publishedAt time.Time) ArticleInput {
	return ArticleInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Summary:     r.Summary,
		Status:      r.Status,
		PublishedAt: publishedAt,
		Content:     r.ContentBlocks,
		GeoData:     r.GeoEnhancement,
		SeoMeta:     r.Seo,
	}
}
