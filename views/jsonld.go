package views

import (
	"encoding/json"
	"time"

	"github.com/gerayyy/qingflow-geo-web/content"
)

// JSON-LD builders. Each produces one Schema.org document as a compact
// JSON string. Output is deterministic for a given input (map keys are
// marshalled in sorted order), which keeps golden tests and HTTP caches
// honest.

// ArticleJsonLD produces the Article document for an article page. Always
// emitted, from title/summary/publishedAt/updatedAt/slug.
func ArticleJsonLD(a content.Article, cfg SiteConfig) string {
	articleURL := BuildURL(cfg.URL, "blog", a.Slug)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      a.Title,
		"description":   a.Summary,
		"datePublished": a.PublishedAt.UTC().Format(time.RFC3339),
		"dateModified":  a.UpdatedAt.UTC().Format(time.RFC3339),
		"url":           articleURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   articleURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.Author,
		}
	}
	if cfg.OrgName != "" {
		publisher := map[string]any{
			"@type": "Organization",
			"name":  cfg.OrgName,
		}
		if cfg.OrgLogoURL != "" {
			publisher["logo"] = map[string]string{
				"@type": "ImageObject",
				"url":   cfg.OrgLogoURL,
			}
		}
		data["publisher"] = publisher
	}
	return marshalJsonLD(data)
}

// FAQJsonLD produces the FAQPage document. Returns "" when there are no
// FAQs so callers emit the document if and only if the list is non-empty.
func FAQJsonLD(faqs []content.FAQ) string {
	if len(faqs) == 0 {
		return ""
	}
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]string{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return marshalJsonLD(map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": entities,
	})
}

// WebsiteJsonLD produces the WebSite document for listing pages.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	return marshalJsonLD(data)
}

// OrganizationJsonLD produces the Organization document for the home page.
func OrganizationJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"name":        cfg.OrgName,
		"url":         cfg.OrgURL,
		"description": cfg.Description,
	}
	if cfg.OrgLogoURL != "" {
		data["logo"] = cfg.OrgLogoURL
	}
	return marshalJsonLD(data)
}

// SoftwareApplicationJsonLD produces the SoftwareApplication document for
// the home page. Returns "" when no application is configured.
func SoftwareApplicationJsonLD(cfg SiteConfig) string {
	if cfg.AppName == "" {
		return ""
	}
	data := map[string]any{
		"@context":        "https://schema.org",
		"@type":           "SoftwareApplication",
		"name":            cfg.AppName,
		"operatingSystem": "Web",
	}
	if cfg.AppCategory != "" {
		data["applicationCategory"] = cfg.AppCategory
	}
	if cfg.AppDescription != "" {
		data["description"] = cfg.AppDescription
	}
	if cfg.OrgName != "" {
		data["provider"] = map[string]string{
			"@type": "Organization",
			"name":  cfg.OrgName,
			"url":   cfg.OrgURL,
		}
	}
	return marshalJsonLD(data)
}

// marshalJsonLD marshals one document. encoding/json escapes <, > and &
// by default, so values can never terminate the inline script tag.
func marshalJsonLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
