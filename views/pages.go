package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/gerayyy/qingflow-geo-web/content"
	"github.com/gerayyy/qingflow-geo-web/pagination"
)

// layout writes the full HTML document: head with SEO/OpenGraph metadata
// and JSON-LD scripts, site header and footer, and the page body.
func layout(buf *bytes.Buffer, cfg SiteConfig, meta PageMeta, jsonld []string, body func(*bytes.Buffer)) {
	buf.WriteString("<!DOCTYPE html><html lang=\"zh-CN\"><head>")
	buf.WriteString(`<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	buf.WriteString("<title>")
	buf.WriteString(esc(meta.Title))
	buf.WriteString("</title>")
	if meta.Description != "" {
		buf.WriteString(`<meta name="description" content="` + esc(meta.Description) + `"/>`)
	}
	if meta.URL != "" {
		buf.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
		buf.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
	}
	buf.WriteString(`<meta property="og:title" content="` + esc(meta.Title) + `"/>`)
	if meta.Description != "" {
		buf.WriteString(`<meta property="og:description" content="` + esc(meta.Description) + `"/>`)
	}
	buf.WriteString(`<meta property="og:type" content="` + esc(meta.OGType) + `"/>`)
	buf.WriteString(`<meta property="og:site_name" content="` + esc(cfg.Name) + `"/>`)
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(cfg.Name) + `" href="/feed.xml"/>`)
	buf.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
	for _, doc := range jsonld {
		if doc == "" {
			continue
		}
		buf.WriteString(`<script type="application/ld+json">`)
		buf.WriteString(doc)
		buf.WriteString("</script>")
	}
	buf.WriteString("</head><body>")

	buf.WriteString(`<header class="site-header"><a class="site-name" href="/">`)
	buf.WriteString(esc(cfg.Name))
	buf.WriteString(`</a><nav><a href="/blog/">Articles</a></nav></header><main>`)

	body(buf)

	buf.WriteString(`</main><footer class="site-footer"><p>&copy; `)
	buf.WriteString(esc(cfg.OrgName))
	buf.WriteString("</p></footer></body></html>")
}

func page(cfg SiteConfig, meta PageMeta, jsonld []string, body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		layout(&buf, cfg, meta, jsonld, body)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Home renders the marketing landing page with the site-level structured
// data documents.
func Home(cfg SiteConfig) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         BuildURL(cfg.URL),
		OGType:      "website",
	}
	jsonld := []string{
		SoftwareApplicationJsonLD(cfg),
		OrganizationJsonLD(cfg),
	}
	return page(cfg, meta, jsonld, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="hero"><h1>`)
		buf.WriteString(esc(cfg.Name))
		buf.WriteString("</h1>")
		if cfg.Description != "" {
			buf.WriteString("<p>")
			buf.WriteString(esc(cfg.Description))
			buf.WriteString("</p>")
		}
		buf.WriteString(`<a class="hero-cta" href="/blog/">Read the articles</a></section>`)
	})
}

// BlogIndex renders one page of the published article listing.
func BlogIndex(items []content.ArticleSummary, pv pagination.PageView, cfg SiteConfig) templ.Component {
	meta := PageMeta{
		Title:       "Articles - " + cfg.Name,
		Description: cfg.Description,
		URL:         BuildURL(cfg.URL, "blog"),
		OGType:      "website",
	}
	jsonld := []string{WebsiteJsonLD(cfg)}
	return page(cfg, meta, jsonld, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="article-list-page"><h1>Articles</h1>`)
		if len(items) == 0 {
			buf.WriteString(`<p class="empty-state">No articles yet.</p></section>`)
			return
		}
		for _, it := range items {
			link := "/blog/" + it.Slug + "/"
			buf.WriteString(`<article class="article-card"><time datetime="`)
			buf.WriteString(esc(it.PublishedAt.UTC().Format("2006-01-02T15:04:05Z07:00")))
			buf.WriteString(`">`)
			buf.WriteString(FormatDate(it.PublishedAt))
			buf.WriteString(`</time><h2><a href="` + esc(link) + `">`)
			buf.WriteString(esc(it.Title))
			buf.WriteString("</a></h2><p>")
			buf.WriteString(esc(it.Summary))
			buf.WriteString("</p></article>")
		}
		buf.WriteString("</section>")
		renderComponent(buf, Pagination(pv, "/blog/"))
	})
}

// ArticlePage renders a single article: head metadata from seoMeta when
// present, the projected block tree, the geo-enhancement sections, and
// the Article (plus conditional FAQPage) structured data.
func ArticlePage(a content.Article, cfg SiteConfig) templ.Component {
	metaTitle, metaDescription := a.Title, a.Summary
	if a.SeoMeta != nil {
		if a.SeoMeta.Title != "" {
			metaTitle = a.SeoMeta.Title
		}
		if a.SeoMeta.Description != "" {
			metaDescription = a.SeoMeta.Description
		}
	}
	meta := PageMeta{
		Title:       metaTitle,
		Description: metaDescription,
		URL:         BuildURL(cfg.URL, "blog", a.Slug),
		OGType:      "article",
	}
	jsonld := []string{ArticleJsonLD(a, cfg)}
	if a.GeoData != nil {
		jsonld = append(jsonld, FAQJsonLD(a.GeoData.FAQs))
	}
	return page(cfg, meta, jsonld, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="article"><header><h1>`)
		buf.WriteString(esc(a.Title))
		buf.WriteString(`</h1><time datetime="`)
		buf.WriteString(esc(a.PublishedAt.UTC().Format("2006-01-02T15:04:05Z07:00")))
		buf.WriteString(`">`)
		buf.WriteString(FormatDate(a.PublishedAt))
		buf.WriteString(`</time></header>`)
		if a.GeoData != nil {
			renderComponent(buf, KeyTakeaways(a.GeoData.KeyTakeaways))
		}
		renderComponent(buf, Blocks(a.Content))
		if a.GeoData != nil {
			renderComponent(buf, FAQSection(a.GeoData.FAQs))
		}
		buf.WriteString("</article>")
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Not found - " + cfg.Name, OGType: "website"}
	return page(cfg, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error-page"><h1>404</h1><p>This page does not exist.</p><a href="/blog/">Back to articles</a></section>`)
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	meta := PageMeta{Title: "Something went wrong - " + cfg.Name, OGType: "website"}
	return page(cfg, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="error-page"><h1>500</h1><p>Something went wrong. Please try again later.</p></section>`)
	})
}

// renderComponent inlines a component into a parent buffer. Buffer writes
// cannot fail, so the error is only from the component itself.
func renderComponent(buf *bytes.Buffer, cmp templ.Component) {
	if err := cmp.Render(context.Background(), buf); err != nil {
		fmt.Fprintf(buf, "<!-- render error: %v -->", err)
	}
}
