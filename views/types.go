// Package views renders the site's pages as templ components. Components
// are built by hand with templ.ComponentFunc: each writes escaped HTML
// into a buffer, so the whole render path is pure and deterministic.
package views

// SiteConfig holds the site-wide settings templates need. The application
// populates it from its own configuration.
type SiteConfig struct {
	Name        string
	URL         string
	Description string
	Author      string

	OrgName        string
	OrgURL         string
	OrgLogoURL     string
	AppName        string
	AppCategory    string
	AppDescription string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the head.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
