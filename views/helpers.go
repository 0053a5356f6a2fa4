package views

import (
	"html"
	"net/url"
	"path"
	"strings"
	"time"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// safeURL returns an attribute-safe URL, or "" when the value does not
// parse or carries a scheme outside the allow-list.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return html.EscapeString(val)
	default:
		return ""
	}
}

// FormatDate renders a timestamp as YYYY-MM-DD for listing displays.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func esc(s string) string {
	return html.EscapeString(s)
}
