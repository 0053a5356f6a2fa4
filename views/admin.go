package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/gerayyy/qingflow-geo-web/content"
)

// AdminLogin renders the admin password form.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Admin - " + cfg.Name, OGType: "website"}
	return page(cfg, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin-login"><h1>Admin</h1>`)
		if showError {
			buf.WriteString(`<p class="form-error">Wrong password.</p>`)
		}
		buf.WriteString(`<form method="post" action="/admin/login/">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<input type="password" name="password" autocomplete="current-password" autofocus/>`)
		buf.WriteString(`<button type="submit">Log in</button></form></section>`)
	})
}

// AdminDashboard lists every article regardless of status, with a link to
// the raw payload inspector per slug.
func AdminDashboard(cfg SiteConfig, items []content.ArticleSummary, msg, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Dashboard - " + cfg.Name, OGType: "website"}
	return page(cfg, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin-dashboard"><h1>Articles</h1>`)
		if msg != "" {
			buf.WriteString(`<p class="admin-message">` + esc(msg) + `</p>`)
		}
		buf.WriteString(logoutForm(csrfToken))
		buf.WriteString(`<p><a href="/admin/images/">Images</a></p>`)
		if len(items) == 0 {
			buf.WriteString("<p>Nothing published yet. Articles arrive through the publish webhook.</p></section>")
			return
		}
		buf.WriteString(`<table class="admin-table"><thead><tr><th>Slug</th><th>Title</th><th>Status</th><th>Published</th></tr></thead><tbody>`)
		for _, it := range items {
			buf.WriteString(`<tr><td><a href="/admin/article/` + esc(it.Slug) + `/">`)
			buf.WriteString(esc(it.Slug))
			buf.WriteString("</a></td><td>")
			buf.WriteString(esc(it.Title))
			buf.WriteString(`</td><td><span class="status status-` + esc(string(it.Status)) + `">`)
			buf.WriteString(esc(string(it.Status)))
			buf.WriteString("</span></td><td>")
			buf.WriteString(FormatDate(it.PublishedAt))
			buf.WriteString("</td></tr>")
		}
		buf.WriteString("</tbody></table></section>")
	})
}

// AdminArticle shows one article in full, including the pretty-printed
// stored payload, regardless of status.
func AdminArticle(cfg SiteConfig, a content.Article, rawPayload, csrfToken string) templ.Component {
	meta := PageMeta{Title: a.Slug + " - " + cfg.Name, OGType: "website"}
	return page(cfg, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin-article"><h1>`)
		buf.WriteString(esc(a.Title))
		buf.WriteString(`</h1><p><a href="/admin/">Back to dashboard</a>`)
		if a.Status == content.StatusPublished {
			buf.WriteString(` &middot; <a href="/blog/` + esc(a.Slug) + `/">View live</a>`)
		}
		buf.WriteString(`</p><dl><dt>Status</dt><dd>`)
		buf.WriteString(esc(string(a.Status)))
		buf.WriteString("</dd><dt>Published</dt><dd>")
		buf.WriteString(esc(a.PublishedAt.UTC().Format("2006-01-02 15:04:05")))
		buf.WriteString("</dd><dt>Created</dt><dd>")
		buf.WriteString(esc(a.CreatedAt.UTC().Format("2006-01-02 15:04:05")))
		buf.WriteString("</dd><dt>Updated</dt><dd>")
		buf.WriteString(esc(a.UpdatedAt.UTC().Format("2006-01-02 15:04:05")))
		buf.WriteString("</dd></dl><h2>Stored payload</h2><pre>")
		buf.WriteString(esc(rawPayload))
		buf.WriteString("</pre></section>")
	})
}

// AdminImage is the listing projection of one uploaded image.
type AdminImage struct {
	URL      string
	Filename string
	Name     string
}

// AdminImages lists uploaded images with upload and delete controls.
func AdminImages(cfg SiteConfig, images []AdminImage, csrfToken string) templ.Component {
	meta := PageMeta{Title: "Images - " + cfg.Name, OGType: "website"}
	return page(cfg, meta, nil, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="admin-images"><h1>Images</h1><p><a href="/admin/">Back to dashboard</a></p>`)
		buf.WriteString(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data">`)
		buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
		buf.WriteString(`<input type="file" name="image" accept="image/*"/>`)
		buf.WriteString(`<button type="submit">Upload</button></form>`)
		if len(images) == 0 {
			buf.WriteString("<p>No images uploaded.</p></section>")
			return
		}
		buf.WriteString(`<ul class="image-list">`)
		for _, img := range images {
			buf.WriteString(`<li><img src="` + esc(img.URL) + `" alt="` + esc(img.Name) + `" width="160"/><code>`)
			buf.WriteString(esc(img.URL))
			buf.WriteString(`</code><form method="post" action="/admin/images/` + esc(img.Filename) + `/delete/">`)
			buf.WriteString(`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>`)
			buf.WriteString(`<button type="submit">Delete</button></form></li>`)
		}
		buf.WriteString("</ul></section>")
	})
}

func logoutForm(csrfToken string) string {
	return `<form method="post" action="/admin/logout/"><input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/><button type="submit">Log out</button></form>`
}
