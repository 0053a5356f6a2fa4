package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/gerayyy/qingflow-geo-web/pagination"
)

// Pagination renders the page navigation for a listing view: the item
// range line, prev/next links, and the condensed page-number sequence.
// Renders nothing when there is at most one page.
func Pagination(v pagination.PageView, baseURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if v.TotalPages <= 1 {
			return nil
		}
		var buf bytes.Buffer
		buf.WriteString(`<nav class="pagination" aria-label="Pagination">`)
		fmt.Fprintf(&buf, `<p class="pagination-range">Showing %d&ndash;%d of %d</p>`, v.StartItem, v.EndItem, v.TotalItems)
		buf.WriteString(`<ul class="pagination-pages">`)

		if v.HasPrev() {
			buf.WriteString(`<li><a rel="prev" href="` + pageURL(baseURL, v.CurrentPage-1) + `">Previous</a></li>`)
		}
		for _, p := range v.Pages {
			if p == pagination.Ellipsis {
				buf.WriteString(`<li><span class="pagination-gap">&hellip;</span></li>`)
				continue
			}
			if p == v.CurrentPage {
				fmt.Fprintf(&buf, `<li><span class="pagination-current" aria-current="page">%d</span></li>`, p)
				continue
			}
			fmt.Fprintf(&buf, `<li><a href="%s">%d</a></li>`, pageURL(baseURL, p), p)
		}
		if v.HasNext() {
			buf.WriteString(`<li><a rel="next" href="` + pageURL(baseURL, v.CurrentPage+1) + `">Next</a></li>`)
		}

		buf.WriteString("</ul></nav>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// pageURL builds the link target for a page number. Page 1 is the bare
// base URL so the first page has a single canonical address.
func pageURL(baseURL string, page int) string {
	if page == 1 {
		return esc(baseURL)
	}
	return esc(fmt.Sprintf("%s?page=%d", baseURL, page))
}
