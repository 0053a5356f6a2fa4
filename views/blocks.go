package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gerayyy/qingflow-geo-web/content"
)

// Blocks projects an article's content blocks to HTML, one node per block
// in submission order. Dispatch is an exhaustive switch over the block
// discriminant; unknown kinds project to nothing, because rendering must
// never fail on already-persisted data.
func Blocks(blocks []content.Block) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		for _, b := range blocks {
			renderBlock(&buf, b)
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderBlock(buf *bytes.Buffer, b content.Block) {
	switch b.Type {
	case content.BlockHeading:
		buf.WriteString(`<h2 class="article-heading">`)
		buf.WriteString(esc(b.Text))
		buf.WriteString("</h2>")

	case content.BlockParagraph:
		buf.WriteString(`<p class="article-paragraph">`)
		buf.WriteString(esc(b.Text))
		buf.WriteString("</p>")

	case content.BlockImage:
		src := safeURL(b.URL)
		if src == "" {
			return
		}
		alt := b.Alt
		if alt == "" {
			alt = "Article image"
		}
		buf.WriteString(`<figure class="article-figure"><img src="` + src + `" alt="` + esc(alt) + `" loading="lazy" decoding="async"/>`)
		if b.Caption != "" {
			buf.WriteString("<figcaption>")
			buf.WriteString(esc(b.Caption))
			buf.WriteString("</figcaption>")
		}
		buf.WriteString("</figure>")

	case content.BlockList:
		buf.WriteString(`<ul class="article-list">`)
		for _, item := range b.Items {
			buf.WriteString("<li>")
			buf.WriteString(esc(item))
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul>")

	case content.BlockTable:
		buf.WriteString(`<div class="article-table"><table><thead><tr>`)
		for _, h := range b.Headers {
			buf.WriteString("<th>")
			buf.WriteString(esc(h))
			buf.WriteString("</th>")
		}
		buf.WriteString("</tr></thead><tbody>")
		// Rows may disagree with the header count; render the cells that
		// exist rather than erroring.
		for _, row := range b.Rows {
			buf.WriteString("<tr>")
			for _, cell := range row {
				buf.WriteString("<td>")
				buf.WriteString(esc(cell))
				buf.WriteString("</td>")
			}
			buf.WriteString("</tr>")
		}
		buf.WriteString("</tbody></table></div>")
	}
}

// KeyTakeaways renders the geo-enhancement takeaway list, or nothing when
// the section is absent or empty.
func KeyTakeaways(takeaways []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(takeaways) == 0 {
			return nil
		}
		var buf bytes.Buffer
		buf.WriteString(`<aside class="key-takeaways"><h2>Key takeaways</h2><ul>`)
		for _, t := range takeaways {
			buf.WriteString("<li>")
			buf.WriteString(esc(t))
			buf.WriteString("</li>")
		}
		buf.WriteString("</ul></aside>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// FAQSection renders the human-readable FAQ list, or nothing when absent.
// The machine-readable counterpart is FAQJsonLD.
func FAQSection(faqs []content.FAQ) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(faqs) == 0 {
			return nil
		}
		var buf bytes.Buffer
		buf.WriteString(`<section class="faq"><h2>Frequently asked questions</h2>`)
		for _, f := range faqs {
			buf.WriteString("<details><summary>")
			buf.WriteString(esc(f.Question))
			buf.WriteString("</summary><p>")
			buf.WriteString(esc(f.Answer))
			buf.WriteString("</p></details>")
		}
		buf.WriteString("</section>")
		_, err := w.Write(buf.Bytes())
		return err
	})
}
