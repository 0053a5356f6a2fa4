package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/gerayyy/qingflow-geo-web/content"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return sb.String()
}

func TestBlocksRendersEachKind(t *testing.T) {
	blocks := []content.Block{
		{Type: content.BlockHeading, Text: "Section"},
		{Type: content.BlockParagraph, Text: "Some prose."},
		{Type: content.BlockImage, URL: "https://example.com/pic.jpg", Alt: "A picture", Caption: "Figure 1"},
		{Type: content.BlockList, Items: []string{"first", "second"}},
		{Type: content.BlockTable, Headers: []string{"Name", "Value"}, Rows: [][]string{{"a", "1"}}},
	}

	html := render(t, Blocks(blocks))

	for _, want := range []string{
		"<h2 class=\"article-heading\">Section</h2>",
		"<p class=\"article-paragraph\">Some prose.</p>",
		`src="https://example.com/pic.jpg"`,
		`alt="A picture"`,
		"<figcaption>Figure 1</figcaption>",
		"<li>first</li><li>second</li>",
		"<th>Name</th><th>Value</th>",
		"<td>a</td><td>1</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q\n%s", want, html)
		}
	}

	// Blocks render in submission order.
	if strings.Index(html, "<h2") > strings.Index(html, "<p") {
		t.Error("heading should precede paragraph")
	}
}

func TestBlocksEscapesText(t *testing.T) {
	html := render(t, Blocks([]content.Block{
		{Type: content.BlockParagraph, Text: `<script>alert("x")</script>`},
	}))
	if strings.Contains(html, "<script>") {
		t.Errorf("text was not escaped: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped entity in %s", html)
	}
}

func TestBlocksSkipsUnknownKind(t *testing.T) {
	html := render(t, Blocks([]content.Block{
		{Type: "h3", Text: "nope"},
		{Type: content.BlockParagraph, Text: "kept"},
	}))
	if strings.Contains(html, "nope") {
		t.Errorf("unknown block kind should render nothing: %s", html)
	}
	if !strings.Contains(html, "kept") {
		t.Errorf("known blocks should still render: %s", html)
	}
}

func TestBlocksImageDefaults(t *testing.T) {
	html := render(t, Blocks([]content.Block{
		{Type: content.BlockImage, URL: "https://example.com/a.png"},
	}))
	if !strings.Contains(html, `alt="Article image"`) {
		t.Errorf("missing alt fallback: %s", html)
	}
	if strings.Contains(html, "<figcaption>") {
		t.Errorf("empty caption should render no figcaption: %s", html)
	}
}

func TestBlocksImageRejectsUnsafeURL(t *testing.T) {
	for _, url := range []string{"javascript:alert(1)", "data:text/html,x", ""} {
		html := render(t, Blocks([]content.Block{
			{Type: content.BlockImage, URL: url},
		}))
		if html != "" {
			t.Errorf("url %q: expected no output, got %s", url, html)
		}
	}
}

func TestBlocksTableShortRows(t *testing.T) {
	html := render(t, Blocks([]content.Block{
		{Type: content.BlockTable, Headers: []string{"A", "B", "C"}, Rows: [][]string{{"only"}}},
	}))
	if !strings.Contains(html, "<tr><td>only</td></tr>") {
		t.Errorf("short rows should render their cells as-is: %s", html)
	}
}

func TestKeyTakeawaysEmpty(t *testing.T) {
	if got := render(t, KeyTakeaways(nil)); got != "" {
		t.Errorf("empty takeaways should render nothing, got %s", got)
	}
}

func TestFAQSection(t *testing.T) {
	html := render(t, FAQSection([]content.FAQ{
		{Question: "Why?", Answer: "Because."},
	}))
	if !strings.Contains(html, "<summary>Why?</summary>") || !strings.Contains(html, "<p>Because.</p>") {
		t.Errorf("unexpected faq markup: %s", html)
	}

	if got := render(t, FAQSection(nil)); got != "" {
		t.Errorf("empty faq list should render nothing, got %s", got)
	}
}
