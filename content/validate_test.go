package content

import (
	"errors"
	"testing"
)

func validRequest() PublishRequest {
	return PublishRequest{
		Slug:    "go-concurrency-patterns",
		Title:   "Go Concurrency Patterns",
		Summary: "A tour of common concurrency patterns.",
		Status:  StatusPublished,
		Seo: &SeoMeta{
			Title:       "Go Concurrency Patterns",
			Description: "Channels, pipelines, and cancellation.",
		},
		GeoEnhancement: &GeoEnhancement{
			KeyTakeaways: []string{"Channels coordinate goroutines."},
			FAQs: []FAQ{
				{Question: "What is a goroutine?", Answer: "A lightweight thread managed by the Go runtime."},
			},
		},
		ContentBlocks: []Block{
			{Type: BlockHeading, Text: "Pipelines"},
			{Type: BlockParagraph, Text: "A pipeline is a series of stages."},
			{Type: BlockImage, URL: "https://example.com/pipeline.png", Alt: "Pipeline diagram"},
			{Type: BlockList, Items: []string{"fan-out", "fan-in"}},
			{Type: BlockTable, Headers: []string{"Pattern", "Use"}, Rows: [][]string{{"fan-out", "parallel work"}}},
		},
	}
}

func issuePaths(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	paths := make(map[string]string, len(verr.Issues))
	for _, is := range verr.Issues {
		paths[is.Path] = is.Message
	}
	return paths
}

func TestValidateAccepts(t *testing.T) {
	req := validRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestValidateAcceptsWithoutOptionalSections(t *testing.T) {
	req := validRequest()
	req.Seo = nil
	req.GeoEnhancement = nil
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestValidateRequiresTopLevelFields(t *testing.T) {
	req := validRequest()
	req.Slug = ""
	req.Title = ""
	req.Summary = ""

	paths := issuePaths(t, req.Validate())
	for _, want := range []string{"slug", "title", "summary"} {
		if _, ok := paths[want]; !ok {
			t.Errorf("missing issue for %q, got %v", want, paths)
		}
	}
}

func TestValidateRequiresContentBlocks(t *testing.T) {
	req := validRequest()
	req.ContentBlocks = nil

	paths := issuePaths(t, req.Validate())
	if _, ok := paths["content_blocks"]; !ok {
		t.Errorf("missing issue for absent content_blocks, got %v", paths)
	}

	// An explicitly empty array is a present field and stays valid.
	req.ContentBlocks = []Block{}
	if err := req.Validate(); err != nil {
		t.Fatalf("empty content_blocks should validate: %v", err)
	}
}

func TestValidateRejectsBadStatus(t *testing.T) {
	req := validRequest()
	req.Status = "pending"

	paths := issuePaths(t, req.Validate())
	if _, ok := paths["status"]; !ok {
		t.Errorf("missing issue for status, got %v", paths)
	}
}

func TestValidateRejectsUnknownBlockType(t *testing.T) {
	req := validRequest()
	req.ContentBlocks = append(req.ContentBlocks, Block{Type: "video", URL: "https://example.com/v.mp4"})

	paths := issuePaths(t, req.Validate())
	if _, ok := paths["content_blocks.5.type"]; !ok {
		t.Errorf("missing issue for unknown block type, got %v", paths)
	}
}

func TestValidateRejectsBadImageURL(t *testing.T) {
	req := validRequest()
	req.ContentBlocks[2].URL = "not a url"

	paths := issuePaths(t, req.Validate())
	if _, ok := paths["content_blocks.2.url"]; !ok {
		t.Errorf("missing issue for image url, got %v", paths)
	}
}

func TestValidateRejectsMissingBlockFields(t *testing.T) {
	req := validRequest()
	req.ContentBlocks = []Block{
		{Type: BlockHeading},
		{Type: BlockList},
		{Type: BlockTable, Headers: []string{"a"}},
	}

	paths := issuePaths(t, req.Validate())
	for _, want := range []string{"content_blocks.0.text", "content_blocks.1.items", "content_blocks.2.rows"} {
		if _, ok := paths[want]; !ok {
			t.Errorf("missing issue for %q, got %v", want, paths)
		}
	}
}

func TestValidateAllowsEmptyListItems(t *testing.T) {
	req := validRequest()
	req.ContentBlocks = []Block{{Type: BlockList, Items: []string{}}}
	if err := req.Validate(); err != nil {
		t.Fatalf("empty (non-nil) items should validate: %v", err)
	}
}

func TestValidateCollectsEveryViolation(t *testing.T) {
	req := validRequest()
	req.Slug = ""
	req.Status = "bogus"
	req.Seo.Title = ""
	req.GeoEnhancement.FAQs[0].Answer = ""
	req.ContentBlocks[0].Text = ""
	req.ContentBlocks[2].URL = ""

	var verr *ValidationError
	if !errors.As(req.Validate(), &verr) {
		t.Fatal("expected ValidationError")
	}
	if len(verr.Issues) != 6 {
		t.Errorf("Issues = %d, want 6: %v", len(verr.Issues), verr.Issues)
	}
	paths := issuePaths(t, verr)
	for _, want := range []string{"slug", "status", "seo.title", "geo_enhancement.faqs.0.answer", "content_blocks.0.text", "content_blocks.2.url"} {
		if _, ok := paths[want]; !ok {
			t.Errorf("missing issue for %q, got %v", want, paths)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	req := validRequest()
	req.Slug = ""
	err := req.Validate()
	if err == nil || err.Error() == "" {
		t.Fatal("expected a descriptive error")
	}
}
