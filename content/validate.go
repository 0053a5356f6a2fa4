package content

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate checks the whole submission against the block schema and the
// top-level field rules. It is all-or-nothing: any violation fails the
// entire submission, and every violation is collected into one
// ValidationError rather than reported failure-by-failure.
func (r *PublishRequest) Validate() error {
	var issues []Issue

	issues = collect(issues, "", validation.ValidateStruct(r,
		validation.Field(&r.Slug, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Summary, validation.Required),
		validation.Field(&r.Status, validation.Required, validation.In(StatusDraft, StatusPublished, StatusArchived).Error("must be one of draft, published, archived")),
		validation.Field(&r.ContentBlocks, validation.NotNil),
	))

	if r.Seo != nil {
		issues = collect(issues, "seo", validation.ValidateStruct(r.Seo,
			validation.Field(&r.Seo.Title, validation.Required),
			validation.Field(&r.Seo.Description, validation.Required),
		))
	}

	if r.GeoEnhancement != nil {
		for i := range r.GeoEnhancement.FAQs {
			f := &r.GeoEnhancement.FAQs[i]
			issues = collect(issues, fmt.Sprintf("geo_enhancement.faqs.%d", i), validation.ValidateStruct(f,
				validation.Field(&f.Question, validation.Required),
				validation.Field(&f.Answer, validation.Required),
			))
		}
	}

	for i := range r.ContentBlocks {
		issues = collect(issues, fmt.Sprintf("content_blocks.%d", i), r.ContentBlocks[i].validate())
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func (b *Block) validate() error {
	switch b.Type {
	case BlockHeading, BlockParagraph:
		return validation.ValidateStruct(b,
			validation.Field(&b.Text, validation.Required),
		)
	case BlockImage:
		return validation.ValidateStruct(b,
			validation.Field(&b.URL, validation.Required, is.URL),
		)
	case BlockList:
		return validation.ValidateStruct(b,
			validation.Field(&b.Items, validation.NotNil),
		)
	case BlockTable:
		return validation.ValidateStruct(b,
			validation.Field(&b.Headers, validation.NotNil),
			validation.Field(&b.Rows, validation.NotNil),
		)
	default:
		return validation.Errors{"type": fmt.Errorf("unknown block type %q", b.Type)}
	}
}

// collect flattens an ozzo validation result into dot-delimited issues
// under prefix. Keys are sorted so issue order is deterministic.
func collect(issues []Issue, prefix string, err error) []Issue {
	if err == nil {
		return issues
	}
	verrs, ok := err.(validation.Errors)
	if !ok {
		return append(issues, Issue{Path: prefix, Message: err.Error()})
	}
	keys := make([]string, 0, len(verrs))
	for k := range verrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		issues = append(issues, Issue{Path: path, Message: verrs[k].Error()})
	}
	return issues
}
