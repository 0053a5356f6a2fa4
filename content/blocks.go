package content

// BlockType discriminates the closed set of content block kinds. The wire
// names match the webhook payload schema.
type BlockType string

const (
	BlockHeading   BlockType = "h2"
	BlockParagraph BlockType = "paragraph"
	BlockImage     BlockType = "image"
	BlockList      BlockType = "list"
	BlockTable     BlockType = "table"
)

// Block is one unit of an article's linear content. Exactly one variant's
// field set is populated, selected by Type; the struct is stored as an
// opaque JSON blob and never queried by sub-field.
type Block struct {
	Type BlockType `json:"type"`

	// h2, paragraph
	Text string `json:"text,omitempty"`

	// image
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
	Alt     string `json:"alt,omitempty"`

	// list
	Items []string `json:"items,omitempty"`

	// table
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
}
