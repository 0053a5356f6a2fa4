package content

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an article does not exist or is not
// published.
var ErrNotFound = errors.New("content: article not found")

// Issue pinpoints one violated constraint. Path is a dot-delimited pointer
// into the submitted payload, e.g. "content_blocks.3.url".
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a submission so the
// caller can fix them in one round trip.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("content: validation failed: %s: %s", e.Issues[0].Path, e.Issues[0].Message)
	}
	return fmt.Sprintf("content: validation failed: %d issues", len(e.Issues))
}
