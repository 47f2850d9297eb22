package posts

import (
	"errors"
	"fmt"
)

var (
	ErrSlugRequired      = errors.New("posts: slug could not be derived")
	ErrUnsupportedFormat = errors.New("posts: unsupported body format")
	ErrStructuredData    = errors.New("posts: structured data failed validation")
	ErrDocumentRequired  = errors.New("posts: document is required")
)

// NotFoundError is returned when a post file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post %q not found", e.Path)
}
