package interfaces

import (
	"time"
)

// MarkdownParser converts raw Markdown bytes into HTML. Posts that opt into
// full CommonMark rendering go through this contract instead of the block
// parser.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises CommonMark rendering.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// Document is a Markdown file with its parsed front matter and raw body.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	LastModified time.Time
	// Checksum is the SHA-256 digest of the original file content.
	Checksum []byte
}

// Format values accepted in the front matter "format" key.
const (
	FormatBlocks     = "blocks"
	FormatCommonMark = "commonmark"
)

// FrontMatter models the metadata block at the top of a blog post file.
type FrontMatter struct {
	Title       string            `yaml:"title" json:"title"`
	Slug        string            `yaml:"slug" json:"slug"`
	Summary     string            `yaml:"summary" json:"summary"`
	Author      string            `yaml:"author" json:"author"`
	Image       string            `yaml:"image" json:"image"`
	Tags        []string          `yaml:"tags" json:"tags"`
	Date        time.Time         `yaml:"date" json:"date"`
	Updated     time.Time         `yaml:"updated" json:"updated"`
	Draft       bool              `yaml:"draft" json:"draft"`
	Format      string            `yaml:"format" json:"format"`
	Breadcrumbs []BreadcrumbEntry `yaml:"breadcrumbs" json:"breadcrumbs"`
	Custom      map[string]any    `yaml:",inline" json:"custom"`
}

// BreadcrumbEntry is a front matter override for a post's breadcrumb trail.
type BreadcrumbEntry struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href,omitempty"`
}
