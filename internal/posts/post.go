package posts

import (
	"time"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/richtext"
	"github.com/goliatone/go-sitecontent/internal/structureddata"
)

// Post is a rendered blog post ready for a template.
type Post struct {
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary,omitempty"`
	Author       string    `json:"author,omitempty"`
	Image        string    `json:"image,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	Format       string    `json:"format"`
	Draft        bool      `json:"draft,omitempty"`
	SourcePath   string    `json:"source_path"`
	Checksum     string    `json:"checksum"`
	Path         string    `json:"path"`
	CanonicalURL string    `json:"canonical_url"`
	PublishedAt  time.Time `json:"published_at"`
	UpdatedAt    time.Time `json:"updated_at,omitzero"`

	Blocks      []richtext.Block    `json:"blocks"`
	TOC         []richtext.TOCEntry `json:"toc,omitempty"`
	HTML        string              `json:"html"`
	Excerpt     string              `json:"excerpt,omitempty"`
	WordCount   int                 `json:"word_count"`
	ReadingTime time.Duration       `json:"reading_time"`

	Breadcrumbs    breadcrumbs.Trail             `json:"breadcrumbs"`
	BreadcrumbData structureddata.BreadcrumbList `json:"-"`
	Article        structureddata.Article        `json:"-"`
}

// ReadingMinutes returns ReadingTime rounded up to whole minutes.
func (p *Post) ReadingMinutes() int {
	if p == nil || p.ReadingTime <= 0 {
		return 0
	}
	return int((p.ReadingTime + time.Minute - 1) / time.Minute)
}

// StructuredData returns the JSON-LD payloads describing the post.
func (p *Post) StructuredData() []any {
	return []any{p.BreadcrumbData, p.Article}
}

// JSONLD renders the post's structured data as script elements.
func (p *Post) JSONLD() (string, error) {
	return structureddata.Script(p.StructuredData()...)
}
