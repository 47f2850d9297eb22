package structureddata

import (
	"encoding/json"
	"strings"
	"time"
)

// TypeBlogPosting is the schema.org type emitted by Article.
const TypeBlogPosting = "BlogPosting"

// Article describes a blog post.
type Article struct {
	Headline      string
	Description   string
	URL           string
	Images        []string
	AuthorName    string
	PublisherName string
	PublisherLogo string
	Section       string
	Keywords      []string
	WordCount     int
	DatePublished time.Time
	DateModified  time.Time
}

// Type reports the schema.org type.
func (Article) Type() string { return TypeBlogPosting }

type thingJSON struct {
	Type string     `json:"@type"`
	ID   string     `json:"@id,omitempty"`
	Name string     `json:"name,omitempty"`
	URL  string     `json:"url,omitempty"`
	Logo *thingJSON `json:"logo,omitempty"`
}

// MarshalJSON renders the article as JSON-LD. Zero dates and empty optional
// fields are omitted; DateModified falls back to DatePublished.
func (a Article) MarshalJSON() ([]byte, error) {
	out := struct {
		Context          string     `json:"@context"`
		Type             string     `json:"@type"`
		Headline         string     `json:"headline"`
		Description      string     `json:"description,omitempty"`
		URL              string     `json:"url,omitempty"`
		MainEntityOfPage *thingJSON `json:"mainEntityOfPage,omitempty"`
		Image            []string   `json:"image,omitempty"`
		Author           *thingJSON `json:"author,omitempty"`
		Publisher        *thingJSON `json:"publisher,omitempty"`
		Section          string     `json:"articleSection,omitempty"`
		Keywords         string     `json:"keywords,omitempty"`
		WordCount        int        `json:"wordCount,omitempty"`
		DatePublished    string     `json:"datePublished,omitempty"`
		DateModified     string     `json:"dateModified,omitempty"`
	}{
		Context:     Context,
		Type:        TypeBlogPosting,
		Headline:    a.Headline,
		Description: a.Description,
		URL:         a.URL,
		Image:       a.Images,
		Section:     a.Section,
		Keywords:    strings.Join(a.Keywords, ", "),
		WordCount:   a.WordCount,
	}

	if a.URL != "" {
		out.MainEntityOfPage = &thingJSON{Type: "WebPage", ID: a.URL}
	}
	if a.AuthorName != "" {
		out.Author = &thingJSON{Type: "Person", Name: a.AuthorName}
	}
	if a.PublisherName != "" {
		out.Publisher = &thingJSON{Type: "Organization", Name: a.PublisherName}
		if a.PublisherLogo != "" {
			out.Publisher.Logo = &thingJSON{Type: "ImageObject", URL: a.PublisherLogo}
		}
	}
	if !a.DatePublished.IsZero() {
		out.DatePublished = formatDate(a.DatePublished)
		out.DateModified = out.DatePublished
	}
	if !a.DateModified.IsZero() {
		out.DateModified = formatDate(a.DateModified)
	}

	return json.Marshal(out)
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
