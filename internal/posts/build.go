package posts

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/richtext"
	"github.com/goliatone/go-sitecontent/internal/structureddata"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// maxHeadlineRunes is the longest headline search engines accept for articles.
const maxHeadlineRunes = 110

// Build assembles a Post from a loaded document.
func (s *service) Build(ctx context.Context, doc *interfaces.Document) (*Post, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta := doc.FrontMatter
	blocks := richtext.Parse(string(doc.Body))

	postSlug, err := deriveSlug(meta, doc.FilePath)
	if err != nil {
		return nil, err
	}
	title := meta.Title
	if title == "" {
		title = firstHeading(blocks)
	}
	if title == "" {
		title = breadcrumbs.Label(postSlug, breadcrumbs.LabelCaseSentence)
	}

	sitePath, canonical, err := s.locate(postSlug)
	if err != nil {
		return nil, err
	}

	html, err := s.render(doc.Body, meta.Format, blocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.FilePath, err)
	}

	published := meta.Date
	if published.IsZero() {
		published = doc.LastModified
	}

	words := richtext.WordCount(blocks)
	excerpt := meta.Summary
	if excerpt == "" {
		excerpt = richtext.Excerpt(blocks, s.cfg.ExcerptLength)
	}

	post := &Post{
		Slug:         postSlug,
		Title:        title,
		Summary:      meta.Summary,
		Author:       meta.Author,
		Image:        meta.Image,
		Tags:         meta.Tags,
		Format:       meta.Format,
		Draft:        meta.Draft,
		SourcePath:   doc.FilePath,
		Checksum:     hex.EncodeToString(doc.Checksum),
		Path:         sitePath,
		CanonicalURL: canonical,
		PublishedAt:  published.UTC(),
		UpdatedAt:    meta.Updated.UTC(),
		Blocks:       blocks,
		TOC:          richtext.TableOfContents(blocks),
		HTML:         html,
		Excerpt:      excerpt,
		WordCount:    words,
		ReadingTime:  readingTime(words, s.cfg.WordsPerMinute),
	}

	post.Breadcrumbs = s.trail(sitePath, title, meta.Breadcrumbs)
	post.BreadcrumbData = s.deriver.StructuredData(post.Breadcrumbs)
	post.Article = s.article(post)

	if s.cfg.ValidateStructuredData {
		if err := structureddata.ValidateAll(post.StructuredData()...); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrStructuredData, doc.FilePath, err)
		}
	}
	return post, nil
}

func deriveSlug(meta interfaces.FrontMatter, filePath string) (string, error) {
	base := strings.TrimSuffix(path.Base(filePath), path.Ext(filePath))
	for _, candidate := range []string{meta.Slug, meta.Title, base} {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		if normalized, err := slug.Normalize(candidate); err == nil && normalized != "" {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrSlugRequired, filePath)
}

func firstHeading(blocks []richtext.Block) string {
	for _, block := range blocks {
		if block.Kind == richtext.BlockHeading {
			return strings.TrimSpace(block.Text())
		}
	}
	return ""
}

// locate returns the rooted site path and canonical URL of a post.
func (s *service) locate(postSlug string) (string, string, error) {
	if s.resolver != nil && s.cfg.RouteName != "" {
		params := map[string]any{"slug": postSlug}
		canonical, err := s.resolver.URL(s.cfg.RouteName, params)
		if err != nil {
			return "", "", err
		}
		sitePath, err := s.resolver.Path(s.cfg.RouteName, params)
		if err != nil {
			return "", "", err
		}
		return sitePath, canonical, nil
	}

	sitePath := breadcrumbs.NormalizePath(s.cfg.SectionPath + "/" + postSlug)
	return sitePath, structureddata.AbsoluteURL(s.cfg.BaseURL, sitePath), nil
}

func (s *service) render(body []byte, format string, blocks []richtext.Block) (string, error) {
	switch format {
	case "", interfaces.FormatBlocks:
		return richtext.RenderHTML(blocks)
	case interfaces.FormatCommonMark:
		out, err := s.parser.Parse(body)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// trail uses front matter overrides when present. Otherwise the path trail is
// derived and its section and page crumbs are relabelled with the configured
// section label and the post title.
func (s *service) trail(sitePath, title string, overrides []interfaces.BreadcrumbEntry) breadcrumbs.Trail {
	if len(overrides) > 0 {
		items := make([]breadcrumbs.Item, len(overrides))
		for i, entry := range overrides {
			items[i] = breadcrumbs.Item{Label: entry.Label, Href: entry.Href}
		}
		return s.deriver.Derive(sitePath, breadcrumbs.Options{Items: items})
	}

	trail := s.deriver.Derive(sitePath, breadcrumbs.Options{})
	for i := range trail.Crumbs {
		crumb := &trail.Crumbs[i]
		switch {
		case crumb.IsLast:
			crumb.Label = title
		case crumb.Href == s.cfg.SectionPath && crumb.Href != "/":
			crumb.Label = s.cfg.SectionLabel
		}
	}
	return trail
}

func (s *service) article(post *Post) structureddata.Article {
	var images []string
	if post.Image != "" {
		images = []string{structureddata.AbsoluteURL(s.cfg.BaseURL, post.Image)}
	}
	return structureddata.Article{
		Headline:      truncateRunes(post.Title, maxHeadlineRunes),
		Description:   post.Excerpt,
		URL:           post.CanonicalURL,
		Images:        images,
		AuthorName:    post.Author,
		PublisherName: s.cfg.SiteName,
		Section:       s.cfg.SectionLabel,
		Keywords:      post.Tags,
		WordCount:     post.WordCount,
		DatePublished: post.PublishedAt,
		DateModified:  post.UpdatedAt,
	}
}

func readingTime(words, perMinute int) time.Duration {
	if words <= 0 || perMinute <= 0 {
		return 0
	}
	minutes := math.Ceil(float64(words) / float64(perMinute))
	return time.Duration(minutes) * time.Minute
}

func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
