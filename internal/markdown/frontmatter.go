package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and the Markdown body from source. YAML
// ("---") and TOML ("+++") delimiters are accepted. Files without a front
// matter block yield a zero FrontMatter and the full source as body.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta interfaces.FrontMatter

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return normalizeFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from a file path, its raw
// content and modification time.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

func normalizeFrontMatter(meta interfaces.FrontMatter) interfaces.FrontMatter {
	meta.Title = strings.TrimSpace(meta.Title)
	meta.Slug = strings.TrimSpace(meta.Slug)
	meta.Summary = strings.TrimSpace(meta.Summary)
	meta.Author = strings.TrimSpace(meta.Author)
	meta.Image = strings.TrimSpace(meta.Image)
	meta.Format = strings.ToLower(strings.TrimSpace(meta.Format))
	if meta.Format == "" {
		meta.Format = interfaces.FormatBlocks
	}

	tags := make([]string, 0, len(meta.Tags))
	seen := make(map[string]struct{}, len(meta.Tags))
	for _, tag := range meta.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	meta.Tags = tags

	var crumbs []interfaces.BreadcrumbEntry
	for _, entry := range meta.Breadcrumbs {
		entry.Label = strings.TrimSpace(entry.Label)
		entry.Href = strings.TrimSpace(entry.Href)
		if entry.Label != "" {
			crumbs = append(crumbs, entry)
		}
	}
	meta.Breadcrumbs = crumbs

	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return meta
}
