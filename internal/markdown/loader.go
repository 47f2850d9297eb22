package markdown

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// LoaderConfig configures how Markdown files are discovered.
type LoaderConfig struct {
	// Pattern limits discovered files to those matching the glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// LoadParams provide call-specific overrides for pattern matching.
type LoadParams struct {
	Pattern   string
	Recursive *bool
}

// DocumentResult carries the parsed document along with the raw source.
type DocumentResult struct {
	Document *interfaces.Document
	Source   []byte
}

// Loader turns paths within an fs.FS into Markdown documents.
type Loader struct {
	fs        fs.FS
	pattern   string
	recursive bool
}

// NewLoader constructs a Loader over filesystem. Paths passed to the loader
// are slash separated and relative to the filesystem root.
func NewLoader(filesystem fs.FS, cfg LoaderConfig) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	return &Loader{
		fs:        filesystem,
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads and parses a single Markdown document.
func (l *Loader) LoadFile(ctx context.Context, name string) (*DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("markdown loader stat %s: %w", rel, err)
	}

	doc, err := BuildDocument(rel, data, info.ModTime())
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	doc.Checksum = sum[:]

	return &DocumentResult{Document: doc, Source: data}, nil
}

// LoadDirectory discovers Markdown files under dir and returns parsed
// documents ordered by path.
func (l *Loader) LoadDirectory(ctx context.Context, dir string, opts LoadParams) ([]*DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := cleanName(dir)
	if err != nil {
		return nil, err
	}

	recursive := l.recursive
	if opts.Recursive != nil {
		recursive = *opts.Recursive
	}
	pattern := strings.TrimSpace(opts.Pattern)
	if pattern == "" {
		pattern = l.pattern
	}

	var results []*DocumentResult
	walkErr := fs.WalkDir(l.fs, root, func(current string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if current != root && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !matchesPattern(current, pattern) {
			return nil
		}

		result, err := l.LoadFile(ctx, current)
		if err != nil {
			return err
		}
		results = append(results, result)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Document.FilePath < results[j].Document.FilePath
	})
	return results, nil
}

// cleanName converts a user supplied path into an fs.FS name.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		return "", fmt.Errorf("markdown loader: invalid path %q", name)
	}
	return name, nil
}

func matchesPattern(name, pattern string) bool {
	pattern = strings.ReplaceAll(pattern, "**/", "")
	target := name
	if !strings.Contains(pattern, "/") {
		target = path.Base(name)
	}
	match, err := path.Match(pattern, target)
	return err == nil && match
}
