package posts

import (
	"context"
	"errors"
	"io/fs"
	"sort"
	"strings"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Service loads post files and turns them into rendered posts.
type Service interface {
	Load(ctx context.Context, path string) (*Post, error)
	LoadAll(ctx context.Context, dir string, opts ListOptions) ([]*Post, error)
	Build(ctx context.Context, doc *interfaces.Document) (*Post, error)
}

// ListOptions tunes LoadAll.
type ListOptions struct {
	IncludeDrafts bool
	// Pattern overrides the loader glob for this call.
	Pattern string
}

// URLResolver builds canonical URLs for named routes.
type URLResolver interface {
	URL(route string, params map[string]any) (string, error)
	Path(route string, params map[string]any) (string, error)
}

// Config controls how posts are assembled.
type Config struct {
	SiteName     string
	BaseURL      string
	RouteName    string
	SectionLabel string
	SectionPath  string
	// WordsPerMinute drives ReadingTime. Defaults to 200.
	WordsPerMinute int
	// ExcerptLength caps derived excerpts in runes. Zero keeps the whole paragraph.
	ExcerptLength          int
	ValidateStructuredData bool
	Pattern                string
	Recursive              bool
	Parser                 interfaces.ParseOptions
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger overrides the logger used for load events.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParser overrides the CommonMark renderer used for "commonmark" posts.
func WithParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithResolver sets the route resolver for canonical URLs. Without one, post
// paths are built as SectionPath + "/" + slug.
func WithResolver(resolver URLResolver) ServiceOption {
	return func(s *service) {
		if resolver != nil {
			s.resolver = resolver
		}
	}
}

// WithDeriver overrides the breadcrumb deriver.
func WithDeriver(deriver *breadcrumbs.Deriver) ServiceOption {
	return func(s *service) {
		if deriver != nil {
			s.deriver = deriver
		}
	}
}

type service struct {
	cfg      Config
	loader   *markdown.Loader
	parser   interfaces.MarkdownParser
	resolver URLResolver
	deriver  *breadcrumbs.Deriver
	logger   interfaces.Logger
}

// NewService constructs a posts service reading files from filesystem.
func NewService(filesystem fs.FS, cfg Config, opts ...ServiceOption) Service {
	if cfg.WordsPerMinute <= 0 {
		cfg.WordsPerMinute = 200
	}
	if strings.TrimSpace(cfg.SectionLabel) == "" {
		cfg.SectionLabel = "Blog"
	}
	cfg.SectionPath = breadcrumbs.NormalizePath(cfg.SectionPath)

	s := &service{
		cfg: cfg,
		loader: markdown.NewLoader(filesystem, markdown.LoaderConfig{
			Pattern:   cfg.Pattern,
			Recursive: cfg.Recursive,
		}),
		parser:  markdown.NewGoldmarkParser(cfg.Parser),
		deriver: breadcrumbs.NewDeriver(breadcrumbs.Config{SiteRoot: cfg.BaseURL, ShowHome: true}),
		logger:  logging.PostsLogger(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and builds a single post.
func (s *service) Load(ctx context.Context, path string) (*Post, error) {
	logger := logging.WithPostContext(s.logger.WithContext(ctx), path, "")

	result, err := s.loader.LoadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = &NotFoundError{Path: path}
		}
		logger.Error("posts.load.failed", "error", err)
		return nil, err
	}

	post, err := s.Build(ctx, result.Document)
	if err != nil {
		logger.Error("posts.build.failed", "error", err)
		return nil, err
	}
	logging.WithPostContext(logger, "", post.Slug).Info("posts.load.success", "words", post.WordCount)
	return post, nil
}

// LoadAll builds every post under dir, newest first. Posts sharing a date
// are ordered by slug.
func (s *service) LoadAll(ctx context.Context, dir string, opts ListOptions) ([]*Post, error) {
	logger := s.logger.WithContext(ctx)

	results, err := s.loader.LoadDirectory(ctx, dir, markdown.LoadParams{Pattern: opts.Pattern})
	if err != nil {
		logger.Error("posts.load_all.failed", "dir", dir, "error", err)
		return nil, err
	}

	posts := make([]*Post, 0, len(results))
	drafts := 0
	for _, result := range results {
		if result.Document.FrontMatter.Draft && !opts.IncludeDrafts {
			drafts++
			continue
		}
		post, err := s.Build(ctx, result.Document)
		if err != nil {
			logging.WithPostContext(logger, result.Document.FilePath, "").Error("posts.build.failed", "error", err)
			return nil, err
		}
		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PublishedAt.Equal(posts[j].PublishedAt) {
			return posts[i].PublishedAt.After(posts[j].PublishedAt)
		}
		return posts[i].Slug < posts[j].Slug
	})

	logger.Info("posts.load_all.success", "dir", dir, "count", len(posts), "drafts_skipped", drafts)
	return posts, nil
}
