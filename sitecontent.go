package sitecontent

import (
	"context"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	postscmd "github.com/goliatone/go-sitecontent/internal/commands/posts"
	"github.com/goliatone/go-sitecontent/internal/di"
	"github.com/goliatone/go-sitecontent/internal/posts"
	"github.com/goliatone/go-sitecontent/internal/richtext"
	"github.com/goliatone/go-sitecontent/internal/structureddata"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Block is one structural unit of parsed content.
type Block = richtext.Block

// Span is an inline fragment of a block.
type Span = richtext.Span

// TOCEntry is one heading of a table of contents.
type TOCEntry = richtext.TOCEntry

// Crumb is one entry of a breadcrumb trail.
type Crumb = breadcrumbs.Crumb

// Trail is a derived breadcrumb trail.
type Trail = breadcrumbs.Trail

// BreadcrumbItem is a caller supplied crumb.
type BreadcrumbItem = breadcrumbs.Item

// BreadcrumbOptions tunes DeriveBreadcrumbs.
type BreadcrumbOptions = breadcrumbs.Options

// BreadcrumbList is the schema.org BreadcrumbList JSON-LD value.
type BreadcrumbList = structureddata.BreadcrumbList

// Post exports the rendered post DTO.
type Post = posts.Post

// PostService exports the posts service contract.
type PostService = posts.Service

// ListOptions exports the posts listing options.
type ListOptions = posts.ListOptions

// Option overrides module wiring.
type Option = di.Option

var (
	WithLoggerProvider = di.WithLoggerProvider
	WithFS             = di.WithFS
	WithMarkdownParser = di.WithMarkdownParser
	WithURLResolver    = di.WithURLResolver
	WithPostsService   = di.WithPostsService
)

// Module represents the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Posts returns the configured posts service.
func (m *Module) Posts() PostService {
	return m.container.PostsService()
}

// LoggerProvider returns the active logger provider, nil when logging is off.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.container.LoggerProvider()
}

// RenderPost loads the post stored at path through the render command, so
// the call is validated, time-bounded and logged like any other command.
func (m *Module) RenderPost(ctx context.Context, path string) (*Post, error) {
	var out *Post
	handler := m.container.RenderPostHandler(func(_ context.Context, post *posts.Post) error {
		out = post
		return nil
	})
	if err := handler.Execute(ctx, postscmd.RenderPostCommand{Path: path}); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderDirectory builds every post below dir, newest first.
func (m *Module) RenderDirectory(ctx context.Context, dir string, opts ListOptions) ([]*Post, error) {
	var out []*Post
	handler := m.container.RenderDirectoryHandler(func(_ context.Context, post *posts.Post) error {
		out = append(out, post)
		return nil
	})
	cmd := postscmd.RenderDirectoryCommand{
		Directory:     dir,
		IncludeDrafts: opts.IncludeDrafts,
		Pattern:       opts.Pattern,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	return out, nil
}

// Breadcrumbs derives the trail for path with the site defaults applied,
// along with its BreadcrumbList.
func (m *Module) Breadcrumbs(ctx context.Context, path string, opts BreadcrumbOptions) (Trail, BreadcrumbList, error) {
	var (
		trail Trail
		data  BreadcrumbList
	)
	handler := m.container.DeriveBreadcrumbsHandler(func(_ context.Context, t breadcrumbs.Trail, d structureddata.BreadcrumbList) error {
		trail, data = t, d
		return nil
	})
	cmd := postscmd.DeriveBreadcrumbsCommand{
		Path:      path,
		ShowHome:  opts.ShowHome,
		HomeLabel: opts.HomeLabel,
		LabelCase: opts.LabelCase,
		Items:     opts.Items,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return Trail{}, BreadcrumbList{}, err
	}
	return trail, data, nil
}

// Parse turns lightweight Markdown into blocks.
func Parse(raw string) []Block {
	return richtext.Parse(raw)
}

// ProcessInline splits text into plain, bold and link spans.
func ProcessInline(text string) []Span {
	return richtext.ProcessInline(text)
}

// RenderHTML renders blocks as an HTML fragment.
func RenderHTML(blocks []Block) (string, error) {
	return richtext.RenderHTML(blocks)
}

// DeriveBreadcrumbs builds the breadcrumb trail for path.
func DeriveBreadcrumbs(path string, opts BreadcrumbOptions) Trail {
	return breadcrumbs.Derive(path, opts)
}

// BreadcrumbStructuredData builds the BreadcrumbList for trail. Home is
// always the first item, whether or not the trail displays it.
func BreadcrumbStructuredData(trail Trail, siteRoot string) BreadcrumbList {
	return breadcrumbs.StructuredData(trail, siteRoot)
}
