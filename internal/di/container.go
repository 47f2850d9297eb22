package di

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/commands"
	postscmd "github.com/goliatone/go-sitecontent/internal/commands/posts"
	"github.com/goliatone/go-sitecontent/internal/logging"
	logprovider "github.com/goliatone/go-sitecontent/internal/logging/provider"
	"github.com/goliatone/go-sitecontent/internal/markdown"
	"github.com/goliatone/go-sitecontent/internal/posts"
	"github.com/goliatone/go-sitecontent/internal/routes"
	"github.com/goliatone/go-sitecontent/internal/runtimeconfig"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Container wires module dependencies from a validated configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider    interfaces.LoggerProvider
	loggerProviderSet bool

	filesystem fs.FS
	parser     interfaces.MarkdownParser
	resolver   posts.URLResolver
	deriver    *breadcrumbs.Deriver
	postsSvc   posts.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
// Passing nil silences logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
		c.loggerProviderSet = true
	}
}

// WithFS overrides the filesystem posts are read from. Defaults to
// os.DirFS(Config.Markdown.ContentDir).
func WithFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.filesystem = filesystem
	}
}

// WithMarkdownParser overrides the goldmark parser used for CommonMark posts.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithURLResolver overrides the go-urlkit resolver built from Config.Routes.
func WithURLResolver(resolver posts.URLResolver) Option {
	return func(c *Container) {
		c.resolver = resolver
	}
}

// WithPostsService replaces the posts service entirely.
func WithPostsService(svc posts.Service) Option {
	return func(c *Container) {
		c.postsSvc = svc
	}
}

// NewContainer validates cfg and builds the services it describes.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	if err := c.configureRoutes(); err != nil {
		return nil, err
	}
	c.configureBreadcrumbs()
	c.configurePosts()

	logging.ModuleLogger(c.loggerProvider, "").Debug("container.configured",
		"base_url", cfg.Site.BaseURL,
		"content_dir", cfg.Markdown.ContentDir,
		"post_route", cfg.Posts.RouteName,
	)
	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProviderSet {
		return nil
	}
	provider, err := logprovider.New(c.Config.Logging)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureRoutes() error {
	if c.resolver != nil {
		return nil
	}
	resolver, err := routes.NewResolver(routes.Config{
		BaseURL: c.Config.Site.BaseURL,
		Group:   c.Config.Routes.Group,
		Paths:   c.Config.Routes.Paths,
	})
	if err != nil {
		return fmt.Errorf("configure routes: %w", err)
	}
	c.resolver = resolver
	return nil
}

func (c *Container) configureBreadcrumbs() {
	crumbs := c.Config.Breadcrumbs
	c.deriver = breadcrumbs.NewDeriver(breadcrumbs.Config{
		SiteRoot:  c.Config.Site.BaseURL,
		ShowHome:  crumbs.ShowHome,
		HomeLabel: crumbs.HomeLabel,
		LabelCase: breadcrumbs.LabelCase(strings.ToLower(strings.TrimSpace(crumbs.LabelCase))),
	})
}

func (c *Container) configurePosts() {
	if c.postsSvc != nil {
		return
	}
	if c.filesystem == nil {
		c.filesystem = os.DirFS(c.Config.Markdown.ContentDir)
	}

	md := c.Config.Markdown
	parseDefaults := interfaces.ParseOptions{
		Extensions: append([]string(nil), md.Parser.Extensions...),
		HardWraps:  md.Parser.HardWraps,
		SafeMode:   md.Parser.SafeMode,
	}
	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(parseDefaults)
	}

	p := c.Config.Posts
	c.postsSvc = posts.NewService(c.filesystem, posts.Config{
		SiteName:               c.Config.Site.Name,
		BaseURL:                c.Config.Site.BaseURL,
		RouteName:              p.RouteName,
		SectionLabel:           p.SectionLabel,
		SectionPath:            p.SectionPath,
		WordsPerMinute:         p.WordsPerMinute,
		ExcerptLength:          p.ExcerptLength,
		ValidateStructuredData: p.ValidateStructuredData,
		Pattern:                md.Pattern,
		Recursive:              md.Recursive,
		Parser:                 parseDefaults,
	},
		posts.WithLogger(logging.PostsLogger(c.loggerProvider)),
		posts.WithParser(c.parser),
		posts.WithResolver(c.resolver),
		posts.WithDeriver(c.deriver),
	)
}

// LoggerProvider returns the provider used by every module. It is nil when
// logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Deriver returns the breadcrumb deriver bound to the site configuration.
func (c *Container) Deriver() *breadcrumbs.Deriver {
	return c.deriver
}

// URLResolver returns the route resolver.
func (c *Container) URLResolver() posts.URLResolver {
	return c.resolver
}

// PostsService returns the configured posts service.
func (c *Container) PostsService() posts.Service {
	return c.postsSvc
}

// MarkdownParser returns the parser used for CommonMark bodies. It is nil
// when a custom posts service was injected.
func (c *Container) MarkdownParser() interfaces.MarkdownParser {
	return c.parser
}

// RenderPostHandler builds a command handler delivering posts to sink.
func (c *Container) RenderPostHandler(sink postscmd.PostSink, opts ...commands.HandlerOption[postscmd.RenderPostCommand]) *postscmd.RenderPostHandler {
	return postscmd.NewRenderPostHandler(c.postsSvc, sink, commands.CommandLogger(c.loggerProvider, "posts"), opts...)
}

// RenderDirectoryHandler builds a command handler delivering every post of a
// directory to sink.
func (c *Container) RenderDirectoryHandler(sink postscmd.PostSink, opts ...commands.HandlerOption[postscmd.RenderDirectoryCommand]) *postscmd.RenderDirectoryHandler {
	return postscmd.NewRenderDirectoryHandler(c.postsSvc, sink, commands.CommandLogger(c.loggerProvider, "posts"), opts...)
}

// DeriveBreadcrumbsHandler builds a command handler delivering trails to sink.
func (c *Container) DeriveBreadcrumbsHandler(sink postscmd.TrailSink, opts ...commands.HandlerOption[postscmd.DeriveBreadcrumbsCommand]) *postscmd.DeriveBreadcrumbsHandler {
	return postscmd.NewDeriveBreadcrumbsHandler(c.deriver, sink, commands.CommandLogger(c.loggerProvider, "breadcrumbs"), opts...)
}
