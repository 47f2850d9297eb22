package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var ErrSiteBaseURLRequired = errors.New("sitecontent config: site base url is required")
var ErrSiteBaseURLInvalid = errors.New("sitecontent config: site base url must be an absolute http(s) url")
var ErrLabelCaseInvalid = errors.New("sitecontent config: breadcrumb label case is invalid")
var ErrRouteGroupRequired = errors.New("sitecontent config: route group is required")
var ErrPostRouteMissing = errors.New("sitecontent config: posts route is not declared in routes")
var ErrMarkdownContentDirRequired = errors.New("sitecontent config: markdown content directory is required")
var ErrWordsPerMinuteInvalid = errors.New("sitecontent config: words per minute must be positive")
var ErrExcerptLengthInvalid = errors.New("sitecontent config: excerpt length must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("sitecontent config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("sitecontent config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("sitecontent config: logging format is invalid")

// Config aggregates the settings of the site content module. Fields use
// simple types so host applications can fill them from any source.
type Config struct {
	Site        SiteConfig
	Breadcrumbs BreadcrumbsConfig
	Routes      RoutesConfig
	Markdown    MarkdownConfig
	Posts       PostsConfig
	Logging     LoggingConfig
}

// SiteConfig identifies the public site.
type SiteConfig struct {
	Name    string
	BaseURL string
	Locale  string
}

// BreadcrumbsConfig holds the site wide breadcrumb defaults.
type BreadcrumbsConfig struct {
	ShowHome  bool
	HomeLabel string
	// LabelCase is "sentence" or "title".
	LabelCase string
}

// RoutesConfig feeds the go-urlkit route manager. Paths maps route names to
// templates such as "/blog/:slug".
type RoutesConfig struct {
	Group string
	Paths map[string]string
}

// MarkdownConfig captures filesystem and parser behaviour for post files.
type MarkdownConfig struct {
	ContentDir string
	Pattern    string
	Recursive  bool
	Parser     MarkdownParserConfig
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownParserConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// PostsConfig controls how post files become pages.
type PostsConfig struct {
	RouteName              string
	SectionLabel           string
	SectionPath            string
	WordsPerMinute         int
	ExcerptLength          int
	ValidateStructuredData bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns defaults suitable for a local preview.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Name:    "Site",
			BaseURL: "http://localhost",
			Locale:  "en",
		},
		Breadcrumbs: BreadcrumbsConfig{
			ShowHome:  true,
			HomeLabel: "Home",
			LabelCase: "sentence",
		},
		Routes: RoutesConfig{
			Group: "frontend",
			Paths: map[string]string{
				"home": "/",
				"blog": "/blog",
				"post": "/blog/:slug",
			},
		},
		Markdown: MarkdownConfig{
			ContentDir: "content",
			Pattern:    "*.md",
			Recursive:  true,
		},
		Posts: PostsConfig{
			RouteName:              "post",
			SectionLabel:           "Blog",
			SectionPath:            "/blog",
			WordsPerMinute:         200,
			ExcerptLength:          160,
			ValidateStructuredData: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	base := strings.TrimSpace(cfg.Site.BaseURL)
	if base == "" {
		return ErrSiteBaseURLRequired
	}
	if err := validation.Validate(base, is.URL); err != nil || !isHTTPURL(base) {
		return fmt.Errorf("%w: %s", ErrSiteBaseURLInvalid, base)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Breadcrumbs.LabelCase)) {
	case "", "sentence", "title":
	default:
		return fmt.Errorf("%w: %s", ErrLabelCaseInvalid, cfg.Breadcrumbs.LabelCase)
	}
	if strings.TrimSpace(cfg.Routes.Group) == "" {
		return ErrRouteGroupRequired
	}
	if route := strings.TrimSpace(cfg.Posts.RouteName); route != "" {
		if _, ok := cfg.Routes.Paths[route]; !ok {
			return fmt.Errorf("%w: %s", ErrPostRouteMissing, route)
		}
	}
	if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}
	if cfg.Posts.WordsPerMinute <= 0 {
		return fmt.Errorf("%w: %d", ErrWordsPerMinuteInvalid, cfg.Posts.WordsPerMinute)
	}
	if cfg.Posts.ExcerptLength < 0 {
		return fmt.Errorf("%w: %d", ErrExcerptLengthInvalid, cfg.Posts.ExcerptLength)
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "", "console", "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
