package sitecontent

import "github.com/goliatone/go-sitecontent/internal/runtimeconfig"

var (
	ErrSiteBaseURLRequired        = runtimeconfig.ErrSiteBaseURLRequired
	ErrSiteBaseURLInvalid         = runtimeconfig.ErrSiteBaseURLInvalid
	ErrLabelCaseInvalid           = runtimeconfig.ErrLabelCaseInvalid
	ErrRouteGroupRequired         = runtimeconfig.ErrRouteGroupRequired
	ErrPostRouteMissing           = runtimeconfig.ErrPostRouteMissing
	ErrMarkdownContentDirRequired = runtimeconfig.ErrMarkdownContentDirRequired
	ErrWordsPerMinuteInvalid      = runtimeconfig.ErrWordsPerMinuteInvalid
	ErrExcerptLengthInvalid       = runtimeconfig.ErrExcerptLengthInvalid
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	SiteConfig           = runtimeconfig.SiteConfig
	BreadcrumbsConfig    = runtimeconfig.BreadcrumbsConfig
	RoutesConfig         = runtimeconfig.RoutesConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	PostsConfig          = runtimeconfig.PostsConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
