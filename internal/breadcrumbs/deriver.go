package breadcrumbs

import "github.com/goliatone/go-sitecontent/internal/structureddata"

// Config holds site wide defaults applied by a Deriver.
type Config struct {
	SiteRoot  string
	ShowHome  bool
	HomeLabel string
	LabelCase LabelCase
}

// Deriver binds Derive and StructuredData to a site's configuration.
type Deriver struct {
	cfg Config
}

// NewDeriver returns a Deriver using cfg for unset options.
func NewDeriver(cfg Config) *Deriver {
	return &Deriver{cfg: cfg}
}

// Derive applies the site defaults to opts and derives the trail for path.
// Explicit values in opts win over the configuration.
func (d *Deriver) Derive(path string, opts Options) Trail {
	if opts.ShowHome == nil {
		show := d.cfg.ShowHome
		opts.ShowHome = &show
	}
	if opts.HomeLabel == "" {
		opts.HomeLabel = d.cfg.HomeLabel
	}
	if opts.LabelCase == "" {
		opts.LabelCase = d.cfg.LabelCase
	}
	return Derive(path, opts)
}

// StructuredData builds the BreadcrumbList for trail under the configured
// site root.
func (d *Deriver) StructuredData(trail Trail) structureddata.BreadcrumbList {
	return structuredData(trail, d.cfg.SiteRoot, Options{HomeLabel: d.cfg.HomeLabel}.homeLabel())
}
