package breadcrumbs

import "strings"

// DefaultHomeLabel is the label of the synthetic root crumb.
const DefaultHomeLabel = "Home"

// Item is a caller supplied crumb used instead of the path derived trail.
// An empty Href makes the crumb non-navigable.
type Item struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
}

// Crumb is one entry of a rendered trail. The last crumb represents the
// current page.
type Crumb struct {
	Label  string `json:"label"`
	Href   string `json:"href,omitempty"`
	IsLast bool   `json:"is_last"`
}

// Navigable reports whether the crumb should render as a link.
func (c Crumb) Navigable() bool {
	return c.Href != "" && !c.IsLast
}

// Trail is the breadcrumb navigation for a page. Path is the normalised path
// the trail was derived for.
type Trail struct {
	Path   string  `json:"path"`
	Crumbs []Crumb `json:"crumbs"`
}

// Empty reports whether there is nothing to render.
func (t Trail) Empty() bool {
	return len(t.Crumbs) == 0
}

// Options tunes Derive.
type Options struct {
	// Items replaces the derived trail when non-empty. ShowHome is ignored
	// in that case.
	Items []Item
	// ShowHome prepends a Home crumb to derived trails. Nil means true.
	ShowHome *bool
	// HomeLabel overrides DefaultHomeLabel.
	HomeLabel string
	// LabelCase defaults to LabelCaseSentence.
	LabelCase LabelCase
}

func (o Options) showHome() bool {
	return o.ShowHome == nil || *o.ShowHome
}

func (o Options) homeLabel() string {
	if label := strings.TrimSpace(o.HomeLabel); label != "" {
		return label
	}
	return DefaultHomeLabel
}

// Segments splits a URL path on "/" and drops empty segments, so "", "/",
// "//a//b/" and "/a/b" are all handled. Query strings and fragments are
// stripped first.
func Segments(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// NormalizePath returns the canonical "/a/b" form of path.
func NormalizePath(path string) string {
	return "/" + strings.Join(Segments(path), "/")
}

// Derive builds the breadcrumb trail for path. It never fails: unusual paths
// are normalised by ignoring empty segments, and the root path yields an
// empty trail.
func Derive(path string, opts Options) Trail {
	normalized := NormalizePath(path)
	if len(opts.Items) > 0 {
		return Trail{Path: normalized, Crumbs: fromItems(opts.Items)}
	}

	segments := Segments(normalized)
	if len(segments) == 0 {
		return Trail{Path: normalized}
	}

	crumbs := make([]Crumb, 0, len(segments)+1)
	if opts.showHome() {
		crumbs = append(crumbs, Crumb{Label: opts.homeLabel(), Href: "/"})
	}
	for i, segment := range segments {
		crumb := Crumb{Label: Label(segment, opts.LabelCase)}
		if i == len(segments)-1 {
			crumb.IsLast = true
		} else {
			crumb.Href = "/" + strings.Join(segments[:i+1], "/")
		}
		crumbs = append(crumbs, crumb)
	}
	return Trail{Path: normalized, Crumbs: crumbs}
}

func fromItems(items []Item) []Crumb {
	crumbs := make([]Crumb, len(items))
	for i, item := range items {
		crumbs[i] = Crumb{
			Label:  item.Label,
			Href:   strings.TrimSpace(item.Href),
			IsLast: i == len(items)-1,
		}
	}
	return crumbs
}
