package breadcrumbs

import (
	"strings"

	"github.com/goliatone/go-sitecontent/internal/structureddata"
)

// StructuredData converts a trail into a schema.org BreadcrumbList with
// absolute URLs under siteRoot.
//
// The list always starts with a Home entry at position 1, whether or not the
// visible trail shows one. A crumb linking to "/" is folded into that entry.
// The current page (last crumb without href) points at the trail path; any
// other crumb without href points at the trail path cut to its depth.
func StructuredData(trail Trail, siteRoot string) structureddata.BreadcrumbList {
	return structuredData(trail, siteRoot, DefaultHomeLabel)
}

func structuredData(trail Trail, siteRoot, homeLabel string) structureddata.BreadcrumbList {
	for _, crumb := range trail.Crumbs {
		if crumb.Href == "/" && crumb.Label != "" {
			homeLabel = crumb.Label
			break
		}
	}

	items := make([]structureddata.ListItem, 0, len(trail.Crumbs)+1)
	items = append(items, structureddata.ListItem{
		Position: 1,
		Name:     homeLabel,
		URL:      structureddata.AbsoluteURL(siteRoot, "/"),
	})

	segments := Segments(trail.Path)
	for _, crumb := range trail.Crumbs {
		if crumb.Href == "/" {
			continue
		}
		depth := len(items)
		item := structureddata.ListItem{
			Position: len(items) + 1,
			Name:     crumb.Label,
		}
		switch {
		case crumb.Href != "":
			item.URL = structureddata.AbsoluteURL(siteRoot, crumb.Href)
		case crumb.IsLast && trail.Path != "":
			item.URL = structureddata.AbsoluteURL(siteRoot, trail.Path)
		case len(segments) > 0:
			item.URL = structureddata.AbsoluteURL(siteRoot, "/"+strings.Join(segments[:min(depth, len(segments))], "/"))
		}
		items = append(items, item)
	}

	return structureddata.BreadcrumbList{Items: items}
}
