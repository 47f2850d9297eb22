package structureddata

import "strings"

// AbsoluteURL joins a site base URL and a rooted path. Hrefs that are already
// absolute are returned unchanged. Without a base the rooted path is returned
// as is.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if href == "" {
		href = "/"
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return strings.TrimRight(strings.TrimSpace(base), "/") + href
}
