package structureddata

import "encoding/json"

// TypeBreadcrumbList is the schema.org type emitted by BreadcrumbList.
const TypeBreadcrumbList = "BreadcrumbList"

// BreadcrumbList describes a page's position in the site hierarchy.
type BreadcrumbList struct {
	Items []ListItem
}

// ListItem is one entry of a BreadcrumbList. Position is 1-based. URL is
// absolute; it may be empty for entries without a page of their own.
type ListItem struct {
	Position int
	Name     string
	URL      string
}

// Type reports the schema.org type.
func (BreadcrumbList) Type() string { return TypeBreadcrumbList }

type listItemJSON struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// MarshalJSON renders the list as JSON-LD.
func (b BreadcrumbList) MarshalJSON() ([]byte, error) {
	items := make([]listItemJSON, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, listItemJSON{
			Type:     "ListItem",
			Position: item.Position,
			Name:     item.Name,
			Item:     item.URL,
		})
	}
	return json.Marshal(struct {
		Context string         `json:"@context"`
		Type    string         `json:"@type"`
		Items   []listItemJSON `json:"itemListElement"`
	}{
		Context: Context,
		Type:    TypeBreadcrumbList,
		Items:   items,
	})
}
