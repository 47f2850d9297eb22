package structureddata

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitecontent/internal/validation"
)

func decode(t *testing.T, value any) map[string]any {
	t.Helper()
	encoded, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(encoded, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		base, href, want string
	}{
		{"https://bakery.example/", "/cakes", "https://bakery.example/cakes"},
		{"https://bakery.example", "cakes", "https://bakery.example/cakes"},
		{"https://bakery.example", "", "https://bakery.example/"},
		{"", "/cakes", "/cakes"},
		{"  ", "cakes", "/cakes"},
		{"https://bakery.example", "https://cdn.example/a.png", "https://cdn.example/a.png"},
	}
	for _, tt := range tests {
		if got := AbsoluteURL(tt.base, tt.href); got != tt.want {
			t.Fatalf("AbsoluteURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
		}
	}
}

func TestBreadcrumbListJSONLD(t *testing.T) {
	list := BreadcrumbList{Items: []ListItem{
		{Position: 1, Name: "Home", URL: "https://bakery.example/"},
		{Position: 2, Name: "Cakes", URL: "https://bakery.example/cakes"},
	}}

	doc := decode(t, list)
	if doc["@context"] != Context || doc["@type"] != "BreadcrumbList" {
		t.Fatalf("unexpected header: %#v", doc)
	}
	items, ok := doc["itemListElement"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 items, got %#v", doc["itemListElement"])
	}
	second := items[1].(map[string]any)
	if second["@type"] != "ListItem" || second["position"] != float64(2) || second["item"] != "https://bakery.example/cakes" {
		t.Fatalf("unexpected list item: %#v", second)
	}

	if err := Validate(list); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsRelativeBreadcrumbURL(t *testing.T) {
	list := BreadcrumbList{Items: []ListItem{{Position: 1, Name: "Home", URL: "/"}}}
	err := Validate(list)
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected schema validation error, got %v", err)
	}
	if issues := validation.Issues(err); len(issues) == 0 {
		t.Fatalf("expected issues to be reported")
	}
}

func TestArticleJSONLD(t *testing.T) {
	published := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	article := Article{
		Headline:      "How we bake honey cake",
		Description:   "Seven layers.",
		URL:           "https://bakery.example/blog/honey-cake",
		Images:        []string{"https://bakery.example/img/honey.jpg"},
		AuthorName:    "Ana",
		PublisherName: "Sweet Bakery",
		Keywords:      []string{"cake", "honey"},
		WordCount:     420,
		DatePublished: published,
	}

	doc := decode(t, article)
	if doc["@type"] != "BlogPosting" {
		t.Fatalf("unexpected type %v", doc["@type"])
	}
	if doc["dateModified"] != "2024-03-01T09:00:00Z" {
		t.Fatalf("expected dateModified to fall back to datePublished, got %v", doc["dateModified"])
	}
	if doc["keywords"] != "cake, honey" {
		t.Fatalf("unexpected keywords %v", doc["keywords"])
	}
	page := doc["mainEntityOfPage"].(map[string]any)
	if page["@id"] != article.URL {
		t.Fatalf("unexpected mainEntityOfPage %#v", page)
	}
	if _, ok := doc["publisher"].(map[string]any)["logo"]; ok {
		t.Fatalf("expected logo to be omitted when empty")
	}

	if err := Validate(article); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestProductJSONLD(t *testing.T) {
	product := Product{
		Name:   "Custom celebration cake",
		URL:    "https://bakery.example/cakes/custom",
		Brand:  "Sweet Bakery",
		Offers: []Offer{{Price: 45, Currency: "USD", Availability: PreOrder}},
	}

	doc := decode(t, product)
	offer := doc["offers"].([]any)[0].(map[string]any)
	if offer["price"] != "45.00" || offer["availability"] != string(PreOrder) {
		t.Fatalf("unexpected offer %#v", offer)
	}
	if err := Validate(product); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	product.Offers[0].Currency = "usd"
	if err := Validate(product); err == nil {
		t.Fatalf("expected lowercase currency to fail validation")
	}
}

func TestBakeryJSONLD(t *testing.T) {
	bakery := Bakery{
		Name:         "Sweet Bakery",
		URL:          "https://bakery.example",
		Address:      PostalAddress{StreetAddress: "1 Main St", Locality: "Springfield"},
		OpeningHours: []string{"Mo-Fr 07:00-18:00"},
	}
	doc := decode(t, bakery)
	address := doc["address"].(map[string]any)
	if address["@type"] != "PostalAddress" || address["addressLocality"] != "Springfield" {
		t.Fatalf("unexpected address %#v", address)
	}
	if err := Validate(bakery); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if _, ok := decode(t, Bakery{Name: "No address"})["address"]; ok {
		t.Fatalf("expected empty address to be omitted")
	}
}

func TestValidateUnknownType(t *testing.T) {
	err := Validate(map[string]any{"@type": "Recipe"})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestValidateAllJoinsErrors(t *testing.T) {
	err := ValidateAll(Product{}, Bakery{})
	if err == nil {
		t.Fatalf("expected errors for empty names")
	}
	if !strings.Contains(err.Error(), "product") || !strings.Contains(err.Error(), "bakery") {
		t.Fatalf("expected both failures in %q", err.Error())
	}
}

func TestScriptEscapesHTML(t *testing.T) {
	out, err := Script(BreadcrumbList{Items: []ListItem{{Position: 1, Name: "</script><b>", URL: "https://x.example/"}}}, Bakery{Name: "B"})
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	if strings.Count(out, `<script type="application/ld+json">`) != 2 {
		t.Fatalf("expected two script tags, got %q", out)
	}
	if strings.Contains(out, "</script><b>") {
		t.Fatalf("expected embedded markup to be escaped, got %q", out)
	}
}
