package structureddata

import (
	"sync"

	"github.com/goliatone/go-sitecontent/internal/validation"
)

var (
	schemasOnce sync.Once
	schemas     map[string]*validation.Validator
)

func schemaFor(typ string) (*validation.Validator, bool) {
	schemasOnce.Do(func() {
		schemas = map[string]*validation.Validator{
			TypeBreadcrumbList: validation.MustCompile("breadcrumb_list", breadcrumbListSchema),
			TypeBlogPosting:    validation.MustCompile("blog_posting", blogPostingSchema),
			TypeProduct:        validation.MustCompile("product", productSchema),
			TypeBakery:         validation.MustCompile("bakery", bakerySchema),
		}
	})
	v, ok := schemas[typ]
	return v, ok
}

func typeConst(value string) map[string]any {
	return map[string]any{"const": value}
}

var absoluteURL = map[string]any{
	"type":    "string",
	"pattern": `^https?://`,
}

var nonEmptyString = map[string]any{
	"type":      "string",
	"minLength": 1,
}

var breadcrumbListSchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"@context", "@type", "itemListElement"},
	"properties": map[string]any{
		"@context": typeConst(Context),
		"@type":    typeConst(TypeBreadcrumbList),
		"itemListElement": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"@type", "position", "name"},
				"properties": map[string]any{
					"@type":    typeConst("ListItem"),
					"position": map[string]any{"type": "integer", "minimum": 1},
					"name":     nonEmptyString,
					"item":     absoluteURL,
				},
			},
		},
	},
}

var blogPostingSchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"@context", "@type", "headline"},
	"properties": map[string]any{
		"@context":      typeConst(Context),
		"@type":         typeConst(TypeBlogPosting),
		"headline":      map[string]any{"type": "string", "minLength": 1, "maxLength": 110},
		"url":           absoluteURL,
		"image":         map[string]any{"type": "array", "items": absoluteURL},
		"wordCount":     map[string]any{"type": "integer", "minimum": 0},
		"datePublished": map[string]any{"type": "string", "format": "date-time"},
		"dateModified":  map[string]any{"type": "string", "format": "date-time"},
	},
}

var productSchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"@context", "@type", "name"},
	"properties": map[string]any{
		"@context": typeConst(Context),
		"@type":    typeConst(TypeProduct),
		"name":     nonEmptyString,
		"url":      absoluteURL,
		"offers": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"@type", "price", "priceCurrency"},
				"properties": map[string]any{
					"price":         map[string]any{"type": "string", "pattern": `^\d+\.\d{2}$`},
					"priceCurrency": map[string]any{"type": "string", "pattern": `^[A-Z]{3}$`},
				},
			},
		},
	},
}

var bakerySchema = map[string]any{
	"$schema":  "https://json-schema.org/draft/2020-12/schema",
	"type":     "object",
	"required": []any{"@context", "@type", "name"},
	"properties": map[string]any{
		"@context": typeConst(Context),
		"@type":    typeConst(TypeBakery),
		"name":     nonEmptyString,
		"url":      absoluteURL,
		"openingHours": map[string]any{
			"type":  "array",
			"items": nonEmptyString,
		},
	},
}
