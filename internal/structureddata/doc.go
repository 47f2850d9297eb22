// Package structureddata builds schema.org JSON-LD payloads for search
// engines: breadcrumb lists, blog articles, products and the bakery itself.
// Each builder is a plain struct that marshals to JSON-LD; Script wraps the
// encoded values in <script type="application/ld+json"> tags and Validate
// checks them against an embedded JSON Schema.
package structureddata
