// Package richtext turns the lightweight Markdown used in blog post bodies into
// an ordered sequence of typed blocks (headings, lists, paragraphs, spacers)
// carrying inline spans (plain text, bold, links).
//
// Parsing is total and deterministic: unrecognised syntax degrades to plain
// paragraph text and no input produces an error. Every function in the package
// is safe for concurrent use.
package richtext
