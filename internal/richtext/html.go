package richtext

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var headingAtoms = map[int]atom.Atom{
	1: atom.H1,
	2: atom.H2,
	3: atom.H3,
}

// RenderHTML renders blocks as an HTML fragment. Headings carry the ids
// produced by HeadingAnchors, spacers render nothing, and links pointing at a
// scheme other than http, https, mailto or tel are emitted as plain text.
func RenderHTML(blocks []Block) (string, error) {
	anchors := HeadingAnchors(blocks)

	var b strings.Builder
	for i, block := range blocks {
		node := blockNode(block, anchors[i])
		if node == nil {
			continue
		}
		if err := html.Render(&b, node); err != nil {
			return "", fmt.Errorf("richtext: render %s block %d: %w", block.Kind, i, err)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func blockNode(block Block, anchor string) *html.Node {
	switch block.Kind {
	case BlockHeading:
		a, ok := headingAtoms[block.Level]
		if !ok {
			a = atom.H3
		}
		node := element(a)
		if anchor != "" {
			node.Attr = append(node.Attr, html.Attribute{Key: "id", Val: anchor})
		}
		appendSpans(node, block.Spans)
		return node
	case BlockList:
		node := element(atom.Ul)
		if block.Ordered {
			node = element(atom.Ol)
		}
		for _, item := range block.Items {
			li := element(atom.Li)
			appendSpans(li, item)
			node.AppendChild(li)
		}
		return node
	case BlockParagraph:
		node := element(atom.P)
		appendSpans(node, block.Spans)
		return node
	default:
		return nil
	}
}

func appendSpans(parent *html.Node, spans []Span) {
	for _, span := range spans {
		parent.AppendChild(spanNode(span))
	}
}

func spanNode(span Span) *html.Node {
	switch span.Kind {
	case SpanBold:
		node := element(atom.Strong)
		node.AppendChild(textNode(span.Text))
		return node
	case SpanLink:
		href, external, ok := safeHref(span.URL)
		if !ok {
			return textNode(span.Text)
		}
		node := element(atom.A)
		node.Attr = append(node.Attr, html.Attribute{Key: "href", Val: href})
		if external {
			node.Attr = append(node.Attr,
				html.Attribute{Key: "rel", Val: "noopener"},
				html.Attribute{Key: "target", Val: "_blank"},
			)
		}
		node.AppendChild(textNode(span.Text))
		return node
	default:
		return textNode(span.Text)
	}
}

// safeHref reports whether href may be used as a link target and whether it
// points to another site.
func safeHref(href string) (string, bool, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false, false
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return "", false, false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "":
		return href, false, true
	case "http", "https":
		return href, true, true
	case "mailto", "tel":
		return href, false, true
	default:
		return "", false, false
	}
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func textNode(value string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: value}
}
