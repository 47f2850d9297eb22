package richtext

import "strings"

// BlockKind tags the variant carried by a Block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockList      BlockKind = "list"
	BlockParagraph BlockKind = "paragraph"
	BlockSpacer    BlockKind = "spacer"
)

// SpanKind tags the variant carried by a Span.
type SpanKind string

const (
	SpanText SpanKind = "text"
	SpanBold SpanKind = "bold"
	SpanLink SpanKind = "link"
)

// Span is one inline fragment of a block. URL is only set for links.
type Span struct {
	Kind SpanKind `json:"type"`
	Text string   `json:"text"`
	URL  string   `json:"url,omitempty"`
}

// Text builds a SpanText span.
func Text(text string) Span {
	return Span{Kind: SpanText, Text: text}
}

// Bold builds a SpanBold span.
func Bold(text string) Span {
	return Span{Kind: SpanBold, Text: text}
}

// Link builds a SpanLink span.
func Link(text, url string) Span {
	return Span{Kind: SpanLink, Text: text, URL: url}
}

// Block is one structural unit of parsed content. Which fields are populated
// depends on Kind:
//
//	heading   Level (1-3), Spans
//	list      Ordered, Items
//	paragraph Spans
//	spacer    nothing
type Block struct {
	Kind    BlockKind `json:"type"`
	Level   int       `json:"level,omitempty"`
	Ordered bool      `json:"ordered,omitempty"`
	Spans   []Span    `json:"spans,omitempty"`
	Items   [][]Span  `json:"items,omitempty"`
}

// Heading builds a heading block of the given level.
func Heading(level int, spans []Span) Block {
	return Block{Kind: BlockHeading, Level: level, Spans: spans}
}

// List builds a list block; ordered selects a numbered list.
func List(ordered bool, items [][]Span) Block {
	return Block{Kind: BlockList, Ordered: ordered, Items: items}
}

// Paragraph builds a paragraph block.
func Paragraph(spans []Span) Block {
	return Block{Kind: BlockParagraph, Spans: spans}
}

// Spacer builds a blank spacer block.
func Spacer() Block {
	return Block{Kind: BlockSpacer}
}

// Text returns the concatenated text of the block's spans. List items are
// joined with newlines.
func (b Block) Text() string {
	switch b.Kind {
	case BlockList:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			lines[i] = SpansText(item)
		}
		return strings.Join(lines, "\n")
	case BlockSpacer:
		return ""
	default:
		return SpansText(b.Spans)
	}
}

// SpansText concatenates the text of every span, dropping link URLs.
func SpansText(spans []Span) string {
	switch len(spans) {
	case 0:
		return ""
	case 1:
		return spans[0].Text
	}
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}
