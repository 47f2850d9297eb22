package richtext

import "strings"

const boldMarker = "**"

// ProcessInline splits a line of text into spans. Links written as
// [label](url) become link spans, **text** becomes bold, everything else is
// plain text. A line wrapped start to end in ** is bold as a whole: every
// non-link span derived from it is bold, and inner ** markers stay literal.
//
// Malformed syntax (unclosed brackets, stray asterisks) is kept literally.
func ProcessInline(text string) []Span {
	if text == "" {
		return nil
	}

	boldWrapped := strings.HasPrefix(text, boldMarker) && strings.HasSuffix(text, boldMarker)
	segments := scanLinks(text)

	spans := make([]Span, 0, len(segments))
	for i, seg := range segments {
		if seg.link {
			spans = appendSpan(spans, Link(seg.text, seg.url))
			continue
		}
		if !boldWrapped {
			spans = appendBoldTokens(spans, seg.text)
			continue
		}

		value := seg.text
		if i == 0 {
			value = strings.TrimPrefix(value, boldMarker)
		}
		if i == len(segments)-1 {
			value = strings.TrimSuffix(value, boldMarker)
		}
		spans = appendSpan(spans, Bold(value))
	}

	if len(spans) == 0 {
		return nil
	}
	return spans
}

// segment is either a run of plain text or a parsed link.
type segment struct {
	text string
	url  string
	link bool
}

// scanLinks walks text left to right and splits it into plain and link
// segments. A link is "[" label "]" "(" url ")" where the label contains no
// "]" and the url contains no ")"; both must be non-empty.
func scanLinks(text string) []segment {
	var segments []segment
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		label, url, end, ok := matchLink(text, i)
		if !ok {
			continue
		}
		if i > start {
			segments = append(segments, segment{text: text[start:i]})
		}
		segments = append(segments, segment{text: label, url: url, link: true})
		start = end
		i = end - 1
	}
	if start < len(text) {
		segments = append(segments, segment{text: text[start:]})
	}
	return segments
}

// matchLink tries to read a link starting at text[open] == '['. It returns the
// label, url and the index just past the closing parenthesis.
func matchLink(text string, open int) (label, url string, end int, ok bool) {
	closeLabel := strings.IndexByte(text[open+1:], ']')
	if closeLabel <= 0 {
		return "", "", 0, false
	}
	closeLabel += open + 1

	if closeLabel+1 >= len(text) || text[closeLabel+1] != '(' {
		return "", "", 0, false
	}

	urlStart := closeLabel + 2
	closeURL := strings.IndexByte(text[urlStart:], ')')
	if closeURL <= 0 {
		return "", "", 0, false
	}
	closeURL += urlStart

	return text[open+1 : closeLabel], text[urlStart:closeURL], closeURL + 1, true
}

// appendBoldTokens splits text on **bold** runs (content without asterisks)
// and appends the resulting text and bold spans.
func appendBoldTokens(spans []Span, text string) []Span {
	start := 0
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '*' || text[i+1] != '*' {
			continue
		}
		inner, end, ok := matchBold(text, i)
		if !ok {
			continue
		}
		if i > start {
			spans = appendSpan(spans, Text(text[start:i]))
		}
		spans = appendSpan(spans, Bold(inner))
		start = end
		i = end - 1
	}
	if start < len(text) {
		spans = appendSpan(spans, Text(text[start:]))
	}
	return spans
}

// matchBold reads "**" content "**" at text[open:], where content is at least
// one byte long and contains no asterisk.
func matchBold(text string, open int) (inner string, end int, ok bool) {
	contentStart := open + len(boldMarker)
	star := strings.IndexByte(text[contentStart:], '*')
	if star <= 0 {
		return "", 0, false
	}
	star += contentStart
	if !strings.HasPrefix(text[star:], boldMarker) {
		return "", 0, false
	}
	return text[contentStart:star], star + len(boldMarker), true
}

func appendSpan(spans []Span, span Span) []Span {
	if span.Text == "" {
		return spans
	}
	return append(spans, span)
}
