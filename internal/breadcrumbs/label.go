package breadcrumbs

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LabelCase selects how path segments are capitalised.
type LabelCase string

const (
	// LabelCaseSentence upper-cases only the first letter: "honey-cake" -> "Honey cake".
	LabelCaseSentence LabelCase = "sentence"
	// LabelCaseTitle upper-cases every word: "honey-cake" -> "Honey Cake".
	LabelCaseTitle LabelCase = "title"
)

// Valid reports whether c is a known case, the empty value included.
func (c LabelCase) Valid() bool {
	switch c {
	case "", LabelCaseSentence, LabelCaseTitle:
		return true
	default:
		return false
	}
}

// Label turns a URL path segment into a human readable label. Percent
// escapes are decoded, hyphens become spaces and the result is capitalised
// according to c.
func Label(segment string, c LabelCase) string {
	if decoded, err := url.PathUnescape(segment); err == nil {
		segment = decoded
	}
	label := strings.ReplaceAll(segment, "-", " ")
	if label == "" {
		return ""
	}
	if c == LabelCaseTitle {
		return cases.Title(language.Und, cases.NoLower).String(label)
	}
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label
	}
	return string(unicode.ToUpper(r)) + label[size:]
}
