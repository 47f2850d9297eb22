package richtext

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "…"

// PlainText flattens blocks into text, one line per heading, paragraph or list
// item. Spacers are dropped.
func PlainText(blocks []Block) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Kind == BlockSpacer {
			continue
		}
		lines = append(lines, block.Text())
	}
	return strings.Join(lines, "\n")
}

// WordCount counts whitespace separated words across all blocks.
func WordCount(blocks []Block) int {
	count := 0
	for _, block := range blocks {
		count += len(strings.Fields(block.Text()))
	}
	return count
}

// Excerpt returns the text of the first paragraph, cut to at most maxRunes
// runes on a word boundary. A non-positive maxRunes returns the full
// paragraph.
func Excerpt(blocks []Block, maxRunes int) string {
	for _, block := range blocks {
		if block.Kind != BlockParagraph {
			continue
		}
		text := strings.TrimSpace(block.Text())
		if text == "" {
			continue
		}
		return truncateWords(text, maxRunes)
	}
	return ""
}

func truncateWords(text string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	var b strings.Builder
	used := 0
	for _, word := range strings.Fields(text) {
		next := utf8.RuneCountInString(word)
		if used > 0 {
			next++
		}
		if used+next > maxRunes {
			break
		}
		if used > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
		used += next
	}
	if b.Len() == 0 {
		runes := []rune(text)
		return string(runes[:maxRunes]) + ellipsis
	}
	return strings.TrimRight(b.String(), ".,;:") + ellipsis
}
