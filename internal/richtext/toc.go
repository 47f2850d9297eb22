package richtext

import (
	"strconv"

	"github.com/goliatone/go-slug"
)

const fallbackAnchor = "section"

// TOCEntry is one heading in a table of contents.
type TOCEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// HeadingAnchors returns one anchor id per block, aligned by index. Headings
// get a slug of their text, made unique with the lowest free -2, -3 suffix;
// every other block gets "".
func HeadingAnchors(blocks []Block) []string {
	anchors := make([]string, len(blocks))
	taken := map[string]struct{}{}
	next := map[string]int{}
	for i, block := range blocks {
		if block.Kind != BlockHeading {
			continue
		}
		base, err := slug.Normalize(block.Text())
		if err != nil || base == "" {
			base = fallbackAnchor
		}
		anchor := base
		if _, ok := taken[anchor]; ok {
			n := max(next[base], 2)
			for {
				anchor = base + "-" + strconv.Itoa(n)
				n++
				if _, ok := taken[anchor]; !ok {
					break
				}
			}
			next[base] = n
		}
		taken[anchor] = struct{}{}
		anchors[i] = anchor
	}
	return anchors
}

// TableOfContents lists the headings of blocks in document order.
func TableOfContents(blocks []Block) []TOCEntry {
	anchors := HeadingAnchors(blocks)
	var entries []TOCEntry
	for i, block := range blocks {
		if block.Kind != BlockHeading {
			continue
		}
		entries = append(entries, TOCEntry{
			Level:  block.Level,
			Title:  block.Text(),
			Anchor: anchors[i],
		})
	}
	return entries
}
