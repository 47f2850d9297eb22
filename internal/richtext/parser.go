package richtext

import (
	"regexp"
	"strings"
)

var numberedPrefix = regexp.MustCompile(`^\d+\.\s`)

// lineKind is the classification of a single input line.
type lineKind uint8

const (
	lineParagraph lineKind = iota
	lineHeading
	lineBullet
	lineNumbered
	lineBlank
)

// classifiedLine is a line with its kind and the remainder left after the
// marker prefix was removed.
type classifiedLine struct {
	kind  lineKind
	level int
	rest  string
}

// headingPrefixes is checked longest first so "### " never reads as "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// classifyLine applies the prefix rules to one line. Detection is lexical:
// leading whitespace is not trimmed before matching.
func classifyLine(line string) classifiedLine {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return classifiedLine{kind: lineHeading, level: h.level, rest: line[len(h.prefix):]}
		}
	}
	if strings.HasPrefix(line, "- ") {
		return classifiedLine{kind: lineBullet, rest: line[2:]}
	}
	if loc := numberedPrefix.FindStringIndex(line); loc != nil {
		return classifiedLine{kind: lineNumbered, rest: line[loc[1]:]}
	}
	if strings.TrimSpace(line) == "" {
		return classifiedLine{kind: lineBlank}
	}
	return classifiedLine{kind: lineParagraph, rest: line}
}

// openList is the list accumulator carried while folding over lines.
type openList struct {
	ordered bool
	items   [][]Span
}

// parseState is the fold accumulator: finished blocks plus an optional list
// still collecting items.
type parseState struct {
	blocks []Block
	list   *openList
}

func (s *parseState) flush() {
	if s.list == nil {
		return
	}
	s.blocks = append(s.blocks, List(s.list.ordered, s.list.items))
	s.list = nil
}

func (s *parseState) addItem(ordered bool, item []Span) {
	if s.list != nil && s.list.ordered != ordered {
		s.flush()
	}
	if s.list == nil {
		s.list = &openList{ordered: ordered}
	}
	s.list.items = append(s.list.items, item)
}

func (s *parseState) step(line classifiedLine) {
	switch line.kind {
	case lineBullet:
		s.addItem(false, ProcessInline(line.rest))
	case lineNumbered:
		s.addItem(true, ProcessInline(line.rest))
	case lineHeading:
		s.flush()
		s.blocks = append(s.blocks, Heading(line.level, ProcessInline(line.rest)))
	case lineBlank:
		s.flush()
		s.blocks = append(s.blocks, Spacer())
	default:
		s.flush()
		s.blocks = append(s.blocks, Paragraph(ProcessInline(line.rest)))
	}
}

// Parse converts a newline-delimited body into blocks. Consecutive list lines
// of the same kind are grouped into one list block; any other line closes the
// open list. Blank lines become spacers.
//
// Empty input yields no blocks. A trailing "\r" on each line is ignored and a
// single terminating newline does not produce a trailing spacer, so "\n" on
// its own is empty too.
func Parse(raw string) []Block {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return nil
	}

	state := &parseState{}
	for _, line := range strings.Split(raw, "\n") {
		state.step(classifyLine(strings.TrimSuffix(line, "\r")))
	}
	state.flush()
	return state.blocks
}
