package preview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/posts"
	"github.com/goliatone/go-sitecontent/internal/richtext"
)

const (
	crumbSeparator = " › "
	statsSeparator = " · "
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F2C94C"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	crumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	currentCrumbStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	boldStyle = lipgloss.NewStyle().Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#56CCF2")).
			Underline(true)

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Terminal renders post for display in a terminal: breadcrumbs, title, a
// stats line and the body blocks. Styles degrade to plain text when the
// output has no colour profile.
func Terminal(post *posts.Post) string {
	if post == nil {
		return ""
	}

	var sections []string
	if trail := Breadcrumbs(post.Breadcrumbs); trail != "" {
		sections = append(sections, trail)
	}
	sections = append(sections, titleStyle.Render(post.Title), statsStyle.Render(Stats(post)))
	if body := Blocks(post.Blocks); body != "" {
		sections = append(sections, body)
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// Stats returns the "1,234 words · 6 min read" summary for post. Drafts are
// flagged.
func Stats(post *posts.Post) string {
	parts := []string{
		humanize.Comma(int64(post.WordCount)) + " " + plural(post.WordCount, "word", "words"),
		strconv.Itoa(post.ReadingMinutes()) + " min read",
	}
	if !post.PublishedAt.IsZero() {
		parts = append(parts, post.PublishedAt.Format("Jan 2, 2006"))
	}
	if post.Draft {
		parts = append(parts, "draft")
	}
	return strings.Join(parts, statsSeparator)
}

// Breadcrumbs renders trail on one line, dimming every crumb but the current
// page.
func Breadcrumbs(trail breadcrumbs.Trail) string {
	if trail.Empty() {
		return ""
	}
	labels := make([]string, len(trail.Crumbs))
	for i, crumb := range trail.Crumbs {
		if crumb.IsLast {
			labels[i] = currentCrumbStyle.Render(crumb.Label)
			continue
		}
		labels[i] = crumbStyle.Render(crumb.Label)
	}
	return strings.Join(labels, crumbStyle.Render(crumbSeparator))
}

// Blocks renders parsed content blocks, one paragraph per block.
func Blocks(blocks []richtext.Block) string {
	var out []string
	for _, block := range blocks {
		switch block.Kind {
		case richtext.BlockHeading:
			out = append(out, headingStyle.Render(strings.Repeat("#", block.Level)+" "+block.Text()))
		case richtext.BlockList:
			lines := make([]string, len(block.Items))
			for i, item := range block.Items {
				marker := "•"
				if block.Ordered {
					marker = fmt.Sprintf("%d.", i+1)
				}
				lines[i] = "  " + marker + " " + spans(item)
			}
			out = append(out, strings.Join(lines, "\n"))
		case richtext.BlockParagraph:
			out = append(out, spans(block.Spans))
		}
	}
	return strings.Join(out, "\n\n")
}

func spans(items []richtext.Span) string {
	var b strings.Builder
	for _, span := range items {
		switch span.Kind {
		case richtext.SpanBold:
			b.WriteString(boldStyle.Render(span.Text))
		case richtext.SpanLink:
			b.WriteString(linkStyle.Render(span.Text))
			b.WriteString(urlStyle.Render(" (" + span.URL + ")"))
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
