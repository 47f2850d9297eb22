package markdown

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Honey Cake Season" {
		t.Fatalf("FrontMatter Title mismatch, got %q", fm.Title)
	}
	if fm.Slug != "honey-cake-season" {
		t.Fatalf("FrontMatter Slug mismatch, got %q", fm.Slug)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "cakes" || fm.Tags[1] != "seasonal" {
		t.Fatalf("expected trimmed, deduplicated tags, got %#v", fm.Tags)
	}
	if fm.Format != interfaces.FormatBlocks {
		t.Fatalf("expected format to be normalised, got %q", fm.Format)
	}
	if want := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC); !fm.Date.Equal(want) {
		t.Fatalf("unexpected date %v", fm.Date)
	}
	if len(fm.Breadcrumbs) != 2 || fm.Breadcrumbs[0].Href != "/blog" || fm.Breadcrumbs[1].Label != "Honey cake season" {
		t.Fatalf("unexpected breadcrumbs %#v", fm.Breadcrumbs)
	}
	if fm.Custom["hero_color"] != "amber" {
		t.Fatalf("expected unknown keys in Custom, got %#v", fm.Custom)
	}
	if !strings.HasPrefix(string(body), "# Honey Cake Season") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	fm, body, err := ParseFrontMatter(readFixture(t, "testdata/plain.md"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "" || fm.Format != interfaces.FormatBlocks {
		t.Fatalf("expected zero front matter with default format, got %#v", fm)
	}
	if fm.Custom == nil {
		t.Fatalf("expected Custom to be initialised")
	}
	if !strings.Contains(string(body), "No front matter here.") {
		t.Fatalf("expected full source as body, got %q", body)
	}
}

func TestParseFrontMatterRejectsBrokenYAML(t *testing.T) {
	if _, _, err := ParseFrontMatter([]byte("---\ntitle: [unclosed\n---\nbody")); err == nil {
		t.Fatalf("expected error for malformed front matter")
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("posts/basic.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.FilePath != "posts/basic.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if !doc.LastModified.Equal(modified) {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, `<h1 id="heading">Heading</h1>`) {
		t.Fatalf("expected heading with auto id, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestGoldmarkParser_SafeModeDropsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{SafeMode: true})

	html, err := parser.Parse([]byte("<script>alert(1)</script>\n\ntext"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Fatalf("expected raw html to be omitted in safe mode, got %q", html)
	}
}

func TestMergeParseOptions(t *testing.T) {
	base := interfaces.ParseOptions{Extensions: []string{"gfm"}, SafeMode: true}
	got := MergeParseOptions(base, interfaces.ParseOptions{Extensions: []string{"footnote"}, HardWraps: true})
	if len(got.Extensions) != 1 || got.Extensions[0] != "footnote" || !got.HardWraps || !got.SafeMode {
		t.Fatalf("unexpected merged options %#v", got)
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
