package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/posts"
	"github.com/goliatone/go-sitecontent/internal/richtext"
)

func samplePost() *posts.Post {
	return &posts.Post{
		Title:       "Honey Cake Season",
		WordCount:   1234,
		ReadingTime: 7 * time.Minute,
		PublishedAt: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
		Blocks: richtext.Parse(strings.Join([]string{
			"# Seven layers",
			"Order **early** at [the shop](/order).",
			"",
			"1. Mix",
			"2. Bake",
		}, "\n")),
		Breadcrumbs: breadcrumbs.Derive("/blog/honey-cake-season", breadcrumbs.Options{}),
	}
}

func TestStats(t *testing.T) {
	post := samplePost()
	if got, want := Stats(post), "1,234 words · 7 min read · Mar 15, 2024"; got != want {
		t.Fatalf("Stats() = %q, want %q", got, want)
	}

	post.WordCount = 1
	post.ReadingTime = time.Minute
	post.PublishedAt = time.Time{}
	post.Draft = true
	if got, want := Stats(post), "1 word · 1 min read · draft"; got != want {
		t.Fatalf("Stats() = %q, want %q", got, want)
	}
}

func TestTerminalContainsSections(t *testing.T) {
	out := Terminal(samplePost())

	for _, want := range []string{
		"Home",
		"Honey cake season",
		"Honey Cake Season",
		"# Seven layers",
		"early",
		"the shop",
		"(/order)",
		"  1. Mix",
		"  2. Bake",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
}

func TestTerminalNilPost(t *testing.T) {
	if got := Terminal(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestBreadcrumbsEmptyTrail(t *testing.T) {
	if got := Breadcrumbs(breadcrumbs.Derive("/", breadcrumbs.Options{})); got != "" {
		t.Fatalf("expected empty breadcrumbs, got %q", got)
	}
}
