package sitecontent_test

import (
	"context"
	"reflect"
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitecontent"
	"github.com/goliatone/go-sitecontent/internal/richtext"
)

func TestParseGroupsListsAndSpacers(t *testing.T) {
	blocks := sitecontent.Parse("- a\n\n- b")
	want := []sitecontent.Block{
		richtext.List(false, [][]sitecontent.Span{{richtext.Text("a")}}),
		richtext.Spacer(),
		richtext.List(false, [][]sitecontent.Span{{richtext.Text("b")}}),
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("unexpected blocks %#v", blocks)
	}
}

func TestProcessInlineBoldWrappedLine(t *testing.T) {
	spans := sitecontent.ProcessInline("**hello [world](http://x) end**")
	want := []sitecontent.Span{
		richtext.Bold("hello "),
		richtext.Link("world", "http://x"),
		richtext.Bold(" end"),
	}
	if !reflect.DeepEqual(spans, want) {
		t.Fatalf("unexpected spans %#v", spans)
	}
}

func TestDeriveBreadcrumbsAndStructuredData(t *testing.T) {
	hide := false
	trail := sitecontent.DeriveBreadcrumbs("/cakes/honey-cake", sitecontent.BreadcrumbOptions{ShowHome: &hide})

	want := []sitecontent.Crumb{
		{Label: "Cakes", Href: "/cakes"},
		{Label: "Honey cake", IsLast: true},
	}
	if !reflect.DeepEqual(trail.Crumbs, want) {
		t.Fatalf("unexpected crumbs %#v", trail.Crumbs)
	}

	data := sitecontent.BreadcrumbStructuredData(trail, "https://bakery.example")
	if len(data.Items) != 3 {
		t.Fatalf("expected three items, got %#v", data.Items)
	}
	if first := data.Items[0]; first.Position != 1 || first.Name != "Home" || first.URL != "https://bakery.example/" {
		t.Fatalf("expected Home at position 1, got %#v", first)
	}
}

func newModule(t *testing.T) *sitecontent.Module {
	t.Helper()
	cfg := sitecontent.DefaultConfig()
	cfg.Site.Name = "Sweet Bakery"
	cfg.Site.BaseURL = "https://bakery.example"
	cfg.Logging.Provider = "noop"

	module, err := sitecontent.New(cfg, sitecontent.WithFS(fstest.MapFS{
		"blog/honey-cake.md": {Data: []byte("---\ntitle: Honey Cake\ndate: 2024-03-15T08:00:00Z\n---\nLayers of **honey**.\n")},
		"blog/rye.md":        {Data: []byte("---\ntitle: Rye\ndate: 2024-04-10T08:00:00Z\n---\nDense bread.\n")},
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return module
}

func TestModuleRenderPost(t *testing.T) {
	module := newModule(t)

	post, err := module.RenderPost(context.Background(), "blog/honey-cake.md")
	if err != nil {
		t.Fatalf("RenderPost: %v", err)
	}
	if post.CanonicalURL != "https://bakery.example/blog/honey-cake" {
		t.Fatalf("unexpected canonical url %q", post.CanonicalURL)
	}
	if got := post.Breadcrumbs.Crumbs[len(post.Breadcrumbs.Crumbs)-1]; got.Label != "Honey Cake" || !got.IsLast {
		t.Fatalf("unexpected last crumb %#v", got)
	}

	_, err = module.RenderPost(context.Background(), "")
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error for empty path, got %v", err)
	}
}

func TestModuleRenderDirectory(t *testing.T) {
	module := newModule(t)

	list, err := module.RenderDirectory(context.Background(), "blog", sitecontent.ListOptions{})
	if err != nil {
		t.Fatalf("RenderDirectory: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "rye" || list[1].Slug != "honey-cake" {
		t.Fatalf("expected newest first, got %d posts", len(list))
	}
}

func TestModuleBreadcrumbsRootPath(t *testing.T) {
	module := newModule(t)

	trail, data, err := module.Breadcrumbs(context.Background(), "/", sitecontent.BreadcrumbOptions{})
	if err != nil {
		t.Fatalf("Breadcrumbs: %v", err)
	}
	if !trail.Empty() {
		t.Fatalf("expected empty trail for root, got %#v", trail.Crumbs)
	}
	if len(data.Items) != 1 || data.Items[0].Name != "Home" {
		t.Fatalf("expected only Home in structured data, got %#v", data.Items)
	}
}
