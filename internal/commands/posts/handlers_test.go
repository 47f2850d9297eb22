package postscmd

import (
	"context"
	"errors"
	"reflect"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/posts"
	"github.com/goliatone/go-sitecontent/internal/structureddata"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

type loadAllCall struct {
	dir  string
	opts posts.ListOptions
}

type stubPostsService struct {
	loadCalls    []string
	loadAllCalls []loadAllCall

	post *posts.Post
	list []*posts.Post
	err  error
}

func (s *stubPostsService) Load(_ context.Context, path string) (*posts.Post, error) {
	s.loadCalls = append(s.loadCalls, path)
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}

func (s *stubPostsService) LoadAll(_ context.Context, dir string, opts posts.ListOptions) ([]*posts.Post, error) {
	s.loadAllCalls = append(s.loadAllCalls, loadAllCall{dir: dir, opts: opts})
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubPostsService) Build(context.Context, *interfaces.Document) (*posts.Post, error) {
	return s.post, s.err
}

func TestRenderPostHandlerDeliversPost(t *testing.T) {
	service := &stubPostsService{post: &posts.Post{Slug: "honey-cake", SourcePath: "blog/honey-cake.md"}}
	var delivered *posts.Post
	handler := NewRenderPostHandler(service, func(_ context.Context, post *posts.Post) error {
		delivered = post
		return nil
	}, nil)

	if err := handler.Execute(context.Background(), RenderPostCommand{Path: "blog/honey-cake.md"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !reflect.DeepEqual(service.loadCalls, []string{"blog/honey-cake.md"}) {
		t.Fatalf("unexpected load calls %v", service.loadCalls)
	}
	if delivered != service.post {
		t.Fatalf("expected sink to receive loaded post, got %#v", delivered)
	}
}

func TestRenderPostHandlerValidation(t *testing.T) {
	service := &stubPostsService{}
	handler := NewRenderPostHandler(service, nil, nil)

	err := handler.Execute(context.Background(), RenderPostCommand{Path: "   "})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if len(service.loadCalls) != 0 {
		t.Fatal("expected service not to be called")
	}
}

func TestRenderPostHandlerWrapsServiceError(t *testing.T) {
	notFound := &posts.NotFoundError{Path: "blog/missing.md"}
	handler := NewRenderPostHandler(&stubPostsService{err: notFound}, nil, nil)

	err := handler.Execute(context.Background(), RenderPostCommand{Path: "blog/missing.md"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	var target *posts.NotFoundError
	if !errors.As(err, &target) {
		t.Fatalf("expected NotFoundError in chain, got %v", err)
	}
}

func TestRenderDirectoryHandlerStopsOnSinkError(t *testing.T) {
	service := &stubPostsService{list: []*posts.Post{{Slug: "rye"}, {Slug: "tart"}, {Slug: "scones"}}}
	sinkErr := errors.New("disk full")
	var seen []string
	handler := NewRenderDirectoryHandler(service, func(_ context.Context, post *posts.Post) error {
		seen = append(seen, post.Slug)
		if post.Slug == "tart" {
			return sinkErr
		}
		return nil
	}, nil)

	err := handler.Execute(context.Background(), RenderDirectoryCommand{Directory: "blog", IncludeDrafts: true})
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if !reflect.DeepEqual(seen, []string{"rye", "tart"}) {
		t.Fatalf("unexpected sink calls %v", seen)
	}
	want := []loadAllCall{{dir: "blog", opts: posts.ListOptions{IncludeDrafts: true}}}
	if !reflect.DeepEqual(service.loadAllCalls, want) {
		t.Fatalf("unexpected load calls %#v", service.loadAllCalls)
	}
}

func TestRenderDirectoryCommandValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  RenderDirectoryCommand
		ok   bool
	}{
		{"valid", RenderDirectoryCommand{Directory: "blog"}, true},
		{"valid pattern", RenderDirectoryCommand{Directory: "blog", Pattern: "*.markdown"}, true},
		{"blank directory", RenderDirectoryCommand{Directory: " "}, false},
		{"pattern with separator", RenderDirectoryCommand{Directory: "blog", Pattern: "drafts/*.md"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err == nil) != tt.ok {
				t.Fatalf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestDeriveBreadcrumbsHandler(t *testing.T) {
	deriver := breadcrumbs.NewDeriver(breadcrumbs.Config{
		SiteRoot:  "https://bakery.example",
		ShowHome:  true,
		HomeLabel: "Home",
	})

	var gotTrail breadcrumbs.Trail
	var gotData structureddata.BreadcrumbList
	handler := NewDeriveBreadcrumbsHandler(deriver, func(_ context.Context, trail breadcrumbs.Trail, data structureddata.BreadcrumbList) error {
		gotTrail, gotData = trail, data
		return nil
	}, nil)

	hide := false
	if err := handler.Execute(context.Background(), DeriveBreadcrumbsCommand{Path: "/locations/downtown", ShowHome: &hide}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	wantCrumbs := []breadcrumbs.Crumb{
		{Label: "Locations", Href: "/locations"},
		{Label: "Downtown", IsLast: true},
	}
	if !reflect.DeepEqual(gotTrail.Crumbs, wantCrumbs) {
		t.Fatalf("unexpected crumbs %#v", gotTrail.Crumbs)
	}
	if len(gotData.Items) != 3 || gotData.Items[0].Name != "Home" || gotData.Items[0].Position != 1 {
		t.Fatalf("expected Home first in structured data, got %#v", gotData.Items)
	}
}

func TestDeriveBreadcrumbsCommandRequiresItemLabels(t *testing.T) {
	handler := NewDeriveBreadcrumbsHandler(breadcrumbs.NewDeriver(breadcrumbs.Config{}), nil, nil)

	err := handler.Execute(context.Background(), DeriveBreadcrumbsCommand{
		Path:  "/menu",
		Items: []breadcrumbs.Item{{Label: "Menu", Href: "/menu"}, {Label: " "}},
	})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	if err := (DeriveBreadcrumbsCommand{}).Validate(); err != nil {
		t.Fatalf("expected empty path to be valid, got %v", err)
	}
}
