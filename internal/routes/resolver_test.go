package routes

import (
	"errors"
	"testing"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	resolver, err := NewResolver(Config{
		BaseURL: "https://bakery.example/",
		Group:   "frontend",
		Paths: map[string]string{
			"home": "/",
			"post": "/blog/:slug",
		},
	})
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return resolver
}

func TestResolverBuildsAbsoluteURL(t *testing.T) {
	resolver := newTestResolver(t)

	got, err := resolver.PostURL("post", "honey-cake")
	if err != nil {
		t.Fatalf("PostURL: %v", err)
	}
	if got != "https://bakery.example/blog/honey-cake" {
		t.Fatalf("unexpected url %q", got)
	}
}

func TestResolverPath(t *testing.T) {
	resolver := newTestResolver(t)

	got, err := resolver.Path("post", map[string]any{"slug": "rye-loaf"})
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if got != "/blog/rye-loaf" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestResolverUnknownRoute(t *testing.T) {
	resolver := newTestResolver(t)

	if _, err := resolver.URL("missing", nil); err == nil {
		t.Fatalf("expected error for undeclared route")
	}
	if _, err := resolver.URL(" ", nil); !errors.Is(err, ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound for empty name, got %v", err)
	}
}

func TestNilResolver(t *testing.T) {
	var resolver *Resolver
	if _, err := resolver.URL("post", nil); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}
