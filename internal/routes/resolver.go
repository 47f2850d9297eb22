// Package routes builds site URLs from named route templates using go-urlkit.
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

var ErrRouteNotFound = errors.New("routes: route not found")
var ErrGroupNotFound = errors.New("routes: route group not found")
var ErrBuildFailed = errors.New("routes: url build failed")

// Config describes a single route group rooted at BaseURL.
type Config struct {
	BaseURL string
	Group   string
	Paths   map[string]string
}

// Resolver resolves named routes into absolute URLs and rooted paths.
type Resolver struct {
	group *urlkit.Group
	name  string
}

// NewResolver registers cfg with a go-urlkit route manager.
func NewResolver(cfg Config) (*Resolver, error) {
	name := strings.TrimSpace(cfg.Group)
	if name == "" {
		name = "frontend"
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	manager := urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    name,
				BaseURL: base,
				Paths:   cfg.Paths,
			},
		},
	})

	group, err := lookupGroup(manager, name)
	if err != nil {
		return nil, err
	}
	return &Resolver{group: group, name: name}, nil
}

// URL builds the absolute URL for route. Params fill ":name" placeholders.
func (r *Resolver) URL(route string, params map[string]any) (string, error) {
	if r == nil || r.group == nil {
		return "", fmt.Errorf("%w: resolver not configured", ErrGroupNotFound)
	}
	builder, err := safeBuilder(r.group, route)
	if err != nil {
		return "", err
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}
	built, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBuildFailed, route, err)
	}
	return built, nil
}

// Path builds the rooted path for route, without scheme and host.
func (r *Resolver) Path(route string, params map[string]any) (string, error) {
	raw, err := r.URL(route, params)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("routes: parse %q: %w", raw, err)
	}
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return path, nil
}

// PostURL is a shorthand for routes using a single slug parameter.
func (r *Resolver) PostURL(route, slug string) (string, error) {
	return r.URL(route, map[string]any{"slug": slug})
}

func safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	route = strings.TrimSpace(route)
	if route == "" {
		return nil, fmt.Errorf("%w: empty route name", ErrRouteNotFound)
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("%w: %s (%v)", ErrRouteNotFound, route, rec)
		}
	}()
	builder = group.Builder(route)
	if builder == nil {
		return nil, fmt.Errorf("%w: %s", ErrRouteNotFound, route)
	}
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("%w: %s", ErrGroupNotFound, name)
		}
	}()
	group = manager.Group(name)
	if group == nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, name)
	}
	return group, nil
}
