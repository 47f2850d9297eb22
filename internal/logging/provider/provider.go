// Package provider selects the logger provider named in runtime configuration.
package provider

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-sitecontent/internal/logging/console"
	"github.com/goliatone/go-sitecontent/internal/logging/gologger"
	"github.com/goliatone/go-sitecontent/internal/runtimeconfig"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Option customises provider construction.
type Option func(*options)

type options struct {
	writer io.Writer
}

// WithWriter redirects console provider output, stdout by default.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New builds the logger provider described by cfg. A nil provider is
// returned for "noop" so callers fall back to logging.NoOp.
func New(cfg runtimeconfig.LoggingConfig, opts ...Option) (interfaces.LoggerProvider, error) {
	resolved := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}

	switch name := strings.ToLower(strings.TrimSpace(cfg.Provider)); name {
	case "", "console":
		consoleOpts := console.Options{Writer: resolved.writer}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			consoleOpts.MinLevel = &level
		}
		return console.NewProvider(consoleOpts), nil
	case "gologger":
		p, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	case "noop":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, name)
	}
}
