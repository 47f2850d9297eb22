// Package gologger routes sitecontent loggers through go-logger. Module names
// are qualified under the "sitecontent" namespace, so a focus list of
// "posts" and "commands" narrows output to those two modules.
package gologger

import (
	"context"
	"fmt"
	"maps"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

const namespace = "sitecontent"

// Config mirrors the logging section of runtime configuration.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

var levels = map[string]string{
	"trace":   glog.Trace,
	"debug":   glog.Debug,
	"info":    glog.Info,
	"warn":    glog.Warn,
	"warning": glog.Warn,
	"error":   glog.Error,
	"fatal":   glog.Fatal,
}

var formats = map[string]func() glog.Option{
	"":        glog.WithLoggerTypeJSON,
	"json":    glog.WithLoggerTypeJSON,
	"console": glog.WithLoggerTypeConsole,
	"pretty":  glog.WithLoggerTypePretty,
}

// Provider hands out go-logger children named after sitecontent modules.
type Provider struct {
	root *glog.BaseLogger
}

// NewProvider builds the go-logger root described by cfg.
func NewProvider(cfg Config) (*Provider, error) {
	format, ok := formats[strings.ToLower(strings.TrimSpace(cfg.Format))]
	if !ok {
		return nil, fmt.Errorf("logging: go-logger has no %q format", cfg.Format)
	}
	options := []glog.Option{format()}
	if level, ok := levels[strings.ToLower(strings.TrimSpace(cfg.Level))]; ok {
		options = append(options, glog.WithLevel(level))
	}
	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)
	var focus []string
	for _, name := range cfg.Focus {
		if qualified := QualifiedName(name); qualified != "" {
			focus = append(focus, qualified)
		}
	}
	if len(focus) > 0 {
		root.Focus(focus...)
	}
	return &Provider{root: root}, nil
}

// QualifiedName places a module name under the sitecontent namespace.
// Blank names stay blank.
func QualifiedName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == namespace || strings.HasPrefix(name, namespace+".") {
		return name
	}
	return namespace + "." + name
}

// GetLogger returns the go-logger child for the named module.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	if name = QualifiedName(name); name == "" {
		return wrap(p.root)
	}
	return wrap(p.root.GetLogger(name))
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

var (
	_ interfaces.Logger       = (*adapter)(nil)
	_ interfaces.FieldsLogger = (*adapter)(nil)
)

func (a *adapter) Trace(msg string, args ...any) { a.inner.Trace(msg, args...) }
func (a *adapter) Debug(msg string, args ...any) { a.inner.Debug(msg, args...) }
func (a *adapter) Info(msg string, args ...any)  { a.inner.Info(msg, args...) }
func (a *adapter) Warn(msg string, args ...any)  { a.inner.Warn(msg, args...) }
func (a *adapter) Error(msg string, args ...any) { a.inner.Error(msg, args...) }
func (a *adapter) Fatal(msg string, args ...any) { a.inner.Fatal(msg, args...) }

// WithFields is a no-op for go-logger values without field support.
func (a *adapter) WithFields(fields map[string]any) interfaces.Logger {
	with, ok := a.inner.(glog.FieldsLogger)
	if !ok || len(fields) == 0 {
		return a
	}
	return wrap(with.WithFields(maps.Clone(fields)))
}

// WithContext binds ctx and copies the command fields stored on it, such as
// execution_id, onto the child.
func (a *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return a
	}
	child := wrap(a.inner.WithContext(ctx))
	if fields := logging.ContextFields(ctx); len(fields) > 0 {
		return logging.WithFields(child, fields)
	}
	return child
}
