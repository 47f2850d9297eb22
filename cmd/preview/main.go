package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-sitecontent"
	logprovider "github.com/goliatone/go-sitecontent/internal/logging/provider"
	"github.com/goliatone/go-sitecontent/internal/preview"
	"github.com/goliatone/go-sitecontent/internal/structureddata"
)

const (
	formatTerminal = "terminal"
	formatJSON     = "json"
	formatHTML     = "html"
	formatJSONLD   = "jsonld"
)

var moduleBuilder = sitecontent.New

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("preview: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	baseURL := fs.String("config-base-url", "http://localhost", "Absolute site root used for canonical and JSON-LD urls")
	siteName := fs.String("site-name", "Site", "Publisher name recorded on article JSON-LD")
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	filePath := fs.String("file", "", "Markdown file to preview (relative to the content root)")
	format := fs.String("format", formatTerminal, "Output format: terminal, json, html or jsonld")
	path := fs.String("path", "", "Only derive breadcrumbs and JSON-LD for this url path")
	hideHome := fs.Bool("hide-home", false, "Omit the Home crumb from derived trails")
	labelCase := fs.String("label-case", "sentence", "Breadcrumb label case: sentence or title")
	logLevel := fs.String("log-level", "warn", "Console log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := sitecontent.DefaultConfig()
	cfg.Site.BaseURL = strings.TrimSpace(*baseURL)
	cfg.Site.Name = *siteName
	cfg.Markdown.ContentDir = *contentDir
	cfg.Breadcrumbs.ShowHome = !*hideHome
	cfg.Breadcrumbs.LabelCase = *labelCase
	cfg.Logging.Level = *logLevel

	provider, err := logprovider.New(cfg.Logging, logprovider.WithWriter(os.Stderr))
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	module, err := moduleBuilder(cfg, sitecontent.WithLoggerProvider(provider))
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	if *path != "" {
		return writeBreadcrumbs(ctx, module, *path, out)
	}
	if *filePath == "" {
		return fmt.Errorf("--file or --path is required")
	}

	post, err := module.RenderPost(ctx, *filePath)
	if err != nil {
		return fmt.Errorf("render post: %w", err)
	}

	switch strings.ToLower(*format) {
	case formatTerminal:
		_, err = io.WriteString(out, preview.Terminal(post))
	case formatJSON:
		err = writeJSON(out, post)
	case formatHTML:
		_, err = fmt.Fprintln(out, post.HTML)
	case formatJSONLD:
		var script string
		if script, err = post.JSONLD(); err == nil {
			_, err = fmt.Fprintln(out, script)
		}
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	return err
}

func writeBreadcrumbs(ctx context.Context, module *sitecontent.Module, path string, out io.Writer) error {
	trail, data, err := module.Breadcrumbs(ctx, path, sitecontent.BreadcrumbOptions{})
	if err != nil {
		return fmt.Errorf("derive breadcrumbs: %w", err)
	}
	if line := preview.Breadcrumbs(trail); line != "" {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	script, err := structureddata.Script(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, script)
	return err
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
