package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

const contentDir = "../../internal/posts/testdata/content"

func TestRunBreadcrumbsOnly(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{
		"--config-base-url", "https://bakery.example",
		"--path", "/locations/downtown",
		"--log-level", "error",
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Locations") || !strings.Contains(got, "Downtown") {
		t.Fatalf("expected breadcrumb line, got %q", got)
	}
	if !strings.Contains(got, `"@type":"BreadcrumbList"`) || !strings.Contains(got, "https://bakery.example/locations/downtown") {
		t.Fatalf("expected BreadcrumbList JSON-LD, got %q", got)
	}
}

func TestRunRendersPostAsJSON(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{
		"--config-base-url", "https://bakery.example",
		"--content-dir", contentDir,
		"--file", "blog/rye-loaf.md",
		"--format", "json",
		"--log-level", "error",
	}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if decoded["slug"] != "rye" {
		t.Fatalf("unexpected slug %v", decoded["slug"])
	}
}

func TestRunRequiresFileOrPath(t *testing.T) {
	err := run(context.Background(), []string{"--log-level", "error"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "--file or --path") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	err := run(context.Background(), []string{
		"--content-dir", contentDir,
		"--file", "blog/rye-loaf.md",
		"--format", "pdf",
		"--log-level", "error",
	}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
