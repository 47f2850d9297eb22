package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/logging/console"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)

	minLevel := console.LevelDebug
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return now },
		MinLevel: &minLevel,
	})

	logger := logging.ModuleLogger(provider, "sitecontent.posts")
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"correlation_id": "req-1234",
	})
	logger = logger.WithContext(ctx)

	executionID := uuid.MustParse("8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999")
	logger.Info("posts.load.success",
		"execution_id", executionID,
		"published_at", time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
	)

	got := strings.TrimSpace(buf.String())
	want := "2024-03-14T15:09:26.535897Z INFO [sitecontent.posts] posts.load.success execution_id=8a51a9b1-2d30-4b2c-8ecd-2c0b87dfa999 correlation_id=req-1234 published_at=2024-03-15T08:00:00Z"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	minLevel := console.LevelInfo
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: time.Now,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("sitecontent.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
}

func TestConsoleLogger_QuotesAndPositionalFields(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0) },
	})

	provider.GetLogger("x").Error("posts.load.failed", "error", errors.New("bad front matter"), 42, "orphan", "dangling")

	got := strings.TrimSpace(buf.String())
	for _, fragment := range []string{
		`error="bad front matter"`,
		"field_1=orphan",
		"field_2=dangling",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in %q", fragment, got)
		}
	}
}

func TestConsoleLogger_CommandAndPostFieldsLead(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{
		Writer:   &buf,
		TimeFunc: func() time.Time { return time.Unix(0, 0) },
		Plain:    true,
	})

	logger := logging.WithPostContext(provider.GetLogger("sitecontent.preview"), "blog/rye.md", "rye")
	logger = logging.WithFields(logger, map[string]any{
		"command":   "sitecontent.posts.render",
		"operation": "posts.render",
	})
	logger.Warn("posts.render.slow", "duration_ms", 1200, "attempt", 2)

	got := strings.TrimSpace(buf.String())
	want := "1970-01-01T00:00:00Z WARN [sitecontent.preview] posts.render.slow command=sitecontent.posts.render operation=posts.render post_path=blog/rye.md post_slug=rye attempt=2 duration_ms=1200"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestParseLevel(t *testing.T) {
	if level, ok := console.ParseLevel(" Warning "); !ok || level != console.LevelWarn {
		t.Fatalf("expected warn level, got %v %v", level, ok)
	}
	if _, ok := console.ParseLevel("verbose"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}
