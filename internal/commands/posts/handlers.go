package postscmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
	"github.com/goliatone/go-sitecontent/internal/commands"
	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/internal/posts"
	"github.com/goliatone/go-sitecontent/internal/structureddata"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

const (
	renderOperation          = "posts.render"
	renderDirectoryOperation = "posts.render_directory"
	deriveOperation          = "breadcrumbs.derive"
)

var (
	_ command.Commander[RenderPostCommand]        = (*RenderPostHandler)(nil)
	_ command.Commander[RenderDirectoryCommand]   = (*RenderDirectoryHandler)(nil)
	_ command.Commander[DeriveBreadcrumbsCommand] = (*DeriveBreadcrumbsHandler)(nil)
)

// PostSink receives a rendered post.
type PostSink func(ctx context.Context, post *posts.Post) error

// TrailSink receives a derived trail together with its structured data.
type TrailSink func(ctx context.Context, trail breadcrumbs.Trail, data structureddata.BreadcrumbList) error

// Deriver is the subset of *breadcrumbs.Deriver used by the handlers.
type Deriver interface {
	Derive(path string, opts breadcrumbs.Options) breadcrumbs.Trail
	StructuredData(trail breadcrumbs.Trail) structureddata.BreadcrumbList
}

// RenderPostHandler renders single posts via the shared command handler foundation.
type RenderPostHandler struct {
	inner *commands.Handler[RenderPostCommand]
}

// NewRenderPostHandler creates a handler bound to the supplied posts service.
// A nil sink discards the result.
func NewRenderPostHandler(service posts.Service, sink PostSink, logger interfaces.Logger, opts ...commands.HandlerOption[RenderPostCommand]) *RenderPostHandler {
	baseLogger := orNoOp(logger)

	exec := func(ctx context.Context, msg RenderPostCommand) error {
		post, err := service.Load(ctx, msg.Path)
		if err != nil {
			return err
		}
		logging.WithPostContext(baseLogger, post.SourcePath, post.Slug).Debug("posts.command.render.completed",
			"words", post.WordCount,
		)
		if sink == nil {
			return nil
		}
		return sink(ctx, post)
	}

	handlerOpts := []commands.HandlerOption[RenderPostCommand]{
		commands.WithLogger[RenderPostCommand](baseLogger),
		commands.WithOperation[RenderPostCommand](renderOperation),
		commands.WithMessageFields(func(msg RenderPostCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[RenderPostCommand]()),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderPostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[RenderPostCommand].
func (h *RenderPostHandler) Execute(ctx context.Context, msg RenderPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// RenderDirectoryHandler renders every post in a directory, newest first.
type RenderDirectoryHandler struct {
	inner *commands.Handler[RenderDirectoryCommand]
}

// NewRenderDirectoryHandler creates a handler bound to the supplied posts
// service. The sink is called once per post and the first sink error stops
// the run.
func NewRenderDirectoryHandler(service posts.Service, sink PostSink, logger interfaces.Logger, opts ...commands.HandlerOption[RenderDirectoryCommand]) *RenderDirectoryHandler {
	baseLogger := orNoOp(logger)

	exec := func(ctx context.Context, msg RenderDirectoryCommand) error {
		list, err := service.LoadAll(ctx, msg.Directory, posts.ListOptions{
			IncludeDrafts: msg.IncludeDrafts,
			Pattern:       msg.Pattern,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"post_count": len(list),
		}).Info("posts.command.render_directory.completed")
		if sink == nil {
			return nil
		}
		for _, post := range list {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := sink(ctx, post); err != nil {
				return err
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[RenderDirectoryCommand]{
		commands.WithLogger[RenderDirectoryCommand](baseLogger),
		commands.WithOperation[RenderDirectoryCommand](renderDirectoryOperation),
		commands.WithMessageFields(func(msg RenderDirectoryCommand) map[string]any {
			fields := map[string]any{"directory": msg.Directory}
			if msg.IncludeDrafts {
				fields["include_drafts"] = true
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &RenderDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[RenderDirectoryCommand].
func (h *RenderDirectoryHandler) Execute(ctx context.Context, msg RenderDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DeriveBreadcrumbsHandler derives breadcrumb trails via the shared command handler foundation.
type DeriveBreadcrumbsHandler struct {
	inner *commands.Handler[DeriveBreadcrumbsCommand]
}

// NewDeriveBreadcrumbsHandler creates a handler bound to deriver.
func NewDeriveBreadcrumbsHandler(deriver Deriver, sink TrailSink, logger interfaces.Logger, opts ...commands.HandlerOption[DeriveBreadcrumbsCommand]) *DeriveBreadcrumbsHandler {
	baseLogger := orNoOp(logger)

	exec := func(ctx context.Context, msg DeriveBreadcrumbsCommand) error {
		trail := deriver.Derive(msg.Path, breadcrumbs.Options{
			Items:     msg.Items,
			ShowHome:  msg.ShowHome,
			HomeLabel: msg.HomeLabel,
			LabelCase: msg.LabelCase,
		})
		data := deriver.StructuredData(trail)
		if sink == nil {
			return nil
		}
		return sink(ctx, trail, data)
	}

	handlerOpts := []commands.HandlerOption[DeriveBreadcrumbsCommand]{
		commands.WithLogger[DeriveBreadcrumbsCommand](baseLogger),
		commands.WithOperation[DeriveBreadcrumbsCommand](deriveOperation),
		commands.WithMessageFields(func(msg DeriveBreadcrumbsCommand) map[string]any {
			fields := map[string]any{"path": msg.Path}
			if len(msg.Items) > 0 {
				fields["item_count"] = len(msg.Items)
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DeriveBreadcrumbsHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DeriveBreadcrumbsCommand].
func (h *DeriveBreadcrumbsHandler) Execute(ctx context.Context, msg DeriveBreadcrumbsCommand) error {
	return h.inner.Execute(ctx, msg)
}

func orNoOp(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return logging.NoOp()
	}
	return logger
}
