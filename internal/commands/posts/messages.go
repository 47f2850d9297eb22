package postscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-sitecontent/internal/breadcrumbs"
)

const (
	renderPostMessageType        = "sitecontent.posts.render"
	renderDirectoryMessageType   = "sitecontent.posts.render_directory"
	deriveBreadcrumbsMessageType = "sitecontent.breadcrumbs.derive"
)

// RenderPostCommand loads and builds the Markdown post stored at Path,
// relative to the configured content directory.
type RenderPostCommand struct {
	Path string `json:"path"`
}

// Type implements command.Message.
func (RenderPostCommand) Type() string { return renderPostMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd RenderPostCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank(
			"sitecontent.posts.render.path_required", "path is required",
		))),
	)
}

// RenderDirectoryCommand builds every post below Directory.
type RenderDirectoryCommand struct {
	Directory     string `json:"directory"`
	IncludeDrafts bool   `json:"include_drafts,omitempty"`
	// Pattern overrides the configured glob, e.g. "*.markdown".
	Pattern string `json:"pattern,omitempty"`
}

// Type implements command.Message.
func (RenderDirectoryCommand) Type() string { return renderDirectoryMessageType }

// Validate ensures the directory and pattern are usable.
func (cmd RenderDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(notBlank(
			"sitecontent.posts.render_directory.directory_required", "directory is required",
		))),
		validation.Field(&cmd.Pattern, validation.By(func(value any) error {
			if strings.Contains(value.(string), "/") {
				return validation.NewError("sitecontent.posts.render_directory.pattern_invalid", "pattern must not contain path separators")
			}
			return nil
		})),
	)
}

// DeriveBreadcrumbsCommand derives the trail and BreadcrumbList for Path.
// Items replaces the path derived trail when set.
type DeriveBreadcrumbsCommand struct {
	Path      string                `json:"path"`
	ShowHome  *bool                 `json:"show_home,omitempty"`
	HomeLabel string                `json:"home_label,omitempty"`
	LabelCase breadcrumbs.LabelCase `json:"label_case,omitempty"`
	Items     []breadcrumbs.Item    `json:"items,omitempty"`
}

// Type implements command.Message.
func (DeriveBreadcrumbsCommand) Type() string { return deriveBreadcrumbsMessageType }

// Validate accepts any path, including "" and "/", but every custom item
// needs a label.
func (cmd DeriveBreadcrumbsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.LabelCase, validation.By(func(value any) error {
			if !value.(breadcrumbs.LabelCase).Valid() {
				return validation.NewError("sitecontent.breadcrumbs.derive.label_case_invalid", "label case must be sentence or title")
			}
			return nil
		})),
		validation.Field(&cmd.Items, validation.By(func(value any) error {
			for _, item := range value.([]breadcrumbs.Item) {
				if strings.TrimSpace(item.Label) == "" {
					return validation.NewError("sitecontent.breadcrumbs.derive.item_label_required", "breadcrumb items require a label")
				}
			}
			return nil
		})),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
