package commands

import (
	"context"
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const textCodeNamespace = "SITECONTENT"

// Text code suffixes. The full code is namespaced by the handler operation,
// so a timeout while rendering a post reads SITECONTENT_POSTS_RENDER_TIMEOUT.
const (
	suffixInvalid  = "INVALID"
	suffixCanceled = "CANCELED"
	suffixTimeout  = "TIMEOUT"
	suffixContext  = "CONTEXT_ERROR"
	suffixFailed   = "FAILED"
)

// TextCode returns the go-errors text code a handler for operation attaches
// to failures of the given kind.
func TextCode(operation, suffix string) string {
	parts := []string{textCodeNamespace}
	if op := strings.TrimSpace(operation); op != "" {
		op = strings.NewReplacer(".", "_", "-", "_", " ", "_").Replace(op)
		parts = append(parts, strings.ToUpper(op))
	}
	return strings.Join(append(parts, suffix), "_")
}

func subject(operation string) string {
	if operation == "" {
		return "sitecontent command"
	}
	return operation
}

func wrapValidationError(operation string, err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, subject(operation)+": invalid message").
		WithTextCode(TextCode(operation, suffixInvalid))
}

func wrapContextError(operation string, err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	name := subject(operation)
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, name+": cancelled").
			WithTextCode(TextCode(operation, suffixCanceled))
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, name+": ran past its deadline").
			WithTextCode(TextCode(operation, suffixTimeout))
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, name+": context error").
			WithTextCode(TextCode(operation, suffixContext))
	}
}

func wrapExecuteError(operation string, err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, subject(operation)+": failed").
		WithTextCode(TextCode(operation, suffixFailed))
}
