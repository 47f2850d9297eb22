package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// DefaultHandlerTimeout bounds every command execution unless overridden.
const DefaultHandlerTimeout = 30 * time.Second

// HandlerOption configures a Handler instance.
type HandlerOption[T command.Message] func(*Handler[T])

// Handler wraps command execution with shared concerns: validation, timeout,
// structured logging and error categorisation.
type Handler[T command.Message] struct {
	exec          command.CommandFunc[T]
	logger        interfaces.Logger
	timeout       time.Duration
	operation     string
	messageFields func(T) map[string]any
	telemetry     Telemetry[T]
	newID         func() uuid.UUID
	now           func() time.Time
}

var _ command.Commander[command.Message] = (*Handler[command.Message])(nil)

// NewHandler creates a handler that satisfies go-command's Commander interface.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: DefaultHandlerTimeout,
		newID:   uuid.New,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Execute conforms to command.Commander[T].Execute. The message is validated
// before the wrapped function runs, and failures come back as go-errors
// values tagged with a category and text code.
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return wrapValidationError(h.operation, err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return wrapContextError(h.operation, err)
	}

	fields := map[string]any{
		"command":      command.GetMessageType(msg),
		"execution_id": h.newID().String(),
	}
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	if h.messageFields != nil {
		for key, value := range h.messageFields(msg) {
			fields[key] = value
		}
	}
	ctx = logging.ContextWithFields(ctx, fields)
	logger := logging.WithFields(h.logger.WithContext(ctx), fields)
	logger.Debug("command.execute.start")

	started := h.now()
	err := h.exec(ctx, msg)
	status := TelemetryStatusSuccess
	switch {
	case err != nil:
		status = TelemetryStatusFailed
		if ctxErr := ctx.Err(); ctxErr != nil {
			status = TelemetryStatusContextError
		}
	case ctx.Err() != nil:
		err = ctx.Err()
		status = TelemetryStatusContextError
	}

	info := TelemetryInfo{
		Command:   command.GetMessageType(msg),
		Operation: h.operation,
		Fields:    fields,
		Duration:  h.now().Sub(started),
		Error:     err,
		Status:    status,
		Logger:    logger,
	}
	if h.telemetry != nil {
		h.telemetry(ctx, msg, info)
	} else {
		logOutcome(logger, info)
	}

	switch status {
	case TelemetryStatusContextError:
		return wrapContextError(h.operation, err)
	case TelemetryStatusFailed:
		return wrapExecuteError(h.operation, err)
	default:
		return nil
	}
}

// WithTimeout overrides the default execution timeout. Zero or negative
// values disable the timeout.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		if timeout <= 0 {
			h.timeout = 0
			return
		}
		h.timeout = timeout
	}
}

// WithLogger injects the logger used during execution. Defaults to a no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		if logger == nil {
			h.logger = logging.NoOp()
			return
		}
		h.logger = logger
	}
}

// WithOperation sets an operation name emitted with every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithMessageFields adds message derived fields to every log entry.
func WithMessageFields[T command.Message](fn func(T) map[string]any) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.messageFields = fn
	}
}

// WithTelemetry replaces the default outcome logging with fn.
func WithTelemetry[T command.Message](fn Telemetry[T]) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.telemetry = fn
	}
}

// WithIDGenerator overrides the execution id source.
func WithIDGenerator[T command.Message](fn func() uuid.UUID) HandlerOption[T] {
	return func(h *Handler[T]) {
		if fn != nil {
			h.newID = fn
		}
	}
}

func (h *Handler[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}
