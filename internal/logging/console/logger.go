// Package console writes one human readable line per log entry. It backs the
// preview CLI and the tests, where entries go to stderr or a buffer.
//
// A line reads
//
//	2024-03-14T15:09:26Z INFO [sitecontent.posts] posts.load.success command=... post_slug=rye
//
// The bracketed scope is the entry's module field, falling back to the logger
// name. Command and post identifiers come first, the remaining fields follow
// in key order.
package console

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-sitecontent/internal/logging"
	"github.com/goliatone/go-sitecontent/pkg/interfaces"
)

// Level is the severity of an entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

var levelColors = map[Level]lipgloss.Color{
	LevelTrace: lipgloss.Color("8"),
	LevelDebug: lipgloss.Color("6"),
	LevelInfo:  lipgloss.Color("2"),
	LevelWarn:  lipgloss.Color("3"),
	LevelError: lipgloss.Color("1"),
	LevelFatal: lipgloss.Color("5"),
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return levelNames[LevelInfo]
}

// ParseLevel maps a configuration level name onto a Level.
func ParseLevel(name string) (Level, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "WARNING" {
		name = "WARN"
	}
	for level, label := range levelNames {
		if label == name {
			return level, true
		}
	}
	return LevelInfo, false
}

// leadingFields are printed before all other fields, in this order.
var leadingFields = []string{"command", "operation", "execution_id", "post_path", "post_slug"}

const scopeField = "module"

// Options configures the provider.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel *Level
	// Plain turns off level colouring. Writers that are not terminals are
	// never coloured.
	Plain bool
}

type sink struct {
	mu       sync.Mutex
	writer   io.Writer
	clock    func() time.Time
	minLevel Level
	levels   map[Level]string
}

// NewProvider constructs a console logger provider. Entries go to stdout at
// DEBUG and above unless Options says otherwise.
func NewProvider(opts Options) interfaces.LoggerProvider {
	s := &sink{
		writer:   opts.Writer,
		clock:    opts.TimeFunc,
		minLevel: LevelDebug,
	}
	if s.writer == nil {
		s.writer = os.Stdout
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if opts.MinLevel != nil {
		s.minLevel = *opts.MinLevel
	}

	renderer := lipgloss.NewRenderer(s.writer)
	s.levels = make(map[Level]string, len(levelNames))
	for level, name := range levelNames {
		if opts.Plain {
			s.levels[level] = name
			continue
		}
		s.levels[level] = renderer.NewStyle().Foreground(levelColors[level]).Bold(level >= LevelError).Render(name)
	}
	return s
}

func (s *sink) GetLogger(name string) interfaces.Logger {
	return &entryLogger{sink: s, scope: strings.TrimSpace(name)}
}

type entryLogger struct {
	sink   *sink
	scope  string
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*entryLogger)(nil)
	_ interfaces.FieldsLogger = (*entryLogger)(nil)
)

func (l *entryLogger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l *entryLogger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l *entryLogger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l *entryLogger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l *entryLogger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }
func (l *entryLogger) Fatal(msg string, args ...any) { l.write(LevelFatal, msg, args) }

func (l *entryLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	child := *l
	child.fields = make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(child.fields, l.fields)
	maps.Copy(child.fields, fields)
	return &child
}

func (l *entryLogger) WithContext(ctx context.Context) interfaces.Logger {
	child := *l
	child.ctx = ctx
	return &child
}

func (l *entryLogger) write(level Level, msg string, args []any) {
	if l.sink == nil || level < l.sink.minLevel {
		return
	}

	fields := make(map[string]any, len(l.fields)+len(args)/2)
	maps.Copy(fields, l.fields)
	maps.Copy(fields, logging.ContextFields(l.ctx))
	appendArgs(fields, args)

	scope := l.scope
	if module, ok := fields[scopeField].(string); ok && module != "" {
		scope = module
	}
	delete(fields, scopeField)

	line := l.sink.line(level, scope, msg, fields)

	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	_, _ = io.WriteString(l.sink.writer, line)
}

// appendArgs pairs variadic key/value arguments into fields. A value without
// a usable string key lands under field_N, N being its pair position.
func appendArgs(fields map[string]any, args []any) {
	for i := 0; i < len(args); i += 2 {
		position := "field_" + strconv.Itoa(i/2)
		if i+1 == len(args) {
			fields[position] = args[i]
			return
		}
		if key, ok := args[i].(string); ok && key != "" {
			fields[key] = args[i+1]
			continue
		}
		fields[position] = args[i+1]
	}
}

func (s *sink) line(level Level, scope, msg string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString(s.clock().UTC().Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(s.levels[level])
	if scope != "" {
		b.WriteString(" [")
		b.WriteString(scope)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(msg)

	writeField := func(key string) {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(formatValue(fields[key]))
		delete(fields, key)
	}
	for _, key := range leadingFields {
		if _, ok := fields[key]; ok {
			writeField(key)
		}
	}
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		writeField(key)
	}
	b.WriteByte('\n')
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return quote(v)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case time.Duration:
		return v.String()
	case error:
		return quote(v.Error())
	case fmt.Stringer:
		return quote(v.String())
	case bool:
		return strconv.FormatBool(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return quote(fmt.Sprint(v))
	}
}

// quote wraps values that would break key=value parsing.
func quote(value string) string {
	if value == "" || strings.ContainsFunc(value, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(value)
	}
	return value
}
