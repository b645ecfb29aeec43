// Package logger is a thin, context-aware layer over log/slog. Configure it
// once with ConfigureLoggingWithOptions; everything else retrieves a logger
// with Get(ctx), which picks up the subsystem and any values attached to the
// context.
package logger

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/nsat/validatron/contexts"
)

// Default subsystem name, set by ConfigureLoggingWithOptions.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which replaces global
// loggers.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	mutedKey     contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	valuesKey    contextKey = "loggerValues"
	loggerKey    contextKey = "logger"
)

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON slog handler as the
// process default (including the legacy log package) and returns it.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// WithMuted suppresses all output from loggers obtained through ctx.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue[contextKey, bool](contexts.EnsureContext(ctx), mutedKey, muted)
}

func isMuted(ctx context.Context) bool {
	muted, _ := contexts.GetValue[contextKey, bool](ctx, mutedKey)

	return muted
}

// WithSubsystem overrides the configured subsystem for loggers obtained
// through ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	return contexts.WithValue[contextKey, string](contexts.EnsureContext(ctx), subsystemKey, name)
}

// GetSubsystem returns the subsystem set on ctx, or the configured default.
func GetSubsystem(ctx context.Context) string {
	if name, ok := contexts.GetValue[contextKey, string](contexts.EnsureContext(ctx), subsystemKey); ok {
		return name
	}

	if name, ok := subsystem.Load().(string); ok {
		return name
	}

	return ""
}

// WithLogger makes Get(ctx) build on the given logger instead of
// slog.Default(). Tests use it to route output to testing.T.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return contexts.WithValue[contextKey, *slog.Logger](contexts.EnsureContext(ctx), loggerKey, logger)
}

// With returns a new context with the given key/value pairs added to every
// logger obtained through it.
func With(ctx context.Context, values ...any) context.Context {
	ctx = contexts.EnsureContext(ctx)

	if len(values) == 0 {
		return ctx
	}

	existing := getValues(ctx)

	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return contexts.WithValue[contextKey, []any](ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := contexts.GetValue[contextKey, []any](ctx, valuesKey)

	return vals
}

// nullHandler discards everything; it backs muted loggers.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger for the first non-nil context given (or none). The
// logger carries the subsystem and any values added with With.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger, ok := contexts.GetValue[contextKey, *slog.Logger](realCtx, loggerKey)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if name := GetSubsystem(realCtx); name != "" {
		logger = logger.With("subsystem", name)
	}

	if vals := getValues(realCtx); vals != nil {
		logger = logger.With(vals...)
	}

	return logger
}
