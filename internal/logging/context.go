package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type contextKey struct{}

//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = contextKey{}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithFields derives a logger from ctx that always emits keyvals, such as the
// run id of a link check, and returns it along with a context carrying it.
func WithFields(ctx context.Context, keyvals ...any) (context.Context, *log.Logger) {
	logger := FromContext(ctx).With(keyvals...)
	return WithLogger(ctx, logger), logger
}
