package log

import (
	"context"
)

type contextLogKeyType struct{}

// Use a unique type so that there will never be a conflict with a different key
var contextLogKey contextLogKeyType

// LogContext will return a new context with the given logger added
// to the given context.
func LogContext(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, contextLogKey, logger)
}

// FromContext will extract a logger from a context if it contains one,
// or return the default logger if it doesn't.
func FromContext(ctx context.Context) Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextLogKey).(Logger); ok {
			return logger
		}
	}
	return Default()
}

// ContextWith returns a context whose logger carries the given fields in
// addition to those of the context's current logger.
func ContextWith(ctx context.Context, keysAndValues ...interface{}) context.Context {
	return LogContext(ctx, FromContext(ctx).With(keysAndValues...))
}
