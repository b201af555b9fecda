package logx

import (
	"context"
	"log"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// WithLogger stores a request-scoped logger in the context.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request-scoped logger, or the default logger when
// the context carries none (e.g. in cmds and tests).
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}
