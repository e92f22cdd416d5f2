package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// WithTraceID attaches a trace_id field to the context logger, so every log
// line emitted while handling one outbound request carries the same ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	l := FromContext(ctx)
	return WithContext(ctx, l.With("trace_id", traceID))
}
