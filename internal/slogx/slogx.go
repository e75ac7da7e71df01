// Package slogx wraps log/slog the way the teacher's pkg/log wraps it:
// named, prefix-scoped loggers plus context-carried loggers so deep call
// chains don't need a logger threaded through every signature.
package slogx

import (
	"context"
	"log/slog"
	"os"
)

type ctxKey struct{}

var base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetDefault overrides the package-level base logger, e.g. to inject a JSON
// handler or a test-capturing handler.
func SetDefault(l *slog.Logger) {
	base = l
}

// New returns a logger scoped under the given component prefix, e.g.
// "cdx2spdx", "jsonstream", "progress".
func New(prefix string) *slog.Logger {
	return base.With(slog.String("component", prefix))
}

// WithContext attaches a logger to ctx for retrieval by FromContext.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached to ctx, or a default component-less
// logger if none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return base
}

// Component returns the context's logger (or the package default) scoped
// under the given component prefix, for call sites that have a ctx handy
// but don't want to carry a *slog.Logger field everywhere.
func Component(ctx context.Context, prefix string) *slog.Logger {
	return FromContext(ctx).With(slog.String("component", prefix))
}
