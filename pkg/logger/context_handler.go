package logger

import (
	"context"
	"log/slog"
	"slices"
)

// ContextExtractor reads one attribute from ctx. It reports false when ctx
// carries nothing for it.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// ContextHandler is a slog.Handler that runs its extractors on every record
// it handles and appends what they find.
//
// Extracted attributes never replace attributes logged explicitly: if the
// record already has a top-level key, the extracted one is dropped.
type ContextHandler struct {
	inner      slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps inner. Nil extractors are skipped; with none left
// inner is returned as is.
func NewContextHandler(inner slog.Handler, extractors ...ContextExtractor) slog.Handler {
	extractors = slices.DeleteFunc(slices.Clone(extractors), func(ex ContextExtractor) bool { return ex == nil })
	if len(extractors) == 0 {
		return inner
	}
	return &ContextHandler{inner: inner, extractors: extractors}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if ctx == nil {
		return h.inner.Handle(ctx, rec)
	}

	var seen map[string]bool
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || attr.Equal(slog.Attr{}) {
			continue
		}
		if seen == nil {
			seen = recordKeys(rec)
		}
		if seen[attr.Key] {
			continue
		}
		seen[attr.Key] = true
		rec.AddAttrs(attr)
	}
	return h.inner.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs), extractors: h.extractors}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name), extractors: h.extractors}
}

func recordKeys(rec slog.Record) map[string]bool {
	keys := make(map[string]bool, rec.NumAttrs())
	rec.Attrs(func(a slog.Attr) bool {
		keys[a.Key] = true
		return true
	})
	return keys
}
