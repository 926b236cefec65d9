package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapturekit/helper/pkg/logger"
)

type localeKey struct{}

func localeAttr(ctx context.Context) (slog.Attr, bool) {
	tag, ok := ctx.Value(localeKey{}).(string)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.Locale(tag), true
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestContextHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(buf, nil), nil, localeAttr))
	ctx := context.WithValue(context.Background(), localeKey{}, "ro")

	t.Run("appends extracted attributes", func(t *testing.T) {
		log.InfoContext(ctx, "rendered")
		assert.Equal(t, "ro", decode(t, buf)["locale"])
	})

	t.Run("skips extractors without a value", func(t *testing.T) {
		log.InfoContext(context.Background(), "rendered")
		assert.NotContains(t, decode(t, buf), "locale")
	})

	t.Run("explicit attributes win", func(t *testing.T) {
		log.InfoContext(ctx, "rendered", logger.Locale("fr"))
		assert.Equal(t, "fr", decode(t, buf)["locale"])
	})

	t.Run("survives WithAttrs and WithGroup", func(t *testing.T) {
		log.With(slog.String("svc", "chrono")).WithGroup("req").InfoContext(ctx, "rendered")
		entry := decode(t, buf)
		assert.Equal(t, "chrono", entry["svc"])
		assert.Equal(t, map[string]any{"locale": "ro"}, entry["req"])
	})
}

func TestNewContextHandler_NoExtractors(t *testing.T) {
	inner := slog.NewTextHandler(&bytes.Buffer{}, nil)
	assert.Same(t, inner, logger.NewContextHandler(inner))
	assert.Same(t, inner, logger.NewContextHandler(inner, nil))
}

func TestContextHandler_EmptyAttr(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(func(context.Context) (slog.Attr, bool) {
			return logger.Error(nil), true
		}),
	)
	log.InfoContext(context.Background(), "rendered")
	entry := decode(t, buf)
	assert.Equal(t, "rendered", entry["msg"])
	assert.Len(t, entry, 3)
}
