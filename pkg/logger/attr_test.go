package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rapturekit/helper/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestZone(t *testing.T) {
	attr := logger.Zone(time.UTC)
	require.Equal(t, "zone", attr.Key)
	assert.Equal(t, "UTC", attr.Value.String())

	attr = logger.Zone(120)
	assert.Equal(t, int64(120), attr.Value.Any())

	empty := logger.Zone(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestLocale(t *testing.T) {
	attr := logger.Locale("ro")
	require.Equal(t, "locale", attr.Key)
	assert.Equal(t, "ro", attr.Value.String())
}

func TestUnit(t *testing.T) {
	attr := logger.Unit(time.Second)
	require.Equal(t, "unit", attr.Key)
	assert.Equal(t, "1s", attr.Value.String())

	empty := logger.Unit(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCommand(t *testing.T) {
	attr := logger.Command("chrono human")
	require.Equal(t, "command", attr.Key)
	assert.Equal(t, "chrono human", attr.Value.String())
}
