package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polkiloo/projectdesk/internal/config"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(&config.Config{LogLevel: slog.LevelInfo})
	require.NotNil(t, l)

	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.IsType(t, &slog.JSONHandler{}, l.Handler())
}

func TestNewHonoursConfiguredLevel(t *testing.T) {
	l := New(&config.Config{LogLevel: slog.LevelDebug})
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	l = New(&config.Config{LogLevel: slog.LevelError})
	assert.False(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestLoggerTagsService(t *testing.T) {
	var buf bytes.Buffer
	newWithWriter(&buf, slog.LevelInfo).Info("order accepted", slog.Int64("id", 42))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "projectdesk", entry["service"])
	assert.Equal(t, "order accepted", entry["msg"])
	assert.EqualValues(t, 42, entry["id"])
}
