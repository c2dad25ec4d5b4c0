package iologger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.level), v.level)
	}
}

func TestNewHandler(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		msg    string
		format string
		substr string
	}{
		{"json", "json", `"msg":"hello"`},
		{"text", "text", "msg=hello"},
		{"tint", "tint", "hello"},
		{"unknown is json", "xml", `"msg":"hello"`},
	}

	for _, v := range tests {
		var buf bytes.Buffer
		h := newHandler(&buf, config.LogConfig{Format: v.format, Level: "warn"})
		assert.False(t, h.Enabled(ctx, slog.LevelInfo), v.msg)

		slog.New(h).Warn("hello", "id", 9606)
		assert.Contains(t, buf.String(), v.substr, v.msg)
		assert.Contains(t, buf.String(), "9606", v.msg)
	}
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skip file system test")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, Init(dir, cfg, false))
	slog.Info("first")
	require.NoError(t, Init(dir, cfg, true))
	slog.Info("second")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")

	require.NoError(t, Init(dir, cfg, false))
	data, err = os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Empty(t, data, "log is truncated without append")

	err = Init(filepath.Join(dir, "missing"), cfg, false)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
