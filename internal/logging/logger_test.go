package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG", LevelWarn))
	assert.Equal(t, LevelInfo, ParseLevel(" info ", LevelWarn))
	assert.Equal(t, LevelWarn, ParseLevel("warning", LevelError))
	assert.Equal(t, LevelError, ParseLevel("error", LevelWarn))
	assert.Equal(t, LevelWarn, ParseLevel("", LevelWarn))
	assert.Equal(t, LevelInfo, ParseLevel("nope", LevelInfo))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "debug")
	t.Setenv(EnvFormat, "json")

	cfg := ConfigFromEnv()
	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormat, "yaml")
	cfg = ConfigFromEnv()
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, "text", cfg.Format)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LevelWarn, Format: "text", Output: &buf})
	ctx := context.Background()

	l.Debug(ctx, "debug message")
	l.Info(ctx, "info message")
	assert.Empty(t, buf.String(), "debug/info must be filtered at warn level")

	l.Warn(ctx, errors.New("boom"), "warn message", "kind", "circle")
	out := buf.String()
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "kind=circle")
}

func TestLogger_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf}).
		WithComponent("demo")

	l.Error(context.Background(), errors.New("bad"), "failed", "value", 1.5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "demo", rec["component"])
	assert.Equal(t, "bad", rec["error"])
	assert.Equal(t, 1.5, rec["value"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error(context.Background(), errors.New("x"), "dropped")
	})
}
