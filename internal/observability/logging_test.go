package observability_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/montecarlo/internal/config"
	"github.com/cory-johannsen/montecarlo/internal/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := observability.NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := observability.NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := observability.NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := observability.NewLogger(cfg)
	assert.Error(t, err)
}

func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := observability.New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	entries := jsonLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "montecarlo", entries[0]["logger"])
	assert.Contains(t, entries[0]["ts"], "T", "ISO-8601 timestamp")
}

func TestNew_DebugNotSampled(t *testing.T) {
	var buf bytes.Buffer
	logger, err := observability.New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		logger.Debug("dice roll", zap.Int("die", 0))
	}
	assert.Len(t, jsonLines(t, &buf), 500)
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := observability.New(config.LoggingConfig{Level: "info", Format: "console"}, &buf)
	require.NoError(t, err)
	logger.Info("dice set loaded", zap.String("id", "fair-d6"))
	assert.Contains(t, buf.String(), "dice set loaded")
	assert.Contains(t, buf.String(), "fair-d6")
}

func TestForSession(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := observability.ForSession(zap.New(core), "loaded-d6", "abc-123")
	logger.Info("session played")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "loaded-d6", fields["dice_set"])
	assert.Equal(t, "abc-123", fields["session"])
}
