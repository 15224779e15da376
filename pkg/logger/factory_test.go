package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/config"
	"github.com/dmitrymomot/rutkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter())
		log.Info("hello")
		assert.True(t, json.Valid(buf.Bytes()))
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("rut.generator")))
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "rut.generator", entry["component"])
	})

	t.Run("respects level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		assert.Empty(t, buf.String())
		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("nil output is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() { logger.New(logger.WithOutput(nil)) })
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestDiscard(t *testing.T) {
	log := logger.Discard()
	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Debug("nothing", logger.Count("n", 1)) })
}

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, slog.LevelInfo, cfg.Level)
		assert.Equal(t, logger.FormatJSON, cfg.Format)
	})

	t.Run("from environment", func(t *testing.T) {
		var cfg logger.Config
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
			"LOG_LEVEL":  "debug",
			"LOG_FORMAT": "text",
		})))
		assert.Equal(t, slog.LevelDebug, cfg.Level)
		assert.Equal(t, logger.FormatText, cfg.Format)

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithConfig(cfg), logger.WithOutput(buf))
		log.Debug("visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("unknown format", func(t *testing.T) {
		var cfg logger.Config
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"LOG_FORMAT": "xml"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
