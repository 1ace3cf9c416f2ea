package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/config/configs"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr())
	assert.Equal(t, 0.50, cfg.Fees.CostPerVideo)
	assert.Equal(t, 100000, cfg.Fees.ImpressionGoal)
	assert.Equal(t, 10.0, cfg.Fees.BaseCPM)
	assert.Equal(t, 0.03, cfg.Router.Jitter)
	assert.Equal(t, int64(0), cfg.Router.Seed)
	assert.Equal(t, "DreamTraffic", cfg.VAST.AdSystem)
	assert.Equal(t, "dreamtraffic", cfg.Psql.Addr.Path[1:])
	assert.Equal(t, time.Duration(0), cfg.Redis.TagTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ROUTER_JITTER", "0")
	t.Setenv("ROUTER_SEED", "42")
	t.Setenv("REDIS_TAG_TTL", "24h")
	t.Setenv("FEES_IMPRESSION_GOAL", "50000")
	t.Setenv("VAST_TAG_BASE", "https://tags.example.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr())
	assert.Equal(t, 0.0, cfg.Router.Jitter)
	assert.Equal(t, int64(42), cfg.Router.Seed)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TagTTL)
	assert.Equal(t, 50000, cfg.Fees.ImpressionGoal)
	assert.Equal(t, "https://tags.example.test", cfg.VAST.TagBase)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")
	_, err := Load()
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "logfmt"}.SlogFormat())
}

func TestLogger_Handler(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(configs.Logger{Level: "warn", Format: "json"}.Handler(&buf))
	log.Info("dropped")
	log.Warn("kept", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
