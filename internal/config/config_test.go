package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.EqualValues(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.False(t, cfg.Psql.Enabled)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.False(t, cfg.Bus.IsolateFailures)
	assert.Equal(t, 2, cfg.Bus.SinkWorkers)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "mesa:", cfg.Redis.KeyPrefix)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5433/journal?sslmode=disable")
	t.Setenv("BUS_ISOLATE_FAILURES", "true")
	t.Setenv("BUS_SINK_TIMEOUT", "750ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.EqualValues(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "db:5433", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Bus.IsolateFailures)
	assert.Equal(t, 750*time.Millisecond, cfg.Bus.SinkTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Log.Format = "json"
	cfg.Log.New(&buf).Info("hello", slog.String("k", "v"))
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	cfg.Log.Format = "yaml"
	cfg.Log.Level = "warn"
	logger := cfg.Log.New(&buf)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
