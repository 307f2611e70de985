package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("missing.yaml")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 8080, cfg.Proxy.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Proxy.BackendURL)
	assert.Equal(t, "redis://localhost:6379", cfg.Database.Redis.URL)
	assert.Equal(t, "redis", cfg.State.Backend)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.GracefulShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.Proxy.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.Proxy.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Proxy.GracefulShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("REDIS_URL", "redis://cache:6380/1")
	t.Setenv("SERVER_URL", "http://backend:3000")
	t.Setenv("STATE_BACKEND", "memory")
	t.Setenv("SERVER_PORT", "4000")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "redis://cache:6380/1", cfg.Database.Redis.URL)
	assert.Equal(t, "http://backend:3000", cfg.Proxy.BackendURL)
	assert.Equal(t, "memory", cfg.State.Backend)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 3100
proxy:
  timeout: 3s
  write_timeout: 30s
log:
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3100, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Proxy.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Proxy.WriteTimeout)
	// Backend timeouts are configured separately.
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	// Untouched keys keep defaults.
	assert.Equal(t, "http://localhost:3000", cfg.Proxy.BackendURL)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_URL=http://from-dotenv:3000\n"), 0o600))
	t.Setenv("SERVER_URL", "")
	require.NoError(t, os.Unsetenv("SERVER_URL"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv:3000", cfg.Proxy.BackendURL)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DB: "loghub", SSLMode: "disable"}.DSN()
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=loghub sslmode=disable", dsn)
}

func TestNewRedisClientDisablesRetries(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(RedisConfig{URL: "redis://" + mr.Addr() + "/0?max_retries=5", PoolSize: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// go-redis normalizes -1 to 0: no retries at all.
	assert.Zero(t, client.Options().MaxRetries)
	assert.Equal(t, 4, client.Options().PoolSize)

	mr.Close()
	err = client.Set(context.Background(), "awaiting_io", "true", 0).Err()
	assert.Error(t, err)
}

func TestNewRedisClientUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(RedisConfig{URL: "redis://" + addr})
	assert.Error(t, err)
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := NewRedisClient(RedisConfig{URL: "://nope"})
	assert.Error(t, err)
}
