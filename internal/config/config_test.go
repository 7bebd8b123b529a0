package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG_FILE", "PORT", "ENVIRONMENT", "NODE_ENV", "SERVICE_VERSION", "LOG_LEVEL",
	"SHUTDOWN_TIMEOUT", "BODY_LIMIT", "METRICS_ENABLED",
	"REDIS_ENABLED", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
}

// clearEnv unsets every variable the config layer reads and restores the
// previous values when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
		os.Unsetenv(key)
	}
}

type testFlags struct {
	port, environment, logLevel, configFile string
}

func (f testFlags) GetPort() string        { return f.port }
func (f testFlags) GetEnvironment() string { return f.environment }
func (f testFlags) GetLogLevel() string    { return f.logLevel }
func (f testFlags) GetConfigFile() string  { return f.configFile }

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWithFlags_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultEnvironment, cfg.Environment)
	assert.Empty(t, cfg.ServiceVersion)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, DefaultBodyLimit, cfg.BodyLimit)
	assert.False(t, cfg.Storage.Redis.Enabled)
	assert.Equal(t, DefaultRedisKeyPrefix, cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, int64(DefaultJournalMaxEntries), cfg.Storage.Redis.MaxEntries)
	assert.Equal(t, DefaultJournalTTL, cfg.Storage.Redis.TTL)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadWithFlags_YAML(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, `
server:
  port: "8081"
  environment: staging
  version: 2.1.0
  log_level: debug
  shutdown_timeout: 3s
  body_limit: 2048
storage:
  redis:
    enabled: true
    address: redis:6379
    database: 2
    key_prefix: users
    max_entries: 50
    ttl: 1h
metrics:
  enabled: true
`)
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "2.1.0", cfg.ServiceVersion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2048, cfg.BodyLimit)
	assert.True(t, cfg.Storage.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, 2, cfg.Storage.Redis.Database)
	assert.Equal(t, "users", cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, int64(50), cfg.Storage.Redis.MaxEntries)
	assert.Equal(t, time.Hour, cfg.Storage.Redis.TTL)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithFlags_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, `
server:
  port: "8081"
  environment: staging
storage:
  redis:
    enabled: true
    address: redis:6379
metrics:
  enabled: true
`)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVICE_VERSION", "3.0.0")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("BODY_LIMIT", "4096")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "3.0.0", cfg.ServiceVersion)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 4096, cfg.BodyLimit)
	assert.False(t, cfg.Storage.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "secret", cfg.Storage.Redis.Password)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadWithFlags_NodeEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("NODE_ENV", "test")

	cfg, err := LoadWithFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)

	t.Setenv("ENVIRONMENT", "production")
	cfg, err = LoadWithFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadWithFlags_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	path := writeYAML(t, "server:\n  port: \"7000\"\n")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithFlags(testFlags{
		port:        "8080",
		environment: "production",
		logLevel:    "error",
		configFile:  path,
	})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadWithFlags_EmptyFlagsFallThrough(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "9000")

	cfg, err := LoadWithFlags(testFlags{})
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadWithFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		env   map[string]string
		error string
	}{
		{
			name:  "malformed yaml",
			yaml:  "server: [unclosed",
			error: "failed to parse config file",
		},
		{
			name:  "invalid yaml shutdown timeout",
			yaml:  "server:\n  shutdown_timeout: soon\n",
			error: "invalid server.shutdown_timeout",
		},
		{
			name:  "invalid redis ttl",
			yaml:  "storage:\n  redis:\n    ttl: forever\n",
			error: "invalid storage.redis.ttl",
		},
		{
			name:  "invalid env duration",
			yaml:  "",
			env:   map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			error: "error getting env configs",
		},
		{
			name:  "invalid env log level",
			yaml:  "",
			env:   map[string]string{"LOG_LEVEL": "verbose"},
			error: "invalid log level: verbose",
		},
		{
			name:  "invalid yaml log level",
			yaml:  "server:\n  log_level: loud\n",
			error: "invalid log level: loud",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CONFIG_FILE", writeYAML(t, tt.yaml))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadWithFlags(nil)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.error)
		})
	}
}

func TestLoadWithFlags_ValidFlagMasksInvalidEnvLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LOG_LEVEL", "verbose")

	cfg, err := LoadWithFlags(testFlags{logLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
