package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/redhat-appstudio/my-microservice/internal/config"
)

func resetGlobals(t *testing.T) {
	t.Helper()
	prevLogger, prevSugar := Logger, Sugar
	t.Cleanup(func() {
		Logger, Sugar = prevLogger, prevSugar
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.level))
		})
	}
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig(&config.Config{LogLevel: "debug", Environment: config.ValidEnvironmentProduction})
	assert.Equal(t, LogLevelDebug, cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)

	cfg = FromConfig(&config.Config{Environment: config.ValidEnvironmentDevelopment})
	assert.Equal(t, LogLevelInfo, cfg.Level)
	assert.Equal(t, FormatConsole, cfg.Format)
}

func TestInit_WritesToFile(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "service.log")

	require.NoError(t, Init(&Config{Level: LogLevelWarn, Format: FormatJSON, OutputPath: path}))
	require.NotNil(t, Logger)
	require.NotNil(t, Sugar)

	Info("suppressed below warn")
	Warnf("journal unavailable: %s", "timeout")
	RedisLogger{}.Printf(context.Background(), "pool: %d conns", 3)
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "suppressed below warn")
	assert.Contains(t, string(data), "journal unavailable: timeout")
	assert.Contains(t, string(data), "pool: 3 conns")
}

func TestInit_InvalidOutput(t *testing.T) {
	resetGlobals(t)
	err := Init(&Config{OutputPath: filepath.Join(t.TempDir(), "missing", "dir", "log")})
	assert.Error(t, err)
}

func TestHelpers_NoopBeforeInit(t *testing.T) {
	resetGlobals(t)
	Logger, Sugar = nil, nil

	assert.NotPanics(t, func() {
		Debug("x")
		Info("x")
		Warn("x")
		Error("x")
		Infof("x")
		Warnf("x")
		Errorf("x")
		Sync()
		RedisLogger{}.Printf(context.Background(), "x")
	})
}
