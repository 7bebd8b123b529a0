package logger

import (
	"context"

	"go.uber.org/zap"
)

// RedisLogger routes go-redis internal messages (reconnects, pool
// warnings) into the global zap logger.
type RedisLogger struct{}

// Printf satisfies the go-redis internal logging interface.
func (RedisLogger) Printf(_ context.Context, format string, v ...interface{}) {
	if Sugar != nil {
		Sugar.WithOptions(zap.AddCallerSkip(1)).Named("redis").Warnf(format, v...)
	}
}
