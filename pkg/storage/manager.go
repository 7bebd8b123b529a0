package storage

import (
	"github.com/redhat-appstudio/my-microservice/internal/config"
)

// NewJournal creates the Redis journal described by cfg. It returns
// (nil, nil) when the journal is disabled.
func NewJournal(cfg config.RedisConfig) (*RedisClient, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	return NewRedisClient(RedisConfig{
		Enabled:    cfg.Enabled,
		Address:    cfg.Address,
		Password:   cfg.Password,
		Database:   cfg.Database,
		KeyPrefix:  cfg.KeyPrefix,
		MaxEntries: cfg.MaxEntries,
		TTL:        cfg.TTL,
	})
}
