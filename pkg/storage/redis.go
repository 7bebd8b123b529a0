package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/redhat-appstudio/my-microservice/pkg/logger"
)

// journalKey is the list holding created users, newest first.
const journalKey = "users:created"

func init() {
	redis.SetLogger(logger.RedisLogger{})
}

// RedisClient appends created users to a capped Redis list.
type RedisClient struct {
	client     *redis.Client
	keyPrefix  string
	maxEntries int64
	ttl        time.Duration
}

// NewRedisClient creates a new Redis client and verifies connectivity.
func NewRedisClient(config RedisConfig) (*RedisClient, error) {
	if !config.Enabled {
		return nil, errors.New("redis journal is disabled")
	}

	if config.Address == "" {
		return nil, errors.New("redis address is required")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Address,
		Password:     config.Password,
		DB:           config.Database,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Redis journal connected to %s", config.Address)

	return &RedisClient{
		client:     rdb,
		keyPrefix:  config.KeyPrefix,
		maxEntries: config.MaxEntries,
		ttl:        config.TTL,
	}, nil
}

// Close closes the Redis connection.
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// buildKey joins the key prefix and parts with ':'.
func (r *RedisClient) buildKey(parts ...string) string {
	var builder strings.Builder
	builder.WriteString(r.keyPrefix)
	for _, part := range parts {
		builder.WriteByte(':')
		builder.WriteString(part)
	}
	return builder.String()
}

// AppendUser pushes a record to the head of the journal, trims it to the
// configured size and refreshes its expiration in one transaction.
func (r *RedisClient) AppendUser(ctx context.Context, record UserRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}

	key := r.buildKey(journalKey)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		if r.maxEntries > 0 {
			pipe.LTrim(ctx, key, 0, r.maxEntries-1)
		}
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append user record: %w", err)
	}

	logger.Debugf("Journaled created user %d", record.ID)
	return nil
}
