package storage

import "time"

// UserRecord is one journal entry describing a user fabricated by the API.
type UserRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt string    `json:"created_at"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Enabled indicates if the Redis journal is enabled
	Enabled bool

	// Address is the Redis server address (host:port)
	Address string

	// Password is the Redis password (optional)
	Password string

	// Database is the Redis database number (0-15)
	Database int

	// KeyPrefix is the prefix for all Redis keys
	KeyPrefix string

	// MaxEntries caps the journal list length
	MaxEntries int64

	// TTL is refreshed on the journal key at every write
	TTL time.Duration
}
