package config

import "time"

// Default configuration values
const (
	// DefaultPort is the default HTTP server port
	DefaultPort = "3000"

	// DefaultEnvironment is the default deployment environment
	DefaultEnvironment = "development"

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"

	// DefaultConfigFile is where the YAML configuration is looked up
	DefaultConfigFile = "configs/config.yaml"

	// DefaultShutdownTimeout bounds how long in-flight requests may drain
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultBodyLimit is the maximum accepted request body size in bytes
	DefaultBodyLimit = 100 * 1024

	// DefaultRedisPort is appended to REDIS_HOST when REDIS_PORT is unset
	DefaultRedisPort = "6379"

	// DefaultRedisKeyPrefix prefixes every journal key
	DefaultRedisKeyPrefix = "my-microservice"

	// DefaultJournalMaxEntries caps the Redis journal list
	DefaultJournalMaxEntries = 1000

	// DefaultJournalTTL is the expiration refreshed on every journal write
	DefaultJournalTTL = 7 * 24 * time.Hour
)

// Known environment values
const (
	ValidEnvironmentDevelopment = "development"
	ValidEnvironmentProduction  = "production"
)

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)

// ValidLogLevels lists the accepted log levels in increasing severity.
var ValidLogLevels = []string{
	ValidLogLevelDebug,
	ValidLogLevelInfo,
	ValidLogLevelWarn,
	ValidLogLevelError,
}
