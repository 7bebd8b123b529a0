package config

import "time"

// Config represents the main application configuration structure.
// It is the merged result of defaults, the YAML file, environment
// variables and command-line flags.
type Config struct {
	// HTTP server port (e.g., "3000")
	Port string

	// Deployment environment label, echoed by the status endpoint
	Environment string

	// Version reported by the health endpoint (e.g., "1.0.0")
	ServiceVersion string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string

	// Maximum time allowed for in-flight requests to finish on shutdown
	ShutdownTimeout time.Duration

	// Maximum request body size in bytes
	BodyLimit int

	// Created-user journal storage configuration
	Storage StorageConfig

	// Prometheus metrics configuration
	Metrics MetricsConfig
}

// StorageConfig holds configuration for the created-user journal.
type StorageConfig struct {
	// Redis storage configuration
	Redis RedisConfig
}

// RedisConfig holds the resolved Redis settings.
type RedisConfig struct {
	// Whether the Redis journal is enabled
	Enabled bool

	// Redis server address (e.g., "localhost:6379")
	Address string

	// Redis password for authentication
	Password string

	// Redis database number (0-15)
	Database int

	// Key prefix for all Redis keys
	KeyPrefix string

	// Maximum number of journal entries kept
	MaxEntries int64

	// Expiration applied to the journal key
	TTL time.Duration
}

// MetricsConfig holds the Prometheus exporter settings.
type MetricsConfig struct {
	// Whether /metrics is served and requests are instrumented
	Enabled bool
}

// ServerYAMLConfig represents server-related settings in the YAML file.
type ServerYAMLConfig struct {
	Port            string `yaml:"port"`
	Environment     string `yaml:"environment"`
	Version         string `yaml:"version"`
	LogLevel        string `yaml:"log_level"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	BodyLimit       int    `yaml:"body_limit"`
}

// RedisYAMLConfig represents Redis configuration from YAML files.
type RedisYAMLConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Address    string `yaml:"address"`
	Password   string `yaml:"password"`
	Database   int    `yaml:"database"`
	KeyPrefix  string `yaml:"key_prefix"`
	MaxEntries int64  `yaml:"max_entries"`
	TTL        string `yaml:"ttl"`
}

// StorageYAMLConfig wraps the storage backends in the YAML file.
type StorageYAMLConfig struct {
	Redis RedisYAMLConfig `yaml:"redis"`
}

// MetricsYAMLConfig represents metrics configuration in the YAML file.
type MetricsYAMLConfig struct {
	Enabled bool `yaml:"enabled"`
}

// YAMLConfig represents the structure of the YAML configuration file.
type YAMLConfig struct {
	Server  ServerYAMLConfig  `yaml:"server"`
	Storage StorageYAMLConfig `yaml:"storage"`
	Metrics MetricsYAMLConfig `yaml:"metrics"`
}

// EnvConfig is the environment variable layer. Zero values and nil
// pointers mean "not set" so that lower layers show through.
type EnvConfig struct {
	ConfigFile      string        `env:"CONFIG_FILE"`
	Port            string        `env:"PORT"`
	Environment     string        `env:"ENVIRONMENT"`
	NodeEnv         string        `env:"NODE_ENV"`
	ServiceVersion  string        `env:"SERVICE_VERSION"`
	LogLevel        string        `env:"LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	BodyLimit       int           `env:"BODY_LIMIT"`
	MetricsEnabled  *bool         `env:"METRICS_ENABLED"`

	Redis struct {
		Enabled  *bool  `env:"ENABLED"`
		Host     string `env:"HOST"`
		Port     string `env:"PORT"`
		Password string `env:"PASSWORD"`
	} `envPrefix:"REDIS_"`
}
