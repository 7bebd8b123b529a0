package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Flags defines the command-line flag values the config layer can consume.
// Empty strings mean the flag was not given.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
	GetConfigFile() string
}

// LoadWithFlags builds a Config by merging, from lowest to highest
// precedence: defaults, the YAML file, environment variables and flags.
//
// A missing YAML file is not an error; a malformed one is.
func LoadWithFlags(flgs Flags) (*Config, error) {
	envCfg := &EnvConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	configFile := firstNonEmpty(flagValue(flgs, Flags.GetConfigFile), envCfg.ConfigFile, DefaultConfigFile)
	yamlConfig, err := loadFromYAML(configFile)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := resolveDuration(envCfg.ShutdownTimeout, yamlConfig.Server.ShutdownTimeout, DefaultShutdownTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid server.shutdown_timeout: %w", err)
	}

	bodyLimit := DefaultBodyLimit
	if yamlConfig.Server.BodyLimit > 0 {
		bodyLimit = yamlConfig.Server.BodyLimit
	}
	if envCfg.BodyLimit > 0 {
		bodyLimit = envCfg.BodyLimit
	}

	redisCfg, err := resolveRedis(envCfg, yamlConfig.Storage.Redis)
	if err != nil {
		return nil, err
	}

	metricsEnabled := yamlConfig.Metrics.Enabled
	if envCfg.MetricsEnabled != nil {
		metricsEnabled = *envCfg.MetricsEnabled
	}

	logLevel := firstNonEmpty(
		flagValue(flgs, Flags.GetLogLevel), envCfg.LogLevel, yamlConfig.Server.LogLevel, DefaultLogLevel)
	if !slices.Contains(ValidLogLevels, logLevel) {
		return nil, fmt.Errorf("invalid log level: %s (must be one of: %s)",
			logLevel, strings.Join(ValidLogLevels, ", "))
	}

	return &Config{
		Port: firstNonEmpty(
			flagValue(flgs, Flags.GetPort), envCfg.Port, yamlConfig.Server.Port, DefaultPort),
		Environment: firstNonEmpty(
			flagValue(flgs, Flags.GetEnvironment), envCfg.Environment, envCfg.NodeEnv,
			yamlConfig.Server.Environment, DefaultEnvironment),
		ServiceVersion:  firstNonEmpty(envCfg.ServiceVersion, yamlConfig.Server.Version),
		LogLevel:        logLevel,
		ShutdownTimeout: shutdownTimeout,
		BodyLimit:       bodyLimit,
		Storage:         StorageConfig{Redis: redisCfg},
		Metrics:         MetricsConfig{Enabled: metricsEnabled},
	}, nil
}

func loadFromYAML(path string) (*YAMLConfig, error) {
	config := &YAMLConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return config, nil
}

// resolveRedis merges the Redis YAML section with REDIS_* variables.
// REDIS_HOST without REDIS_PORT uses the default Redis port.
func resolveRedis(envCfg *EnvConfig, yamlRedis RedisYAMLConfig) (RedisConfig, error) {
	ttl, err := resolveDuration(0, yamlRedis.TTL, DefaultJournalTTL)
	if err != nil {
		return RedisConfig{}, fmt.Errorf("invalid storage.redis.ttl: %w", err)
	}

	address := yamlRedis.Address
	if envCfg.Redis.Host != "" {
		address = envCfg.Redis.Host + ":" + firstNonEmpty(envCfg.Redis.Port, DefaultRedisPort)
	}

	enabled := yamlRedis.Enabled
	if envCfg.Redis.Enabled != nil {
		enabled = *envCfg.Redis.Enabled
	}

	maxEntries := yamlRedis.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultJournalMaxEntries
	}

	return RedisConfig{
		Enabled:    enabled,
		Address:    address,
		Password:   firstNonEmpty(envCfg.Redis.Password, yamlRedis.Password),
		Database:   yamlRedis.Database,
		KeyPrefix:  firstNonEmpty(yamlRedis.KeyPrefix, DefaultRedisKeyPrefix),
		MaxEntries: maxEntries,
		TTL:        ttl,
	}, nil
}

func resolveDuration(fromEnv time.Duration, fromYAML string, fallback time.Duration) (time.Duration, error) {
	if fromEnv > 0 {
		return fromEnv, nil
	}
	if fromYAML == "" {
		return fallback, nil
	}
	return time.ParseDuration(fromYAML)
}

func flagValue(flgs Flags, get func(Flags) string) string {
	if flgs == nil {
		return ""
	}
	return get(flgs)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
