// Package config loads the arena service configuration from YAML.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/wallet-arena/internal/errors"
)

// Config holds all configuration for the service
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Battle BattleConfig `yaml:"battle"`
}

// ServerConfig holds listener and logging settings
type ServerConfig struct {
	GRPCPort int `yaml:"grpc_port"`
	HTTPPort int `yaml:"http_port"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// RedisConfig configures the battle cache connection
type RedisConfig struct {
	Endpoint   string `yaml:"endpoint"`
	PoolSize   int    `yaml:"pool_size"`
	MaxRetries int    `yaml:"max_retries"`
	UseTLS     bool   `yaml:"use_tls"`
}

// BattleConfig holds battle cache settings
type BattleConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort: 50051,
			HTTPPort: 8080,
			LogLevel: "info",
		},
		Redis: RedisConfig{
			Endpoint:   "localhost:6379",
			PoolSize:   10,
			MaxRetries: 3,
		},
		Battle: BattleConfig{
			CacheTTL: time.Hour,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	validatePort("server.grpc_port", c.Server.GRPCPort, vb)
	validatePort("server.http_port", c.Server.HTTPPort, vb)
	if c.Server.GRPCPort == c.Server.HTTPPort {
		vb.Field("server.http_port", "must differ from grpc_port")
	}
	errors.ValidateEnum("server.log_level", strings.ToLower(c.Server.LogLevel), logLevels, vb)

	errors.ValidateRequired("redis.endpoint", c.Redis.Endpoint, vb)
	errors.ValidateMin("redis.pool_size", int64(c.Redis.PoolSize), 0, vb)
	errors.ValidateMin("redis.max_retries", int64(c.Redis.MaxRetries), 0, vb)

	if c.Battle.CacheTTL <= 0 {
		vb.Field("battle.cache_ttl", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps the configured log level onto slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func validatePort(field string, port int, vb *errors.ValidationBuilder) {
	if port < 1 || port > 65535 {
		vb.Field(field, "must be between 1 and 65535")
	}
}
