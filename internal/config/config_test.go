package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/wallet-arena/internal/config"
	"github.com/KirkDiggler/wallet-arena/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, body string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultIsValid() {
	cfg := config.Default()
	s.NoError(cfg.Validate())
	s.Equal(time.Hour, cfg.Battle.CacheTTL)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestMissingFileFallsBackToDefaults() {
	cfg, err := config.Load(filepath.Join(s.dir, "nope.yaml"))
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)

	cfg, err = config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadOverridesDefaults() {
	path := s.write("arena.yaml", `
server:
  grpc_port: 6000
  log_level: debug
redis:
  endpoint: cache:6379
battle:
  cache_ttl: 15m
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(6000, cfg.Server.GRPCPort)
	s.Equal(8080, cfg.Server.HTTPPort)
	s.Equal("cache:6379", cfg.Redis.Endpoint)
	s.Equal(10, cfg.Redis.PoolSize)
	s.Equal(15*time.Minute, cfg.Battle.CacheTTL)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadRejectsBadYAML() {
	path := s.write("bad.yaml", "server: [")

	_, err := config.Load(path)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"grpc port out of range", func(c *config.Config) { c.Server.GRPCPort = 0 }, "server.grpc_port"},
		{"ports collide", func(c *config.Config) { c.Server.HTTPPort = c.Server.GRPCPort }, "server.http_port"},
		{"unknown log level", func(c *config.Config) { c.Server.LogLevel = "trace" }, "server.log_level"},
		{"missing redis endpoint", func(c *config.Config) { c.Redis.Endpoint = "" }, "redis.endpoint"},
		{"negative pool size", func(c *config.Config) { c.Redis.PoolSize = -1 }, "redis.pool_size"},
		{"zero ttl", func(c *config.Config) { c.Battle.CacheTTL = 0 }, "battle.cache_ttl"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}
