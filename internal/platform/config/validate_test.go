package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
)

func validConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "stageboard"},
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second},
		Log:    config.LogConfig{Level: "info", Format: "json"},
		Storage: config.StorageConfig{
			Driver: config.DriverSQLite,
			SQLite: config.SQLiteConfig{Path: "data/test.db"},
		},
		Projects: config.ProjectsConfig{
			Source: config.ProjectSourceLocal,
			Client: config.ClientConfig{
				BaseURL:        "http://localhost:8081",
				Timeout:        30 * time.Second,
				Retry:          config.RetryConfig{MaxAttempts: 3, InitialInterval: 100 * time.Millisecond, MaxInterval: time.Second, Multiplier: 2},
				CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
		Auth:      config.AuthConfig{MutateRole: "admin"},
		Board:     config.BoardConfig{MaxWorkers: 4},
	}
}

func TestValidate_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "sqlite defaults", mutate: func(*config.Config) {}},
		{name: "memory store", mutate: func(c *config.Config) { c.Storage = config.StorageConfig{Driver: config.DriverMemory} }},
		{name: "postgres with dsn", mutate: func(c *config.Config) {
			c.Storage.Driver = config.DriverPostgres
			c.Storage.Postgres.DSN = "postgres://board@db/stageboard"
		}},
		{name: "remote projects", mutate: func(c *config.Config) { c.Projects.Source = config.ProjectSourceHTTP }},
		{name: "otlp telemetry", mutate: func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp", Endpoint: "http://collector:4318"}
		}},
		{name: "auth", mutate: func(c *config.Config) {
			c.Auth.Enabled = true
			c.Auth.SigningKey = "0123456789abcdef0123456789abcdef"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			require.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *config.Config)
		want   string
	}{
		{name: "port", mutate: func(c *config.Config) { c.Server.Port = 0 }, want: "server.port"},
		{name: "negative request timeout", mutate: func(c *config.Config) { c.Server.RequestTimeout = -time.Second }, want: "server.request_timeout"},
		{name: "log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, want: "log.level"},
		{name: "log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, want: "log.format"},
		{name: "driver", mutate: func(c *config.Config) { c.Storage.Driver = "mysql" }, want: "storage.driver"},
		{name: "postgres without dsn", mutate: func(c *config.Config) { c.Storage.Driver = config.DriverPostgres }, want: "storage.postgres.dsn"},
		{name: "sqlite without path", mutate: func(c *config.Config) { c.Storage.SQLite.Path = "" }, want: "storage.sqlite.path"},
		{name: "project source", mutate: func(c *config.Config) { c.Projects.Source = "grpc" }, want: "projects.source"},
		{name: "remote projects without url", mutate: func(c *config.Config) {
			c.Projects.Source = config.ProjectSourceHTTP
			c.Projects.Client.BaseURL = ""
		}, want: "projects.client.base_url"},
		{name: "rate limit without burst", mutate: func(c *config.Config) {
			c.Projects.Source = config.ProjectSourceHTTP
			c.Projects.Client.RateLimit.RequestsPerSecond = 5
		}, want: "burst_size"},
		{name: "otlp without endpoint", mutate: func(c *config.Config) {
			c.Telemetry = config.TelemetryConfig{Enabled: true, Exporter: "otlp"}
		}, want: "telemetry.endpoint"},
		{name: "short signing key", mutate: func(c *config.Config) {
			c.Auth.Enabled = true
			c.Auth.SigningKey = "short"
		}, want: "auth.signing_key"},
		{name: "board workers", mutate: func(c *config.Config) { c.Board.MaxWorkers = 0 }, want: "board.max_workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = -1
	cfg.Board.MaxWorkers = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "board.max_workers")
}
