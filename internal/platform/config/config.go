// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Storage drivers accepted in storage.driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Project record sources accepted in projects.source.
const (
	ProjectSourceLocal = "local"
	ProjectSourceHTTP  = "http"
)

// Config holds all configuration for the service.
type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"`
	Projects  ProjectsConfig  `koanf:"projects"`
	Auth      AuthConfig      `koanf:"auth"`
	Board     BoardConfig     `koanf:"board"`
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name string `koanf:"name"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects and configures the stage store.
type StorageConfig struct {
	Driver   string         `koanf:"driver"`
	SQLite   SQLiteConfig   `koanf:"sqlite"`
	Postgres PostgresConfig `koanf:"postgres"`
}

// SQLiteConfig holds the SQLite database location.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// PostgresConfig holds the PostgreSQL connection settings.
type PostgresConfig struct {
	DSN      string `koanf:"dsn" masq:"secret"`
	MaxConns int32  `koanf:"max_conns"`
}

// ProjectsConfig selects where project records live. "local" uses the stage
// store's own projects table; "http" uses the remote project API.
type ProjectsConfig struct {
	Source string       `koanf:"source"`
	Client ClientConfig `koanf:"client"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Token          string               `koanf:"token" masq:"secret"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// AuthConfig holds bearer-token verification settings.
type AuthConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Issuer     string `koanf:"issuer"`
	Audience   string `koanf:"audience"`
	SigningKey string `koanf:"signing_key" masq:"secret"`
	MutateRole string `koanf:"mutate_role"`
}

// BoardConfig tunes the board view.
type BoardConfig struct {
	MaxWorkers int `koanf:"max_workers"`
}
