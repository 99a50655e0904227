package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// minSigningKeyLength is the HS256 key size floor.
const minSigningKeyLength = 32

// problems collects every violation so one failed start reports them all.
type problems []error

// require records a violation of key unless ok holds.
func (p *problems) require(ok bool, key, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
	}
}

// oneOf records a violation unless value is among allowed.
func (p *problems) oneOf(key, value string, allowed ...string) {
	p.require(slices.Contains(allowed, value), key, "must be one of: %s; got %q", strings.Join(allowed, ", "), value)
}

// Validate reports every invalid setting in c, joined into one error.
func (c *Config) Validate() error {
	var p problems

	s := c.Server
	p.require(s.Port >= 1 && s.Port <= 65535, "server.port", "must be between 1 and 65535, got %d", s.Port)
	p.require(s.ReadTimeout > 0, "server.read_timeout", "must be positive")
	p.require(s.WriteTimeout > 0, "server.write_timeout", "must be positive")
	p.require(s.RequestTimeout >= 0, "server.request_timeout", "must not be negative")

	p.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", c.Log.Format, "json", "text", "pretty")

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
		p.require(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint", "must not be empty when exporter is otlp")
	}

	c.Storage.check(&p)
	c.Projects.check(&p)

	if a := c.Auth; a.Enabled {
		p.require(len(a.SigningKey) >= minSigningKeyLength, "auth.signing_key",
			"must be at least %d bytes when auth is enabled", minSigningKeyLength)
		p.require(a.MutateRole != "", "auth.mutate_role", "must not be empty when auth is enabled")
	}

	p.require(c.Board.MaxWorkers >= 1, "board.max_workers", "must be >= 1, got %d", c.Board.MaxWorkers)

	return errors.Join(p...)
}

func (s *StorageConfig) check(p *problems) {
	switch s.Driver {
	case DriverMemory:
	case DriverSQLite:
		p.require(s.SQLite.Path != "", "storage.sqlite.path", "must not be empty when driver is sqlite")
	case DriverPostgres:
		p.require(s.Postgres.DSN != "", "storage.postgres.dsn", "must not be empty when driver is postgres")
		p.require(s.Postgres.MaxConns >= 0, "storage.postgres.max_conns", "must not be negative, got %d", s.Postgres.MaxConns)
	default:
		p.oneOf("storage.driver", s.Driver, DriverSQLite, DriverPostgres, DriverMemory)
	}
}

func (pc *ProjectsConfig) check(p *problems) {
	switch pc.Source {
	case ProjectSourceLocal:
	case ProjectSourceHTTP:
		cl := pc.Client
		p.require(cl.BaseURL != "", "projects.client.base_url", "must not be empty")
		p.require(cl.Timeout > 0, "projects.client.timeout", "must be positive")
		p.require(cl.Retry.MaxAttempts >= 1, "projects.client.retry.max_attempts", "must be >= 1, got %d", cl.Retry.MaxAttempts)
		p.require(cl.Retry.Multiplier > 0, "projects.client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
		p.require(cl.CircuitBreaker.MaxFailures >= 1, "projects.client.circuit_breaker.max_failures",
			"must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
		p.require(cl.RateLimit.RequestsPerSecond >= 0, "projects.client.rate_limit.requests_per_second", "must not be negative")
		p.require(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1, "projects.client.rate_limit.burst_size",
			"must be >= 1 when rate limiting")
	default:
		p.oneOf("projects.source", pc.Source, ProjectSourceLocal, ProjectSourceHTTP)
	}
}
