package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultPostgresMaxConns = 10
	defaultBoardWorkers     = 4
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"app.name": "stageboard",

		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "30s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":             DriverSQLite,
		"storage.sqlite.path":        "data/stageboard.db",
		"storage.postgres.dsn":       "",
		"storage.postgres.max_conns": defaultPostgresMaxConns,

		"projects.source":                                 ProjectSourceLocal,
		"projects.client.base_url":                        "http://localhost:8081",
		"projects.client.token":                           "",
		"projects.client.timeout":                         "30s",
		"projects.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"projects.client.retry.initial_interval":          "100ms",
		"projects.client.retry.max_interval":              "10s",
		"projects.client.retry.multiplier":                defaultRetryMultiplier,
		"projects.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"projects.client.circuit_breaker.timeout":         "30s",
		"projects.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"projects.client.rate_limit.requests_per_second":  0,
		"projects.client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "stageboard",

		"auth.enabled":     false,
		"auth.issuer":      "",
		"auth.audience":    "",
		"auth.signing_key": "",
		"auth.mutate_role": "admin",

		"board.max_workers": defaultBoardWorkers,
	}
}
