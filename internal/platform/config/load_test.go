package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
)

// repoConfigs is the configs directory shipped with the service.
const repoConfigs = "../../../configs"

// writeConfigs lays out base.yaml plus one file per profile in a temp dir.
func writeConfigs(t *testing.T, base string, profiles map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	for name, body := range profiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))
	}
	return dir
}

func TestLoad_ShippedLocalProfile(t *testing.T) {
	cfg, err := config.Load("local", config.WithConfigDir(repoConfigs))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, config.LogConfig{Level: "debug", Format: "pretty"}, cfg.Log)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "data/stageboard-local.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, config.ProjectSourceLocal, cfg.Projects.Source)
	assert.Equal(t, 3, cfg.Projects.Client.Retry.MaxAttempts)
	assert.Equal(t, 5, cfg.Projects.Client.CircuitBreaker.MaxFailures)
	assert.Equal(t, 4, cfg.Board.MaxWorkers)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_ShippedProdProfile(t *testing.T) {
	t.Setenv("APP_STORAGE_POSTGRES_DSN", "postgres://stageboard@db/stageboard")
	t.Setenv("APP_AUTH_SIGNING_KEY", "0123456789abcdef0123456789abcdef")

	cfg, err := config.Load("prod", config.WithConfigDir(repoConfigs))
	require.NoError(t, err)

	assert.Equal(t, config.LogConfig{Level: "info", Format: "json"}, cfg.Log)
	assert.Equal(t, config.DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://stageboard@db/stageboard", cfg.Storage.Postgres.DSN)
	assert.Equal(t, config.ProjectSourceHTTP, cfg.Projects.Source)
	assert.InDelta(t, 50, cfg.Projects.Client.RateLimit.RequestsPerSecond, 0)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "otlp", cfg.Telemetry.Exporter)
	assert.NotEmpty(t, cfg.Telemetry.Endpoint)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "admin", cfg.Auth.MutateRole)
}

func TestLoad_ProdWithoutSecretsFailsValidation(t *testing.T) {
	_, err := config.Load("prod", config.WithConfigDir(repoConfigs))
	require.ErrorContains(t, err, "validating config")
}

func TestLoad_LayerPrecedence(t *testing.T) {
	dir := writeConfigs(t,
		"server:\n  port: 7000\nboard:\n  max_workers: 2\n",
		map[string]string{"staging": "server:\n  port: 7100\n"},
	)
	t.Setenv("APP_BOARD_MAX_WORKERS", "6")

	cfg, err := config.Load("staging", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 7100, cfg.Server.Port, "profile beats base")
	assert.Equal(t, 6, cfg.Board.MaxWorkers, "env beats base")
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout, "default fills the gap")
	assert.Equal(t, "data/stageboard.db", cfg.Storage.SQLite.Path)
	assert.Empty(t, cfg.Storage.Postgres.DSN)
}

func TestLoad_EnvKeysWithUnderscores(t *testing.T) {
	dir := writeConfigs(t, "app:\n  name: stageboard\n", map[string]string{"dev": "log:\n  level: info\n"})

	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")
	t.Setenv("APP_STORAGE_DRIVER", "memory")
	t.Setenv("APP_STORAGE_SQLITE_PATH", "/var/lib/stageboard/board.db")
	t.Setenv("APP_PROJECTS_CLIENT_RETRY_MAX_ATTEMPTS", "7")
	t.Setenv("APP_PROJECTS_CLIENT_CIRCUIT_BREAKER_HALF_OPEN_LIMIT", "2")

	cfg, err := config.Load("dev", config.WithConfigDir(dir))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/stageboard/board.db", cfg.Storage.SQLite.Path)
	assert.Equal(t, 7, cfg.Projects.Client.Retry.MaxAttempts)
	assert.Equal(t, 2, cfg.Projects.Client.CircuitBreaker.HalfOpenLimit)
}

func TestLoad_Errors(t *testing.T) {
	dir := writeConfigs(t, "app:\n  name: stageboard\n", map[string]string{
		"broken":  "server: [unclosed\n",
		"invalid": "board:\n  max_workers: 0\n",
	})

	tests := []struct {
		profile string
		want    string
	}{
		{profile: "", want: "profile must not be empty"},
		{profile: "../etc", want: "must be a bare name"},
		{profile: `sub\dir`, want: "must be a bare name"},
		{profile: "missing", want: "missing.yaml"},
		{profile: "broken", want: "broken.yaml"},
		{profile: "invalid", want: "validating config"},
	}

	for _, tt := range tests {
		_, err := config.Load(tt.profile, config.WithConfigDir(dir))
		assert.ErrorContains(t, err, tt.want, "profile %q", tt.profile)
	}
}

func TestLoadBootstrap(t *testing.T) {
	t.Setenv("APP_PROFILE", "prod")
	t.Setenv("APP_CONFIG_DIR", "/etc/stageboard")

	b, err := config.LoadBootstrap()
	require.NoError(t, err)
	assert.Equal(t, config.Bootstrap{Profile: "prod", ConfigDir: "/etc/stageboard"}, b)
}

func TestLoadBootstrap_Defaults(t *testing.T) {
	t.Setenv("APP_PROFILE", "")
	require.NoError(t, os.Unsetenv("APP_PROFILE"))
	t.Setenv("APP_CONFIG_DIR", "")
	require.NoError(t, os.Unsetenv("APP_CONFIG_DIR"))

	b, err := config.LoadBootstrap()
	require.NoError(t, err)
	assert.Equal(t, config.Bootstrap{Profile: "local", ConfigDir: "configs"}, b)
}
