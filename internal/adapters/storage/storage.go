// Package storage opens the stage store selected by configuration.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// Backend is a stage store that also holds the local project table.
type Backend interface {
	ports.StageStore
	ports.ProjectStore
	ports.HealthChecker
	Close() error
}

var (
	_ Backend = (*memory.Store)(nil)
	_ Backend = (*sqlite.Store)(nil)
	_ Backend = (*postgres.Store)(nil)
)

// Open returns the Backend named by cfg.Driver with migrations applied. The
// SQLite parent directory is created when missing.
func Open(ctx context.Context, cfg config.StorageConfig) (Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		s, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
