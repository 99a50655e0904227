package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/stageboard/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/stageboard/internal/adapters/storage"
	"github.com/jsamuelsen11/stageboard/internal/app"
	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// Env is what a command works with. Service enforces every ordering and
// assignment rule; Stages and Projects are the raw stores, used by seed and
// verify.
type Env struct {
	Service  ports.StageService
	Stages   ports.StageStore
	Projects ports.ProjectStore
	close    func() error
}

// NewEnv assembles the application services over the given stores. closeFn
// may be nil.
func NewEnv(stages ports.StageStore, projects ports.ProjectStore, boardWorkers int, logger *slog.Logger, closeFn func() error) *Env {
	seq := app.NewSequencer(stages, nil, logger)
	gw := app.NewGateway(seq, projects, logger)
	return &Env{
		Service:  app.NewStageService(seq, gw, boardWorkers, logger),
		Stages:   stages,
		Projects: projects,
		close:    closeFn,
	}
}

// Close releases the underlying store.
func (e *Env) Close() error {
	if e.close == nil {
		return nil
	}
	return e.close()
}

// OpenEnv loads configuration for opts.Profile, applies flag overrides and
// opens the configured store.
func OpenEnv(ctx context.Context, opts *Options, logger *slog.Logger) (*Env, error) {
	cfg, err := config.Load(opts.Profile, config.WithConfigDir(opts.ConfigDir))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.Driver != "" {
		cfg.Storage.Driver = opts.Driver
	}
	if opts.SQLitePath != "" {
		cfg.Storage.SQLite.Path = opts.SQLitePath
	}

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}
	logger.Debug("store opened", slog.String("driver", cfg.Storage.Driver))

	var projects ports.ProjectStore
	switch cfg.Projects.Source {
	case config.ProjectSourceLocal:
		projects = backend
	case config.ProjectSourceHTTP:
		client := httpclient.New(&cfg.Projects.Client, "project-api", nil, logger)
		projects = acl.NewProjectClient(client, logger)
	default:
		return nil, errors.Join(
			fmt.Errorf("unsupported project source %q", cfg.Projects.Source),
			backend.Close(),
		)
	}

	return NewEnv(backend, projects, cfg.Board.MaxWorkers, logger, backend.Close), nil
}
