package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/stageboard/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/stageboard/internal/adapters/http"
	"github.com/jsamuelsen11/stageboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stageboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/stageboard/internal/adapters/storage"
	"github.com/jsamuelsen11/stageboard/internal/app"
	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/health"
	"github.com/jsamuelsen11/stageboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/stageboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// projectAPIName is the downstream name used for the breaker, spans, metrics
// and the readiness report.
const projectAPIName = "project-api"

// application is the resolved object graph.
type application struct {
	injector *do.RootScope
	server   *adapthttp.Server
	handler  nethttp.Handler
	backend  storage.Backend
	logger   *slog.Logger
}

// Close releases the stage store.
func (a *application) Close() {
	if err := a.backend.Close(); err != nil {
		a.logger.Error("closing stage store", slog.Any("error", err))
	}
}

// wire opens the stage store and resolves the server with everything it
// depends on. The caller owns the returned application and must Close it.
func wire(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) (*application, error) {
	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	do.ProvideValue(injector, backend)

	if err := registerDependencies(injector, cfg, logger); err != nil {
		_ = backend.Close()
		return nil, err
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		_ = backend.Close()
		return nil, fmt.Errorf("resolving server: %w", err)
	}

	return &application{
		injector: injector,
		server:   server,
		handler:  do.MustInvoke[nethttp.Handler](injector),
		backend:  backend,
		logger:   logger,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) error {
	switch cfg.Projects.Source {
	case config.ProjectSourceLocal:
		do.Provide(injector, func(i do.Injector) (ports.ProjectStore, error) {
			return do.MustInvoke[storage.Backend](i), nil
		})
	case config.ProjectSourceHTTP:
		do.Provide(injector, func(i do.Injector) (*acl.ProjectClient, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			client := httpclient.New(&cfg.Projects.Client, projectAPIName, metrics, logger)
			return acl.NewProjectClient(client, logger), nil
		})
		do.Provide(injector, func(i do.Injector) (ports.ProjectStore, error) {
			return do.MustInvoke[*acl.ProjectClient](i), nil
		})
	default:
		return fmt.Errorf("unsupported project source %q", cfg.Projects.Source)
	}

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[storage.Backend](i))
		if cfg.Projects.Source == config.ProjectSourceHTTP {
			registry.Register(do.MustInvoke[*acl.ProjectClient](i))
		}
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StageSequencer, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewSequencer(do.MustInvoke[storage.Backend](i), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AssignmentGateway, error) {
		seq := do.MustInvoke[ports.StageSequencer](i)
		return app.NewGateway(seq, do.MustInvoke[ports.ProjectStore](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.StageService, error) {
		seq := do.MustInvoke[ports.StageSequencer](i)
		gw := do.MustInvoke[ports.AssignmentGateway](i)
		return app.NewStageService(seq, gw, cfg.Board.MaxWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Routes, error) {
		svc := do.MustInvoke[ports.StageService](i)
		routes := adapthttp.Routes{
			Stages:   handlers.NewStageHandler(svc),
			Projects: handlers.NewProjectHandler(svc),
			Board:    handlers.NewBoardHandler(svc),
			Health:   handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), projectAPIName),
		}
		if cfg.Auth.Enabled {
			auth, err := middleware.NewAuthenticator(cfg.Auth)
			if err != nil {
				return adapthttp.Routes{}, err
			}
			routes.Authenticate = auth.Authenticate()
			routes.AuthorizeWrite = middleware.RequireRole(cfg.Auth.MutateRole)
		}
		return routes, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		routes, err := do.Invoke[adapthttp.Routes](i)
		if err != nil {
			return nil, err
		}
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(routes,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})

	return nil
}
