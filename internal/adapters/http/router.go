// Package http is the inbound HTTP adapter: routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stageboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/stageboard/internal/adapters/http/handlers"
)

// Routes collects the handlers and optional auth gates mounted by NewRouter.
// A nil Authenticate leaves the API open; AuthorizeWrite, when set, guards
// every route that changes stage order or assignments.
type Routes struct {
	Stages   *handlers.StageHandler
	Projects *handlers.ProjectHandler
	Board    *handlers.BoardHandler
	Health   *handlers.HealthHandler

	Authenticate   func(http.Handler) http.Handler
	AuthorizeWrite func(http.Handler) http.Handler
}

// NewRouter builds the service router. middlewares wrap every route,
// including health checks, in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound, "no route for "+req.Method+" "+req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed, req.Method+" is not supported on "+req.URL.Path)
	})

	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		if routes.Authenticate != nil {
			r.Use(routes.Authenticate)
		}

		r.Get("/stages", routes.Stages.ListStages)
		r.Get("/stages/{id}", routes.Stages.GetStage)
		r.Get("/stages/{id}/projects", routes.Stages.ListProjects)
		r.Get("/board", routes.Board.Board)

		r.Group(func(r chi.Router) {
			if routes.AuthorizeWrite != nil {
				r.Use(routes.AuthorizeWrite)
			}

			r.Post("/stages", routes.Stages.CreateStage)
			r.Patch("/stages/{id}", routes.Stages.RenameStage)
			r.Delete("/stages/{id}", routes.Stages.DeleteStage)
			r.Post("/stages/{id}/move", routes.Stages.MoveStage)
			r.Post("/stages/{id}/drain", routes.Stages.DrainStage)

			r.Put("/projects/{id}/stage", routes.Projects.AssignStage)
			r.Delete("/projects/{id}/stage", routes.Projects.UnassignStage)
		})
	})

	return r
}
