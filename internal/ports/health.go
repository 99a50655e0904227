package ports

import "context"

// HealthChecker is implemented by any dependency the service cannot answer
// requests without. Examples: the sqlite or postgres stage store, and the
// remote project API when projects are kept there.
//
// The readiness endpoint consults every registered checker. Liveness never
// does, so a slow database cannot get the process restarted.
type HealthChecker interface {
	// Name returns the key the result is reported under
	// (e.g., "sqlite", "postgres", "project-api").
	Name() string

	// HealthCheck returns nil if the dependency is usable, or an error
	// describing why it is not.
	// Implementations must return once ctx is done; the registry gives each
	// check its own deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// Adapters register themselves while the container is built, and the
// readiness handler calls CheckAll on every request.
//
//	registry.Register(store)
//	results := registry.CheckAll(ctx) // {"sqlite": nil, "project-api": err}
type HealthRegistry interface {
	// Register adds a HealthChecker to the registry. When two checkers share
	// a name, the later registration's result is the one reported.
	Register(checker HealthChecker)

	// CheckAll runs all registered checks concurrently and returns results
	// keyed by checker name. Nil values indicate healthy dependencies.
	CheckAll(ctx context.Context) map[string]error
}
