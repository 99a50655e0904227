// Package health runs the readiness checks of the stage store and the
// project source. Checks run concurrently and each gets its own deadline,
// so one hung dependency cannot stall the readiness check.
package health

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/stageboard/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no timeout is configured.
const DefaultCheckTimeout = 2 * time.Second

// Registry holds the checkers consulted by the readiness endpoint.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive d is ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds c. It may be called while checks are running.
func (r *Registry) Register(c ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, c)
	r.mu.Unlock()
}

// CheckAll runs every check and maps checker name to its result. If two
// checkers share a name, the later registration is reported.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	outcome := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() { outcome[i] = r.run(ctx, c) })
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcome[i]
	}
	return results
}

func (r *Registry) run(ctx context.Context, c ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return c.HealthCheck(ctx)
}
