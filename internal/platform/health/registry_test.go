package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/platform/health"
	"github.com/jsamuelsen11/stageboard/mocks"
)

func checker(t *testing.T, name string, result error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(result)
	return c
}

func TestRegistry_CheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("dial tcp project-api:8080: connection refused")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "nothing registered",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "store and project api healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "project-api", nil)}
			},
			want: map[string]error{"sqlite": nil, "project-api": nil},
		},
		{
			name: "project api down",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "postgres", nil), checker(t, "project-api", refused)}
			},
			want: map[string]error{"postgres": nil, "project-api": refused},
		},
		{
			name: "later registration wins a name clash",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{checker(t, "sqlite", nil), checker(t, "sqlite", refused)}
			},
			want: map[string]error{"sqlite": refused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("postgres")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	})

	r := health.New()
	r.Register(c)

	assert.ErrorIs(t, r.CheckAll(ctx)["postgres"], context.Canceled)
}

func TestRegistry_BoundsEachCheck(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("project-api")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(c)

	start := time.Now()
	results := r.CheckAll(context.Background())

	assert.ErrorIs(t, results["project-api"], context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestRegistry_ChecksOverlap(t *testing.T) {
	t.Parallel()

	// Neither check returns until both have started.
	var started sync.WaitGroup
	started.Add(2)
	rendezvous := func(context.Context) error {
		started.Done()
		started.Wait()
		return nil
	}

	r := health.New()
	for _, name := range []string{"sqlite", "project-api"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(rendezvous)
		r.Register(c)
	}

	assert.Len(t, r.CheckAll(context.Background()), 2)
}

func TestRegistry_RegisterWhileChecking(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		if i%2 == 0 {
			c := mocks.NewMockHealthChecker(t)
			c.EXPECT().Name().Return("memory").Maybe()
			c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			wg.Go(func() { r.Register(c) })
			continue
		}
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
