package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// group runs its actions concurrently. The first failure cancels the
// context the others see, and whatever finished is rolled back before the
// group reports the failure.
type group struct {
	actions []domain.Action
	limit   int

	mu   sync.Mutex
	done []domain.Action
}

func (g *group) run(ctx context.Context) error {
	eg, gctx := errgroup.WithContext(ctx)
	if g.limit > 0 {
		eg.SetLimit(g.limit)
	}

	for _, a := range g.actions {
		eg.Go(func() error {
			// A failure may land while this action waits for a slot.
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := a.Execute(gctx); err != nil {
				return err
			}
			g.mu.Lock()
			g.done = append(g.done, a)
			g.mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		g.undo(ctx, logging.FromContext(ctx))
		return err
	}
	return nil
}

// undo rolls back finished actions, most recently finished first.
func (g *group) undo(ctx context.Context, logger *slog.Logger) {
	g.mu.Lock()
	done := g.done
	g.done = nil
	g.mu.Unlock()

	for i := len(done) - 1; i >= 0; i-- {
		undoAction(ctx, logger, done[i])
	}
}

func (g *group) label() string {
	switch len(g.actions) {
	case 0:
		return "empty group"
	case 1:
		return g.actions[0].Description()
	}
	return fmt.Sprintf("%d concurrent actions (first: %s)", len(g.actions), g.actions[0].Description())
}
