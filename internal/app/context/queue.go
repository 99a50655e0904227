package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// step is one entry of the commit queue.
type step interface {
	run(ctx context.Context) error
	undo(ctx context.Context, logger *slog.Logger)
	label() string
}

type single struct {
	action domain.Action
}

func (s single) run(ctx context.Context) error { return s.action.Execute(ctx) }
func (s single) label() string                 { return s.action.Description() }

func (s single) undo(ctx context.Context, logger *slog.Logger) {
	undoAction(ctx, logger, s.action)
}

// AddAction queues action to run on Commit after everything queued before it.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return rc.enqueue(single{action: action})
}

// AddGroup queues actions that run concurrently when their turn arrives.
func (rc *RequestContext) AddGroup(actions ...domain.Action) error {
	return rc.AddBoundedGroup(0, actions...)
}

// AddBoundedGroup is AddGroup with at most limit actions in flight. A limit
// of zero or less means no bound.
func (rc *RequestContext) AddBoundedGroup(limit int, actions ...domain.Action) error {
	for _, a := range actions {
		if a == nil {
			return ErrNilAction
		}
	}
	return rc.enqueue(&group{actions: actions, limit: limit})
}

func (rc *RequestContext) enqueue(s step) error {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.steps = append(rc.steps, s)
	return nil
}

// Commit runs the queue in order. If a step fails, the steps that already
// ran are undone newest first and the failure is returned; undo failures are
// only logged. A RequestContext commits once, and later calls return
// ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	steps := rc.steps
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx).With(slog.String("operation", "RequestContext.Commit"))

	for i, s := range steps {
		logger.DebugContext(ctx, "running step",
			slog.Int("step", i+1),
			slog.Int("of", len(steps)),
			slog.String("action", s.label()),
		)
		err := s.run(ctx)
		if err == nil {
			continue
		}

		logger.ErrorContext(ctx, "step failed, undoing earlier steps",
			slog.Int("step", i+1),
			slog.String("action", s.label()),
			slog.Any("error", err),
		)
		for j := i - 1; j >= 0; j-- {
			steps[j].undo(ctx, logger)
		}
		return fmt.Errorf("%s: %w", s.label(), err)
	}
	return nil
}

func undoAction(ctx context.Context, logger *slog.Logger, a domain.Action) {
	logger.InfoContext(ctx, "rolling back", slog.String("action", a.Description()))
	if err := a.Rollback(ctx); err != nil {
		logger.ErrorContext(ctx, "rollback failed",
			slog.String("action", a.Description()),
			slog.Any("error", err),
		)
	}
}
