// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

const tracerName = "github.com/jsamuelsen11/stageboard/internal/app"

// Compile-time check that Sequencer implements ports.StageSequencer.
var _ ports.StageSequencer = (*Sequencer)(nil)

// Sequencer is the only writer of stage positions. Each mutation locks the
// stage list inside one store transaction, computes the new positions with
// the stage ordering algebra and writes them as a single batch.
type Sequencer struct {
	store    ports.StageStore
	recorder ports.RenumberRecorder
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewSequencer creates a Sequencer. recorder and logger may be nil.
func NewSequencer(store ports.StageStore, recorder ports.RenumberRecorder, logger *slog.Logger) *Sequencer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sequencer{
		store:    store,
		recorder: recorder,
		tracer:   otel.Tracer(tracerName),
		logger:   logger,
	}
}

// List returns all stages by ascending position.
func (s *Sequencer) List(ctx context.Context) ([]stage.Stage, error) {
	stages, err := s.store.ListStages(ctx)
	if err != nil {
		return nil, s.fail(ctx, "List", err)
	}
	if stages == nil {
		stages = []stage.Stage{}
	}
	return stages, nil
}

// GetByID returns a single stage.
func (s *Sequencer) GetByID(ctx context.Context, id int64) (*stage.Stage, error) {
	if id <= 0 {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	st, err := s.store.GetStage(ctx, id)
	if err != nil {
		return nil, classify("get stage", err)
	}
	return st, nil
}

// Create inserts a stage at position, shifting every stage at or after it.
func (s *Sequencer) Create(ctx context.Context, name string, position int) (*stage.Stage, error) {
	ctx, span := s.tracer.Start(ctx, "StageSequencer.Create")
	defer span.End()

	s.logger.InfoContext(ctx, "creating stage", slog.String("name", name), slog.Int("position", position))

	name, err := stage.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if position < 1 {
		return nil, positionTooLow(position)
	}

	var created *stage.Stage
	var shifted int
	err = s.store.WithinTx(ctx, func(tx ports.StageTx) error {
		current, err := tx.LockStages(ctx)
		if err != nil {
			return fmt.Errorf("locking stages: %w", err)
		}
		changes, err := stage.Insert(current, position)
		if err != nil {
			return err
		}
		if err := tx.ApplyPositions(ctx, changes); err != nil {
			return fmt.Errorf("shifting stages: %w", err)
		}
		created, err = tx.InsertStage(ctx, name, position)
		if err != nil {
			return fmt.Errorf("inserting stage: %w", err)
		}
		shifted = len(changes)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "Create", err)
	}

	s.record(ctx, "create", shifted)
	return created, nil
}

// Delete removes a stage and decrements every stage after it.
func (s *Sequencer) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "StageSequencer.Delete")
	defer span.End()

	s.logger.InfoContext(ctx, "deleting stage", slog.Int64("id", id))

	var shifted int
	err := s.store.WithinTx(ctx, func(tx ports.StageTx) error {
		current, err := tx.LockStages(ctx)
		if err != nil {
			return fmt.Errorf("locking stages: %w", err)
		}
		_, changes, err := stage.Remove(current, id)
		if err != nil {
			return err
		}
		if err := tx.DeleteStage(ctx, id); err != nil {
			return fmt.Errorf("deleting stage %d: %w", id, err)
		}
		if err := tx.ApplyPositions(ctx, changes); err != nil {
			return fmt.Errorf("closing gap: %w", err)
		}
		shifted = len(changes)
		return nil
	})
	if err != nil {
		return s.fail(ctx, "Delete", err)
	}

	s.record(ctx, "delete", shifted)
	return nil
}

// Move relocates a stage to newPosition by removing it, reinserting it at
// index newPosition-1 and renumbering the full list.
func (s *Sequencer) Move(ctx context.Context, id int64, newPosition int) (*stage.Stage, error) {
	ctx, span := s.tracer.Start(ctx, "StageSequencer.Move")
	defer span.End()

	s.logger.InfoContext(ctx, "moving stage", slog.Int64("id", id), slog.Int("position", newPosition))

	if newPosition < 1 {
		return nil, positionTooLow(newPosition)
	}

	var moved stage.Stage
	var rewritten int
	err := s.store.WithinTx(ctx, func(tx ports.StageTx) error {
		current, err := tx.LockStages(ctx)
		if err != nil {
			return fmt.Errorf("locking stages: %w", err)
		}
		next, changes, err := stage.Reorder(current, id, newPosition)
		if err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.ApplyPositions(ctx, changes); err != nil {
				return fmt.Errorf("renumbering stages: %w", err)
			}
		}
		moved = next[newPosition-1]
		rewritten = len(changes)
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, "Move", err)
	}

	if rewritten > 0 {
		s.record(ctx, "move", rewritten)
	}
	return &moved, nil
}

// Rename changes the name of a stage. Positions are untouched.
func (s *Sequencer) Rename(ctx context.Context, id int64, name string) (*stage.Stage, error) {
	ctx, span := s.tracer.Start(ctx, "StageSequencer.Rename")
	defer span.End()

	s.logger.InfoContext(ctx, "renaming stage", slog.Int64("id", id))

	name, err := stage.NormalizeName(name)
	if err != nil {
		return nil, err
	}

	var renamed *stage.Stage
	err = s.store.WithinTx(ctx, func(tx ports.StageTx) error {
		var err error
		renamed, err = tx.RenameStage(ctx, id, name)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "Rename", err)
	}

	s.record(ctx, "rename", 0)
	return renamed, nil
}

// positionTooLow rejects positions that are illegal for any list size, before
// a transaction is opened.
func positionTooLow(position int) error {
	return domain.NewValidationError("position", fmt.Sprintf("must be at least 1, got %d", position))
}

func (s *Sequencer) fail(ctx context.Context, op string, err error) error {
	err = classify(op, err)
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, op+" failed")
	s.logger.ErrorContext(ctx, "stage operation failed",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	return err
}

func (s *Sequencer) record(ctx context.Context, op string, rows int) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("stage.rows_renumbered", rows))
	if s.recorder != nil {
		s.recorder.RecordStageMutation(ctx, op, rows)
	}
}
