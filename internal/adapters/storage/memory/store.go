// Package memory provides an in-process stage and project store. Each
// transaction works on a private copy of the state that replaces the shared
// state only on commit, so readers never observe a partial renumbering.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

var (
	_ ports.StageStore   = (*Store)(nil)
	_ ports.ProjectStore = (*Store)(nil)
)

type state struct {
	stages        map[int64]stage.Stage
	projects      map[int64]project.Project
	nextStageID   int64
	nextProjectID int64
}

func (s state) clone() state {
	return state{
		stages:        maps.Clone(s.stages),
		projects:      maps.Clone(s.projects),
		nextStageID:   s.nextStageID,
		nextProjectID: s.nextProjectID,
	}
}

// Store keeps stages and projects in memory.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   state
	now     func() time.Time
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		state: state{
			stages:   make(map[int64]stage.Stage),
			projects: make(map[int64]project.Project),
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "memory" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(ctx context.Context) error { return ctx.Err() }

// Close is a no-op; the state lives as long as the Store.
func (s *Store) Close() error { return nil }

// ListStages returns committed stages by position.
func (s *Store) ListStages(ctx context.Context) ([]stage.Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedStages(s.state.stages), nil
}

// GetStage returns a committed stage.
func (s *Store) GetStage(ctx context.Context, id int64) (*stage.Stage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.state.stages[id]
	if !ok {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	return &st, nil
}

// WithinTx runs fn against a private copy of the state. Transactions are
// serialized, which is the in-memory equivalent of a table lock.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.StageTx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	working := s.state.clone()
	s.mu.RUnlock()

	if err := fn(&stageTx{state: &working, now: s.now}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.mu.Lock()
	s.state = working
	s.mu.Unlock()
	return nil
}

type stageTx struct {
	state *state
	now   func() time.Time
}

func (tx *stageTx) LockStages(ctx context.Context) ([]stage.Stage, error) {
	return sortedStages(tx.state.stages), ctx.Err()
}

func (tx *stageTx) InsertStage(_ context.Context, name string, position int) (*stage.Stage, error) {
	if taken(tx.state.stages, position, 0) {
		return nil, fmt.Errorf("unique constraint failed: stages.position = %d", position)
	}
	tx.state.nextStageID++
	now := tx.now()
	st := stage.Stage{ID: tx.state.nextStageID, Name: name, Position: position, CreatedAt: now, UpdatedAt: now}
	tx.state.stages[st.ID] = st
	return &st, nil
}

func (tx *stageTx) DeleteStage(_ context.Context, id int64) error {
	if _, ok := tx.state.stages[id]; !ok {
		return fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	for _, p := range tx.state.projects {
		if p.InStage(id) {
			return fmt.Errorf("stage %d is referenced by project %d: %w", id, p.ID, domain.ErrConflict)
		}
	}
	delete(tx.state.stages, id)
	return nil
}

func (tx *stageTx) RenameStage(_ context.Context, id int64, name string) (*stage.Stage, error) {
	st, ok := tx.state.stages[id]
	if !ok {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	st.Name = name
	st.UpdatedAt = tx.now()
	tx.state.stages[id] = st
	return &st, nil
}

func (tx *stageTx) ApplyPositions(_ context.Context, changes []stage.PositionChange) error {
	now := tx.now()
	for _, c := range changes {
		st, ok := tx.state.stages[c.ID]
		if !ok {
			return fmt.Errorf("stage %d: %w", c.ID, domain.ErrNotFound)
		}
		st.Position = c.To
		st.UpdatedAt = now
		tx.state.stages[c.ID] = st
	}
	for _, c := range changes {
		if taken(tx.state.stages, c.To, c.ID) {
			return fmt.Errorf("unique constraint failed: stages.position = %d", c.To)
		}
	}
	return nil
}

func taken(stages map[int64]stage.Stage, position int, except int64) bool {
	for id, st := range stages {
		if id != except && st.Position == position {
			return true
		}
	}
	return false
}

func sortedStages(stages map[int64]stage.Stage) []stage.Stage {
	out := slices.Collect(maps.Values(stages))
	slices.SortFunc(out, func(a, b stage.Stage) int { return a.Position - b.Position })
	if out == nil {
		out = []stage.Stage{}
	}
	return out
}
