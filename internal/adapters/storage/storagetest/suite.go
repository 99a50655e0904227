// Package storagetest holds the behavioral contract every stage and project
// store adapter must satisfy. Adapter test files call Run with a factory that
// returns a fresh, empty store.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// Store is the combined port set implemented by the local storage adapters.
type Store interface {
	ports.StageStore
	ports.ProjectStore
}

// Run executes the contract against stores produced by newStore.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("empty list", func(t *testing.T) {
		s := newStore(t)
		got, err := s.ListStages(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("insert and get", func(t *testing.T) {
		s := newStore(t)
		created := seed(t, s, "Development")[0]

		got, err := s.GetStage(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Development", got.Name)
		assert.Equal(t, 1, got.Position)
		assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set")
	})

	t.Run("get unknown stage", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetStage(context.Background(), 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("swap positions in one batch", func(t *testing.T) {
		s := newStore(t)
		stages := seed(t, s, "A", "B")

		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			return tx.ApplyPositions(context.Background(), []stage.PositionChange{
				{ID: stages[0].ID, From: 1, To: 2},
				{ID: stages[1].ID, From: 2, To: 1},
			})
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "A"}, names(t, s))
	})

	t.Run("rollback discards every write", func(t *testing.T) {
		s := newStore(t)
		stages := seed(t, s, "A", "B", "C")
		boom := errors.New("boom")

		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			if err := tx.ApplyPositions(context.Background(), []stage.PositionChange{
				{ID: stages[0].ID, From: 1, To: 3},
				{ID: stages[2].ID, From: 3, To: 1},
			}); err != nil {
				return err
			}
			if _, err := tx.RenameStage(context.Background(), stages[1].ID, "renamed"); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"A", "B", "C"}, names(t, s))
	})

	t.Run("duplicate position is rejected", func(t *testing.T) {
		s := newStore(t)
		seed(t, s, "A")

		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			_, err := tx.InsertStage(context.Background(), "B", 1)
			return err
		})
		require.Error(t, err)
		assert.Equal(t, []string{"A"}, names(t, s))
	})

	t.Run("rename", func(t *testing.T) {
		s := newStore(t)
		st := seed(t, s, "Prospect")[0]

		var renamed *stage.Stage
		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			var err error
			renamed, err = tx.RenameStage(context.Background(), st.ID, "Bidding")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, "Bidding", renamed.Name)
		assert.Equal(t, 1, renamed.Position)
	})

	t.Run("rename unknown stage", func(t *testing.T) {
		s := newStore(t)
		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			_, err := tx.RenameStage(context.Background(), 99, "x")
			return err
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete unknown stage", func(t *testing.T) {
		s := newStore(t)
		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			return tx.DeleteStage(context.Background(), 99)
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete referenced stage conflicts", func(t *testing.T) {
		s := newStore(t)
		st := seed(t, s, "Production")[0]
		p := createProject(t, s, "Trailer")
		require.NoError(t, s.SetProjectStage(context.Background(), p.ID, &st.ID))

		err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
			return tx.DeleteStage(context.Background(), st.ID)
		})
		assert.ErrorIs(t, err, domain.ErrConflict)

		_, err = s.GetStage(context.Background(), st.ID)
		assert.NoError(t, err)
	})

	t.Run("project assignment", func(t *testing.T) {
		s := newStore(t)
		stages := seed(t, s, "A", "B")
		p1 := createProject(t, s, "Trailer")
		p2 := createProject(t, s, "Documentary")
		ctx := context.Background()

		require.NoError(t, s.SetProjectStage(ctx, p1.ID, &stages[0].ID))
		require.NoError(t, s.SetProjectStage(ctx, p2.ID, &stages[0].ID))

		n, err := s.CountProjectsByStage(ctx, stages[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		listed, err := s.ListProjectsByStage(ctx, stages[0].ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, p1.ID, listed[0].ID)
		assert.Equal(t, p2.ID, listed[1].ID)

		require.NoError(t, s.SetProjectStage(ctx, p1.ID, nil))
		got, err := s.GetProject(ctx, p1.ID)
		require.NoError(t, err)
		assert.Nil(t, got.StageID)

		empty, err := s.ListProjectsByStage(ctx, stages[1].ID)
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})

	t.Run("assign unknown project", func(t *testing.T) {
		s := newStore(t)
		st := seed(t, s, "A")[0]
		err := s.SetProjectStage(context.Background(), 999, &st.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list projects", func(t *testing.T) {
		s := newStore(t)
		createProject(t, s, "One")
		createProject(t, s, "Two")

		all, err := s.ListProjects(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "One", all[0].Name)
	})
}

// seed inserts stages at positions 1..len(names) in one transaction.
func seed(t *testing.T, s Store, stageNames ...string) []stage.Stage {
	t.Helper()
	out := make([]stage.Stage, 0, len(stageNames))
	err := s.WithinTx(context.Background(), func(tx ports.StageTx) error {
		for i, n := range stageNames {
			st, err := tx.InsertStage(context.Background(), n, i+1)
			if err != nil {
				return err
			}
			out = append(out, *st)
		}
		return nil
	})
	require.NoError(t, err)
	return out
}

func createProject(t *testing.T, s Store, name string) *project.Project {
	t.Helper()
	p, err := s.CreateProject(context.Background(), &project.Project{Name: name})
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	return p
}

func names(t *testing.T, s Store) []string {
	t.Helper()
	stages, err := s.ListStages(context.Background())
	require.NoError(t, err)
	out := make([]string, len(stages))
	for i, st := range stages {
		out[i] = st.Name
	}
	return out
}
