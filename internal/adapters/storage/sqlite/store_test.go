package sqlite

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/storagetest"
	"github.com/jsamuelsen11/stageboard/internal/app"
	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/platform/migrate"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "stageboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Store {
		return openTempStore(t)
	})
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stageboard.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	err = s.WithinTx(ctx, func(tx ports.StageTx) error {
		_, err := tx.InsertStage(ctx, "Development", 1)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	stages, err := reopened.ListStages(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Equal(t, "Development", stages[0].Name)

	var applied int
	require.NoError(t, reopened.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+migrate.Table).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestApplyPositions_RotatesWithoutCollision(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()

	var ids []int64
	require.NoError(t, s.WithinTx(ctx, func(tx ports.StageTx) error {
		for i, name := range []string{"A", "B", "C", "D"} {
			st, err := tx.InsertStage(ctx, name, i+1)
			if err != nil {
				return err
			}
			ids = append(ids, st.ID)
		}
		return nil
	}))

	// D moves to the head; A..C each shift down by one.
	require.NoError(t, s.WithinTx(ctx, func(tx ports.StageTx) error {
		return tx.ApplyPositions(ctx, []stage.PositionChange{
			{ID: ids[0], From: 1, To: 2},
			{ID: ids[1], From: 2, To: 3},
			{ID: ids[2], From: 3, To: 4},
			{ID: ids[3], From: 4, To: 1},
		})
	}))

	stages, err := s.ListStages(ctx)
	require.NoError(t, err)
	require.NoError(t, stage.CheckDense(stages))
	got := make([]string, len(stages))
	for i, st := range stages {
		got[i] = st.Name
	}
	assert.Equal(t, []string{"D", "A", "B", "C"}, got)
}

func TestWithinTx_SerializesWriters(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Go(func() {
			errs <- s.WithinTx(ctx, func(tx ports.StageTx) error {
				current, err := tx.LockStages(ctx)
				if err != nil {
					return err
				}
				_, err = tx.InsertStage(ctx, "S", len(current)+1)
				return err
			})
		})
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stages, err := s.ListStages(ctx)
	require.NoError(t, err)
	assert.Len(t, stages, writers)
	assert.NoError(t, stage.CheckDense(stages))
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	assert.Equal(t, "sqlite", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))

	require.NoError(t, s.Close())
	assert.Error(t, s.HealthCheck(context.Background()))
}

// TestSequencerWorkflow drives the ordering logic against a real database,
// including the foreign key guard on delete.
func TestSequencerWorkflow(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()
	seq := app.NewSequencer(s, nil, nil)
	svc := app.NewStageService(seq, app.NewGateway(seq, s, nil), 2, nil)

	var ids []int64
	for i, name := range []string{"A", "B", "C", "D"} {
		st, err := seq.Create(ctx, name, i+1)
		require.NoError(t, err)
		ids = append(ids, st.ID)
	}

	_, err := seq.Move(ctx, ids[2], 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C@1", "A@2", "B@3", "D@4"}, positions(t, s))

	_, err = seq.Create(ctx, "X", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C@1", "X@2", "A@3", "B@4", "D@5"}, positions(t, s))

	p, err := s.CreateProject(ctx, &project.Project{Name: "Trailer"})
	require.NoError(t, err)
	require.NoError(t, svc.AssignProject(ctx, p.ID, ids[1]))

	// The foreign key rejects the delete even without the service-level check.
	err = seq.Delete(ctx, ids[1])
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, []string{"C@1", "X@2", "A@3", "B@4", "D@5"}, positions(t, s))

	require.NoError(t, svc.AssignProject(ctx, p.ID, ids[0]))
	require.NoError(t, svc.DeleteStage(ctx, ids[1]))
	assert.Equal(t, []string{"C@1", "X@2", "A@3", "D@4"}, positions(t, s))
}

// A RESTRICT action surfaces as a trigger constraint rather than a foreign
// key one, and must still be read as a reference violation.
func TestForeignKeyViolation_OnDeleteRestrict(t *testing.T) {
	t.Parallel()
	s := openTempStore(t)
	ctx := context.Background()

	var st *stage.Stage
	require.NoError(t, s.WithinTx(ctx, func(tx ports.StageTx) error {
		var err error
		st, err = tx.InsertStage(ctx, "Shooting", 1)
		return err
	}))
	p, err := s.CreateProject(ctx, &project.Project{Name: "Trailer", StageID: &st.ID})
	require.NoError(t, err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM stages WHERE id = ?`, st.ID)
	require.Error(t, err)
	assert.True(t, isForeignKeyViolation(err), "unexpected error: %v", err)

	_, err = s.db.ExecContext(ctx, `UPDATE projects SET stage_id = ? WHERE id = ?`, st.ID+100, p.ID)
	require.Error(t, err)
	assert.True(t, isForeignKeyViolation(err), "unexpected error: %v", err)
}

func positions(t *testing.T, s *Store) []string {
	t.Helper()
	stages, err := s.ListStages(context.Background())
	require.NoError(t, err)
	out := make([]string, len(stages))
	for i, st := range stages {
		out[i] = st.Name + "@" + strconv.Itoa(st.Position)
	}
	return out
}
