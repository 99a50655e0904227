package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/storagetest"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// dsnEnv names the database used by these tests. They are skipped when it is
// unset. The database is truncated before each case.
const dsnEnv = "STAGEBOARD_TEST_POSTGRES_DSN"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set", dsnEnv)
	}

	ctx := context.Background()
	s, err := Open(ctx, dsn, 4)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.pool.Exec(ctx, `TRUNCATE projects, stages RESTART IDENTITY`)
	require.NoError(t, err)
	return s
}

func TestStoreContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Store {
		return openTestStore(t)
	})
}

func TestOpenRequiresDSN(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), "", 0)
	assert.Error(t, err)
}

func TestOpenRejectsMalformedDSN(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), "postgres://%zz", 0)
	assert.Error(t, err)
}

func TestApplyPositions_UnknownStage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx ports.StageTx) error {
		return tx.ApplyPositions(ctx, []stage.PositionChange{{ID: 404, From: 1, To: 2}})
	})
	assert.Error(t, err)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	again, err := Open(ctx, os.Getenv(dsnEnv), 1)
	require.NoError(t, err)
	defer func() { _ = again.Close() }()

	stages, err := s.ListStages(ctx)
	require.NoError(t, err)
	assert.Empty(t, stages)
}
