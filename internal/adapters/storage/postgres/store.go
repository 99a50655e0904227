// Package postgres provides the PostgreSQL-backed stage and project store.
//
// Stage transactions run at READ COMMITTED and take a SHARE ROW EXCLUSIVE
// lock on the stages table, which conflicts with itself but not with plain
// reads. The position uniqueness constraint is deferred to commit so a
// renumbering batch can be written with one statement.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/postgres/migrations"
	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

var (
	_ ports.StageStore    = (*Store)(nil)
	_ ports.ProjectStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

const stageColumns = "id, name, position, created_at, updated_at"

// Store persists stages and projects in PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to dsn, sizes the pool and applies the embedded migrations.
// A maxConns of zero keeps the pgxpool default.
func Open(ctx context.Context, dsn string, maxConns int32) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if err := applyMigrations(ctx, pool, migrations.FS); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "postgres" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ListStages returns every stage by ascending position.
func (s *Store) ListStages(ctx context.Context) ([]stage.Stage, error) {
	return listStages(ctx, s.pool)
}

// GetStage returns a stage by ID.
func (s *Store) GetStage(ctx context.Context, id int64) (*stage.Stage, error) {
	return getStage(ctx, s.pool, id)
}

// WithinTx runs fn in a READ COMMITTED transaction that commits only when fn
// returns nil. A deferred uniqueness failure surfaces as the commit error.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.StageTx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&stageTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if hasCode(err, codeUniqueViolation) {
			return fmt.Errorf("commit transaction: duplicate stage position: %w", err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type stageTx struct {
	tx pgx.Tx
}

func (t *stageTx) LockStages(ctx context.Context) ([]stage.Stage, error) {
	if _, err := t.tx.Exec(ctx, `LOCK TABLE stages IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, fmt.Errorf("lock stages: %w", err)
	}
	return listStages(ctx, t.tx)
}

func (t *stageTx) InsertStage(ctx context.Context, name string, position int) (*stage.Stage, error) {
	st, err := scanStage(t.tx.QueryRow(ctx,
		`INSERT INTO stages (name, position) VALUES ($1, $2) RETURNING `+stageColumns,
		name, position,
	))
	if err != nil {
		return nil, fmt.Errorf("insert stage: %w", err)
	}
	return st, nil
}

func (t *stageTx) DeleteStage(ctx context.Context, id int64) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM stages WHERE id = $1`, id)
	if err != nil {
		if hasCode(err, codeForeignKeyViolation) {
			return fmt.Errorf("stage %d is referenced by projects: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (t *stageTx) RenameStage(ctx context.Context, id int64, name string) (*stage.Stage, error) {
	st, err := scanStage(t.tx.QueryRow(ctx,
		`UPDATE stages SET name = $2, updated_at = now() WHERE id = $1 RETURNING `+stageColumns,
		id, name,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("rename stage: %w", err)
	}
	return st, nil
}

// ApplyPositions rewrites the batch with a single UPDATE joined against the
// change list.
func (t *stageTx) ApplyPositions(ctx context.Context, changes []stage.PositionChange) error {
	if len(changes) == 0 {
		return nil
	}
	ids := make([]int64, len(changes))
	positions := make([]int32, len(changes))
	for i, c := range changes {
		ids[i] = c.ID
		positions[i] = int32(c.To)
	}

	tag, err := t.tx.Exec(ctx, `
		UPDATE stages AS s
		SET position = c.position, updated_at = now()
		FROM unnest($1::bigint[], $2::integer[]) AS c(id, position)
		WHERE s.id = c.id`,
		ids, positions,
	)
	if err != nil {
		return fmt.Errorf("apply positions: %w", err)
	}
	if int(tag.RowsAffected()) != len(changes) {
		return fmt.Errorf("apply positions: %d of %d stages: %w", tag.RowsAffected(), len(changes), domain.ErrNotFound)
	}
	return nil
}

func listStages(ctx context.Context, q querier) ([]stage.Stage, error) {
	rows, err := q.Query(ctx, `SELECT `+stageColumns+` FROM stages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	out := []stage.Stage{}
	for rows.Next() {
		st, err := scanStage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stage: %w", err)
		}
		out = append(out, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return out, nil
}

func getStage(ctx context.Context, q querier, id int64) (*stage.Stage, error) {
	st, err := scanStage(q.QueryRow(ctx, `SELECT `+stageColumns+` FROM stages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get stage: %w", err)
	}
	return st, nil
}

func scanStage(row pgx.Row) (*stage.Stage, error) {
	var st stage.Stage
	if err := row.Scan(&st.ID, &st.Name, &st.Position, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, err
	}
	st.CreatedAt = st.CreatedAt.UTC()
	st.UpdatedAt = st.UpdatedAt.UTC()
	return &st, nil
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
