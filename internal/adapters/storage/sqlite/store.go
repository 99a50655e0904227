// Package sqlite provides the SQLite-backed stage and project store.
//
// The database is opened with a single connection and immediate transactions,
// so a stage transaction holds the write lock from BEGIN until COMMIT and
// concurrent reorders serialize.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/stageboard/internal/adapters/storage/sqlite/migrations"
	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/platform/migrate"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

var (
	_ ports.StageStore    = (*Store)(nil)
	_ ports.ProjectStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const stageColumns = "id, name, position, created_at, updated_at"

// Store persists stages and projects in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrate.ApplySQL(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListStages returns every stage by ascending position.
func (s *Store) ListStages(ctx context.Context) ([]stage.Stage, error) {
	return listStages(ctx, s.db)
}

// GetStage returns a stage by ID.
func (s *Store) GetStage(ctx context.Context, id int64) (*stage.Stage, error) {
	return getStage(ctx, s.db, id)
}

// WithinTx runs fn in an immediate transaction. The transaction commits only
// when fn returns nil.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.StageTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&stageTx{tx: tx, now: s.now}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

type stageTx struct {
	tx  *sql.Tx
	now func() time.Time
}

// LockStages reads the ordered list. The immediate transaction already holds
// the database write lock.
func (t *stageTx) LockStages(ctx context.Context) ([]stage.Stage, error) {
	return listStages(ctx, t.tx)
}

func (t *stageTx) InsertStage(ctx context.Context, name string, position int) (*stage.Stage, error) {
	now := t.now()
	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO stages (name, position, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		name, position, toMillis(now), toMillis(now),
	)
	if err != nil {
		return nil, fmt.Errorf("insert stage: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert stage id: %w", err)
	}
	return getStage(ctx, t.tx, id)
}

// DeleteStage removes the stage unless a project still references it. The
// reference check runs under the transaction's write lock, so no assignment
// can slip in between it and the DELETE; the foreign key backs it up.
func (t *stageTx) DeleteStage(ctx context.Context, id int64) error {
	var referenced bool
	if err := t.tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE stage_id = ?)`, id,
	).Scan(&referenced); err != nil {
		return fmt.Errorf("check stage references: %w", err)
	}
	if referenced {
		return fmt.Errorf("stage %d is referenced by projects: %w", id, domain.ErrConflict)
	}

	res, err := t.tx.ExecContext(ctx, `DELETE FROM stages WHERE id = ?`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("stage %d is referenced by projects: %w", id, domain.ErrConflict)
		}
		return fmt.Errorf("delete stage: %w", err)
	}
	return requireRow(res, "stage", id)
}

func (t *stageTx) RenameStage(ctx context.Context, id int64, name string) (*stage.Stage, error) {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE stages SET name = ?, updated_at = ? WHERE id = ?`,
		name, toMillis(t.now()), id,
	)
	if err != nil {
		return nil, fmt.Errorf("rename stage: %w", err)
	}
	if err := requireRow(res, "stage", id); err != nil {
		return nil, err
	}
	return getStage(ctx, t.tx, id)
}

// ApplyPositions writes every change in two passes. The first parks each row
// on the negation of its target, which no committed row can hold, so the
// UNIQUE(position) constraint is never violated mid-batch.
func (t *stageTx) ApplyPositions(ctx context.Context, changes []stage.PositionChange) error {
	if len(changes) == 0 {
		return nil
	}
	stmt, err := t.tx.PrepareContext(ctx, `UPDATE stages SET position = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare position update: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := toMillis(t.now())
	for _, c := range changes {
		res, err := stmt.ExecContext(ctx, -c.To, now, c.ID)
		if err != nil {
			return fmt.Errorf("park stage %d: %w", c.ID, err)
		}
		if err := requireRow(res, "stage", c.ID); err != nil {
			return err
		}
	}
	for _, c := range changes {
		if _, err := stmt.ExecContext(ctx, c.To, now, c.ID); err != nil {
			return fmt.Errorf("position stage %d: %w", c.ID, err)
		}
	}
	return nil
}

func listStages(ctx context.Context, q querier) ([]stage.Stage, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+stageColumns+` FROM stages ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []stage.Stage{}
	for rows.Next() {
		st, err := scanStage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return out, nil
}

func getStage(ctx context.Context, q querier, id int64) (*stage.Stage, error) {
	st, err := scanStage(q.QueryRowContext(ctx, `SELECT `+stageColumns+` FROM stages WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	return st, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStage(row scanner) (*stage.Stage, error) {
	var (
		st               stage.Stage
		created, updated int64
	)
	if err := row.Scan(&st.ID, &st.Name, &st.Position, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan stage: %w", err)
	}
	st.CreatedAt = fromMillis(created)
	st.UpdatedAt = fromMillis(updated)
	return &st, nil
}

func requireRow(res sql.Result, kind string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

func isConstraint(err error, code int) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code() == code
	}
	return false
}

// isForeignKeyViolation matches both ways SQLite reports a foreign key
// failure. A bad reference on INSERT or UPDATE is SQLITE_CONSTRAINT_FOREIGNKEY,
// but an ON DELETE RESTRICT action fires as SQLITE_CONSTRAINT_TRIGGER.
func isForeignKeyViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	case sqlite3lib.SQLITE_CONSTRAINT_TRIGGER:
		return strings.Contains(sqliteErr.Error(), "FOREIGN KEY")
	default:
		return false
	}
}
