package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/stageboard/internal/platform/migrate"
)

// migrationLockKey serializes concurrent migrators across processes.
const migrationLockKey = 7_140_221

func applyMigrations(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	files, err := migrate.Files(fsys)
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+migrate.Table+` (
    name TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, f := range files {
		if err := applyOne(ctx, pool, f); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, f migrate.File) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", f.Name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockKey); err != nil {
		return fmt.Errorf("lock migrations: %w", err)
	}

	var applied bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM `+migrate.Table+` WHERE name = $1)`, f.Name,
	).Scan(&applied); err != nil {
		return fmt.Errorf("check migration %s: %w", f.Name, err)
	}
	if applied {
		return nil
	}

	if _, err := tx.Exec(ctx, f.Up); err != nil {
		return fmt.Errorf("exec migration %s: %w", f.Name, err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO `+migrate.Table+` (name) VALUES ($1)`, f.Name); err != nil {
		return fmt.Errorf("record migration %s: %w", f.Name, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration %s: %w", f.Name, err)
	}
	return nil
}
