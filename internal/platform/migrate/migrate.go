// Package migrate applies embedded, forward-only SQL migrations. Each file is
// applied at most once, inside its own transaction, and recorded in the
// schema_migrations table.
//
// A file may carry "-- +migrate Up" and "-- +migrate Down" markers; only the
// Up section is executed. Files without markers run in full.
package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"time"
)

// Table records which migration files have been applied.
const Table = "schema_migrations"

const (
	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// File is one migration ready to run.
type File struct {
	Name string
	Up   string
}

// Files returns the .sql files at the root of fsys sorted by name, with their
// Up sections extracted. Files whose Up section is blank are skipped.
func Files(fsys fs.FS) ([]File, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		up := ExtractUp(string(content))
		if strings.TrimSpace(up) == "" {
			continue
		}
		files = append(files, File{Name: name, Up: up})
	}
	return files, nil
}

// ExtractUp returns the SQL between the Up and Down markers.
func ExtractUp(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(rest, downMarker); downIdx != -1 {
		return rest[:downIdx]
	}
	return rest
}

// ApplySQL runs pending migrations from fsys against a database/sql handle
// using "?" placeholders. It is used for SQLite.
func ApplySQL(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	if db == nil {
		return errors.New("sql db is required")
	}

	files, err := Files(fsys)
	if err != nil {
		return err
	}

	createSQL := `CREATE TABLE IF NOT EXISTS ` + Table + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, f := range files {
		if err := applyOne(ctx, db, f); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ctx context.Context, db *sql.DB, f File) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", f.Name, err)
	}
	defer func() { _ = tx.Rollback() }()

	var found int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM "+Table+" WHERE name = ?", f.Name).Scan(&found)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("check migration %s: %w", f.Name, err)
	}

	if _, err := tx.ExecContext(ctx, f.Up); err != nil {
		return fmt.Errorf("exec migration %s: %w", f.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO "+Table+" (name, applied_at) VALUES (?, ?)",
		f.Name, time.Now().UTC().UnixMilli(),
	); err != nil {
		return fmt.Errorf("record migration %s: %w", f.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", f.Name, err)
	}
	return nil
}
