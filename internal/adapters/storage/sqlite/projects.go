package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
)

const projectColumns = "id, name, description, stage_id, created_at, updated_at"

// GetProject returns a project by ID.
func (s *Store) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	p, err := scanProject(s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return p, err
}

// ListProjects returns every project by ascending ID.
func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

// CreateProject inserts p and returns the stored record.
func (s *Store) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	now := toMillis(s.now())
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, stage_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		p.Name, p.Description, nullableID(p.StageID), now, now,
	)
	if err != nil {
		if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return nil, fmt.Errorf("stage %d: %w", *p.StageID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert project id: %w", err)
	}
	return s.GetProject(ctx, id)
}

// SetProjectStage rewrites the stage reference of a project. The foreign key
// rejects references to stages that do not exist.
func (s *Store) SetProjectStage(ctx context.Context, projectID int64, stageID *int64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET stage_id = ?, updated_at = ? WHERE id = ?`,
		nullableID(stageID), toMillis(s.now()), projectID,
	)
	if err != nil {
		if isConstraint(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) {
			return fmt.Errorf("stage %d: %w", *stageID, domain.ErrNotFound)
		}
		return fmt.Errorf("set project stage: %w", err)
	}
	return requireRow(res, "project", projectID)
}

// ListProjectsByStage returns the projects referencing stageID by ascending ID.
func (s *Store) ListProjectsByStage(ctx context.Context, stageID int64) ([]project.Project, error) {
	return s.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE stage_id = ? ORDER BY id`, stageID)
}

// CountProjectsByStage returns how many projects reference stageID.
func (s *Store) CountProjectsByStage(ctx context.Context, stageID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE stage_id = ?`, stageID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func (s *Store) queryProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func scanProject(row scanner) (*project.Project, error) {
	var (
		p                project.Project
		stageID          sql.NullInt64
		created, updated int64
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &stageID, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan project: %w", err)
	}
	if stageID.Valid {
		id := stageID.Int64
		p.StageID = &id
	}
	p.CreatedAt = fromMillis(created)
	p.UpdatedAt = fromMillis(updated)
	return &p, nil
}

func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
