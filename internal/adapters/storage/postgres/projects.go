package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
)

const projectColumns = "id, name, description, stage_id, created_at, updated_at"

// GetProject returns a project by ID.
func (s *Store) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	p, err := scanProject(s.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
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
	created, err := scanProject(s.pool.QueryRow(ctx,
		`INSERT INTO projects (name, description, stage_id) VALUES ($1, $2, $3) RETURNING `+projectColumns,
		p.Name, p.Description, p.StageID,
	))
	if err != nil {
		if hasCode(err, codeForeignKeyViolation) {
			return nil, fmt.Errorf("stage %d: %w", *p.StageID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return created, nil
}

// SetProjectStage rewrites the stage reference of a project.
func (s *Store) SetProjectStage(ctx context.Context, projectID int64, stageID *int64) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE projects SET stage_id = $2, updated_at = now() WHERE id = $1`,
		projectID, stageID,
	)
	if err != nil {
		if hasCode(err, codeForeignKeyViolation) {
			return fmt.Errorf("stage %d: %w", *stageID, domain.ErrNotFound)
		}
		return fmt.Errorf("set project stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	return nil
}

// ListProjectsByStage returns the projects referencing stageID by ascending ID.
func (s *Store) ListProjectsByStage(ctx context.Context, stageID int64) ([]project.Project, error) {
	return s.queryProjects(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE stage_id = $1 ORDER BY id`, stageID)
}

// CountProjectsByStage returns how many projects reference stageID.
func (s *Store) CountProjectsByStage(ctx context.Context, stageID int64) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE stage_id = $1`, stageID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func (s *Store) queryProjects(ctx context.Context, query string, args ...any) ([]project.Project, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := []project.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.StageID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
