package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
)

// GetProject returns a project by ID.
func (s *Store) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.state.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return &p, nil
}

// ListProjects returns every project by ascending ID.
func (s *Store) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.filterProjects(ctx, func(project.Project) bool { return true })
}

// CreateProject stores p with a fresh ID.
func (s *Store) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, func(st *state) (*project.Project, error) {
		if p.StageID != nil {
			if _, ok := st.stages[*p.StageID]; !ok {
				return nil, fmt.Errorf("stage %d: %w", *p.StageID, domain.ErrNotFound)
			}
		}
		st.nextProjectID++
		created := *p
		created.ID = st.nextProjectID
		created.CreatedAt = s.now()
		created.UpdatedAt = created.CreatedAt
		st.projects[created.ID] = created
		return &created, nil
	})
}

// SetProjectStage updates a project's stage reference.
func (s *Store) SetProjectStage(ctx context.Context, projectID int64, stageID *int64) error {
	_, err := s.mutate(ctx, func(st *state) (*project.Project, error) {
		p, ok := st.projects[projectID]
		if !ok {
			return nil, fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
		}
		if stageID != nil {
			if _, ok := st.stages[*stageID]; !ok {
				return nil, fmt.Errorf("stage %d: %w", *stageID, domain.ErrNotFound)
			}
			id := *stageID
			p.StageID = &id
		} else {
			p.StageID = nil
		}
		p.UpdatedAt = s.now()
		st.projects[projectID] = p
		return &p, nil
	})
	return err
}

// ListProjectsByStage returns the projects referencing stageID by ascending ID.
func (s *Store) ListProjectsByStage(ctx context.Context, stageID int64) ([]project.Project, error) {
	return s.filterProjects(ctx, func(p project.Project) bool { return p.InStage(stageID) })
}

// CountProjectsByStage returns how many projects reference stageID.
func (s *Store) CountProjectsByStage(ctx context.Context, stageID int64) (int, error) {
	projects, err := s.ListProjectsByStage(ctx, stageID)
	return len(projects), err
}

func (s *Store) filterProjects(ctx context.Context, keep func(project.Project) bool) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []project.Project{}
	for _, id := range slices.Sorted(maps.Keys(s.state.projects)) {
		if p := s.state.projects[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// mutate applies fn to the shared state under the writer lock so project
// updates serialize with stage transactions.
func (s *Store) mutate(ctx context.Context, fn func(*state) (*project.Project, error)) (*project.Project, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}
