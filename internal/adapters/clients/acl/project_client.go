package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/stageboard/internal/adapters/clients/acl/project"
	domainproject "github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

var _ ports.ProjectStore = (*ProjectClient)(nil)

const projectsPath = "/api/v1/projects"

// ProjectClient implements ports.ProjectStore against the remote project API.
// The stage board never owns project records in this mode; it only rewrites
// their stage reference.
//
// Circuit breaking, retries, rate limiting and tracing come from the
// underlying httpclient.Client.
type ProjectClient struct {
	client *httpclient.Client
	req    *Requester
}

// NewProjectClient creates a ProjectClient. The client's base URL should point
// at the project API root.
func NewProjectClient(client *httpclient.Client, logger *slog.Logger) *ProjectClient {
	return &ProjectClient{
		client: client,
		req:    NewRequester(client, logger),
	}
}

// GetProject fetches GET /api/v1/projects/{id}.
func (c *ProjectClient) GetProject(ctx context.Context, id int64) (*domainproject.Project, error) {
	var dto project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodGet, projectPath(id), nil, &dto); err != nil {
		return nil, err
	}
	p := project.ToDomain(dto)
	return &p, nil
}

// ListProjects fetches GET /api/v1/projects.
func (c *ProjectClient) ListProjects(ctx context.Context) ([]domainproject.Project, error) {
	var dto project.ListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, projectsPath, nil, &dto); err != nil {
		return nil, err
	}
	return project.ToDomainList(dto), nil
}

// CreateProject sends POST /api/v1/projects.
func (c *ProjectClient) CreateProject(ctx context.Context, p *domainproject.Project) (*domainproject.Project, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var dto project.ProjectDTO
	if err := c.req.Do(ctx, http.MethodPost, projectsPath, project.ToCreateRequest(p), &dto); err != nil {
		return nil, err
	}
	created := project.ToDomain(dto)
	return &created, nil
}

// SetProjectStage sends PATCH /api/v1/projects/{id} with only stage_id set.
func (c *ProjectClient) SetProjectStage(ctx context.Context, projectID int64, stageID *int64) error {
	return c.req.Do(ctx, http.MethodPatch, projectPath(projectID), project.ToStagePatch(stageID), nil)
}

// ListProjectsByStage fetches GET /api/v1/projects?stage_id={id}.
func (c *ProjectClient) ListProjectsByStage(ctx context.Context, stageID int64) ([]domainproject.Project, error) {
	dto, err := c.listByStage(ctx, stageID)
	if err != nil {
		return nil, err
	}
	return project.ToDomainList(dto), nil
}

// CountProjectsByStage uses the count reported by the stage-filtered list.
func (c *ProjectClient) CountProjectsByStage(ctx context.Context, stageID int64) (int, error) {
	dto, err := c.listByStage(ctx, stageID)
	if err != nil {
		return 0, err
	}
	return max(dto.Count, len(dto.Projects)), nil
}

func (c *ProjectClient) listByStage(ctx context.Context, stageID int64) (project.ListResponseDTO, error) {
	var dto project.ListResponseDTO
	path := projectsPath + "?stage_id=" + strconv.FormatInt(stageID, 10)
	err := c.req.Do(ctx, http.MethodGet, path, nil, &dto)
	return dto, err
}

func projectPath(id int64) string {
	return fmt.Sprintf("%s/%d", projectsPath, id)
}
