// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// StageResponse represents a single stage in HTTP responses.
type StageResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// StageListResponse is the canonical ordered stage list.
type StageListResponse struct {
	Stages []StageResponse `json:"stages"`
	Count  int             `json:"count"`
}

// ToStageResponse converts a domain Stage to its HTTP form.
func ToStageResponse(s *stage.Stage) StageResponse {
	return StageResponse{
		ID:        s.ID,
		Name:      s.Name,
		Position:  s.Position,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

// ToStageListResponse converts stages, already in order, to a list response.
func ToStageListResponse(stages []stage.Stage) StageListResponse {
	items := make([]StageResponse, len(stages))
	for i := range stages {
		items[i] = ToStageResponse(&stages[i])
	}
	return StageListResponse{Stages: items, Count: len(items)}
}

// ProjectResponse represents a single project in HTTP responses. StageID is
// null for projects that are not on the board.
type ProjectResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StageID     *int64 `json:"stage_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project to its HTTP form.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StageID:     p.StageID,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
}

// ToProjectListResponse converts projects to a list response.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// AssignmentResponse confirms a project's new stage.
type AssignmentResponse struct {
	ProjectID int64 `json:"project_id"`
	StageID   int64 `json:"stage_id"`
}

// BoardColumnResponse is one stage with its projects.
type BoardColumnResponse struct {
	Stage    StageResponse     `json:"stage"`
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// BoardResponse is the whole board, columns in stage order.
type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}

// ToBoardResponse converts board columns to their HTTP form.
func ToBoardResponse(columns []ports.BoardColumn) BoardResponse {
	out := make([]BoardColumnResponse, len(columns))
	for i := range columns {
		list := ToProjectListResponse(columns[i].Projects)
		out[i] = BoardColumnResponse{
			Stage:    ToStageResponse(&columns[i].Stage),
			Projects: list.Projects,
			Count:    list.Count,
		}
	}
	return BoardResponse{Columns: out}
}

// DrainResponse reports the projects moved out of a stage.
type DrainResponse struct {
	FromStageID int64   `json:"from_stage_id"`
	ToStageID   int64   `json:"to_stage_id"`
	Moved       []int64 `json:"moved"`
	Count       int     `json:"count"`
}

// ToDrainResponse converts a drain result to its HTTP form.
func ToDrainResponse(r *ports.DrainResult) DrainResponse {
	moved := r.Moved
	if moved == nil {
		moved = []int64{}
	}
	return DrainResponse{
		FromStageID: r.FromStageID,
		ToStageID:   r.ToStageID,
		Moved:       moved,
		Count:       len(moved),
	}
}

// formatTime renders t as RFC 3339, or "" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
