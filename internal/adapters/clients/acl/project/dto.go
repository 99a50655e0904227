// Package project translates between the remote project API's wire format
// and domain projects.
package project

// ProjectDTO matches the remote Project schema.
type ProjectDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StageID     *int64 `json:"stage_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ListResponseDTO matches the remote ProjectList schema.
type ListResponseDTO struct {
	Projects []ProjectDTO `json:"projects"`
	Count    int          `json:"count"`
}

// CreateRequestDTO matches the remote CreateProjectRequest schema.
type CreateRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StageID     *int64 `json:"stage_id,omitempty"`
}

// StagePatchDTO is the PATCH body that rewrites a project's stage. A nil
// StageID is sent as JSON null, clearing the reference.
type StagePatchDTO struct {
	StageID *int64 `json:"stage_id"`
}
