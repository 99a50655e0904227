package project

import (
	"time"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
)

// ToDomain converts a remote project to a domain Project. Unparseable
// timestamps become the zero time.
func ToDomain(dto ProjectDTO) project.Project {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	return project.Project{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		StageID:     dto.StageID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ToDomainList converts a remote list response. The result is never nil.
func ToDomainList(dto ListResponseDTO) []project.Project {
	projects := make([]project.Project, len(dto.Projects))
	for i := range dto.Projects {
		projects[i] = ToDomain(dto.Projects[i])
	}
	return projects
}

// ToCreateRequest converts a domain Project to the remote create payload.
func ToCreateRequest(p *project.Project) CreateRequestDTO {
	return CreateRequestDTO{
		Name:        p.Name,
		Description: p.Description,
		StageID:     p.StageID,
	}
}

// ToStagePatch builds the PATCH payload that points a project at stageID.
func ToStagePatch(stageID *int64) StagePatchDTO {
	return StagePatchDTO{StageID: stageID}
}
