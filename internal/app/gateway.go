package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// Compile-time check that Gateway implements ports.AssignmentGateway.
var _ ports.AssignmentGateway = (*Gateway)(nil)

// Gateway writes stage references into the external project store after
// confirming, through the sequencer, that the stage exists. It owns no state.
type Gateway struct {
	sequencer ports.StageSequencer
	projects  ports.ProjectStore
	logger    *slog.Logger
}

// NewGateway creates a Gateway. A nil logger discards output.
func NewGateway(sequencer ports.StageSequencer, projects ports.ProjectStore, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gateway{
		sequencer: sequencer,
		projects:  projects,
		logger:    logger,
	}
}

// AssignProjectToStage points projectID at stageID.
func (g *Gateway) AssignProjectToStage(ctx context.Context, projectID, stageID int64) error {
	g.logger.InfoContext(ctx, "assigning project to stage",
		slog.Int64("project_id", projectID),
		slog.Int64("stage_id", stageID),
	)

	if _, err := g.sequencer.GetByID(ctx, stageID); err != nil {
		return g.fail(ctx, "AssignProjectToStage", fmt.Errorf("verifying stage: %w", err))
	}

	if err := g.projects.SetProjectStage(ctx, projectID, &stageID); err != nil {
		return g.fail(ctx, "AssignProjectToStage", fmt.Errorf("updating project %d: %w", projectID, err))
	}
	return nil
}

// UnassignProject clears the stage reference of projectID.
func (g *Gateway) UnassignProject(ctx context.Context, projectID int64) error {
	g.logger.InfoContext(ctx, "unassigning project", slog.Int64("project_id", projectID))

	if err := g.projects.SetProjectStage(ctx, projectID, nil); err != nil {
		return g.fail(ctx, "UnassignProject", fmt.Errorf("updating project %d: %w", projectID, err))
	}
	return nil
}

// CountProjectsInStage returns how many projects reference stageID.
func (g *Gateway) CountProjectsInStage(ctx context.Context, stageID int64) (int, error) {
	if _, err := g.sequencer.GetByID(ctx, stageID); err != nil {
		return 0, g.fail(ctx, "CountProjectsInStage", fmt.Errorf("verifying stage: %w", err))
	}

	n, err := g.projects.CountProjectsByStage(ctx, stageID)
	if err != nil {
		return 0, g.fail(ctx, "CountProjectsInStage", fmt.Errorf("counting projects: %w", err))
	}
	return n, nil
}

// ListProjectsInStage returns the projects referencing stageID.
func (g *Gateway) ListProjectsInStage(ctx context.Context, stageID int64) ([]project.Project, error) {
	if _, err := g.sequencer.GetByID(ctx, stageID); err != nil {
		return nil, g.fail(ctx, "ListProjectsInStage", fmt.Errorf("verifying stage: %w", err))
	}

	projects, err := g.projects.ListProjectsByStage(ctx, stageID)
	if err != nil {
		return nil, g.fail(ctx, "ListProjectsInStage", fmt.Errorf("listing projects: %w", err))
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}

func (g *Gateway) fail(ctx context.Context, op string, err error) error {
	err = classify(op, err)
	g.logger.ErrorContext(ctx, "assignment operation failed",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	return err
}
