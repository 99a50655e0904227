package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	appctx "github.com/jsamuelsen11/stageboard/internal/app/context"
	"github.com/jsamuelsen11/stageboard/internal/app/fanout"
	"github.com/jsamuelsen11/stageboard/internal/domain"
	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// Compile-time check that StageService implements ports.StageService.
var _ ports.StageService = (*StageService)(nil)

// DefaultBoardWorkers bounds concurrent column loads when no limit is configured.
const DefaultBoardWorkers = 4

// StageService is the request boundary in front of the sequencer and the
// assignment gateway. It converts drag-and-drop indexes to positions, enforces
// the no-orphan rule on delete and assembles the board view.
type StageService struct {
	sequencer    ports.StageSequencer
	gateway      ports.AssignmentGateway
	boardWorkers int
	logger       *slog.Logger
}

// NewStageService creates a StageService. boardWorkers bounds the number of
// stage columns loaded concurrently by Board and DrainStage.
func NewStageService(sequencer ports.StageSequencer, gateway ports.AssignmentGateway, boardWorkers int, logger *slog.Logger) *StageService {
	if boardWorkers < 1 {
		boardWorkers = DefaultBoardWorkers
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StageService{
		sequencer:    sequencer,
		gateway:      gateway,
		boardWorkers: boardWorkers,
		logger:       logger,
	}
}

// ListStages returns all stages in order.
func (s *StageService) ListStages(ctx context.Context) ([]stage.Stage, error) {
	s.logger.InfoContext(ctx, "listing stages")

	stages, err := s.sequencer.List(ctx)
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// GetStage returns a single stage. Lookups are memoized per request.
func (s *StageService) GetStage(ctx context.Context, id int64) (*stage.Stage, error) {
	s.logger.InfoContext(ctx, "fetching stage", slog.Int64("id", id))
	return s.lookupStage(ctx, id)
}

// CreateStage inserts a stage at a 1-based position.
func (s *StageService) CreateStage(ctx context.Context, name string, position int) (*stage.Stage, error) {
	created, err := s.sequencer.Create(ctx, name, position)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RenameStage changes a stage's name.
func (s *StageService) RenameStage(ctx context.Context, id int64, name string) (*stage.Stage, error) {
	renamed, err := s.sequencer.Rename(ctx, id, name)
	if err != nil {
		return nil, err
	}
	appctx.FromContext(ctx).Forget(stageKey(id))
	return renamed, nil
}

// DeleteStage deletes a stage that no project references any more.
func (s *StageService) DeleteStage(ctx context.Context, id int64) error {
	n, err := s.gateway.CountProjectsInStage(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.WarnContext(ctx, "refusing to delete stage with assigned projects",
			slog.String("operation", "DeleteStage"),
			slog.Int64("id", id),
			slog.Int("projects", n),
		)
		return fmt.Errorf("stage %d still holds %d project(s), reassign them first: %w", id, n, domain.ErrConflict)
	}

	if err := s.sequencer.Delete(ctx, id); err != nil {
		return err
	}
	appctx.FromContext(ctx).Forget(stageKey(id))
	return nil
}

// MoveStage moves a stage to the 0-based targetIndex it was dropped at and
// returns the resulting order.
func (s *StageService) MoveStage(ctx context.Context, id int64, targetIndex int) ([]stage.Stage, error) {
	if targetIndex < 0 {
		return nil, domain.NewValidationError("index", fmt.Sprintf("must be zero or greater, got %d", targetIndex))
	}

	// Drop targets are 0-based; stored positions are 1-based.
	if _, err := s.sequencer.Move(ctx, id, targetIndex+1); err != nil {
		return nil, err
	}

	stages, err := s.sequencer.List(ctx)
	if err != nil {
		return nil, err
	}
	return stages, nil
}

// AssignProject puts a project into a stage. Stage IDs are used as-is; no
// index conversion applies to project moves.
func (s *StageService) AssignProject(ctx context.Context, projectID, stageID int64) error {
	return s.gateway.AssignProjectToStage(ctx, projectID, stageID)
}

// UnassignProject takes a project off the board.
func (s *StageService) UnassignProject(ctx context.Context, projectID int64) error {
	return s.gateway.UnassignProject(ctx, projectID)
}

// ListProjectsInStage returns the projects in one stage.
func (s *StageService) ListProjectsInStage(ctx context.Context, stageID int64) ([]project.Project, error) {
	return s.gateway.ListProjectsInStage(ctx, stageID)
}

// Board returns every stage in order with its projects. Columns are loaded
// concurrently.
func (s *StageService) Board(ctx context.Context) ([]ports.BoardColumn, error) {
	s.logger.InfoContext(ctx, "building board")

	stages, err := s.sequencer.List(ctx)
	if err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.boardWorkers, stages, func(ctx context.Context, st stage.Stage) (ports.BoardColumn, error) {
		projects, err := s.gateway.ListProjectsInStage(ctx, st.ID)
		if err != nil {
			return ports.BoardColumn{}, fmt.Errorf("loading column %q: %w", st.Name, err)
		}
		return ports.BoardColumn{Stage: st, Projects: projects}, nil
	})

	columns, err := fanout.Collect(results)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build board",
			slog.String("operation", "Board"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return columns, nil
}

// DrainStage moves every project in fromID to toID. The reassignments run as
// one action group: if any of them fails, the ones that succeeded are moved
// back to fromID.
func (s *StageService) DrainStage(ctx context.Context, fromID, toID int64) (*ports.DrainResult, error) {
	s.logger.InfoContext(ctx, "draining stage",
		slog.Int64("from_stage_id", fromID),
		slog.Int64("to_stage_id", toID),
	)

	if fromID == toID {
		return nil, domain.NewValidationError("target_stage_id", "must differ from the drained stage")
	}
	if _, err := s.lookupStage(ctx, fromID); err != nil {
		return nil, err
	}
	if _, err := s.lookupStage(ctx, toID); err != nil {
		return nil, err
	}

	projects, err := s.gateway.ListProjectsInStage(ctx, fromID)
	if err != nil {
		return nil, err
	}

	result := &ports.DrainResult{FromStageID: fromID, ToStageID: toID, Moved: []int64{}}
	if len(projects) == 0 {
		return result, nil
	}

	moved := appctx.NewRef(make([]int64, 0, len(projects)))
	actions := make([]domain.Action, len(projects))
	for i := range projects {
		actions[i] = &reassignAction{
			gateway:   s.gateway,
			projectID: projects[i].ID,
			fromID:    fromID,
			toID:      toID,
			moved:     moved,
		}
	}

	// Drains get their own queue so they never mix with other staged work.
	rc := appctx.New(ctx)
	if err := rc.AddBoundedGroup(s.boardWorkers, actions...); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to drain stage",
			slog.String("operation", "DrainStage"),
			slog.Int64("from_stage_id", fromID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("draining stage %d: %w", fromID, err)
	}

	result.Moved = slices.Clone(moved.Load())
	slices.Sort(result.Moved)
	return result, nil
}

func (s *StageService) lookupStage(ctx context.Context, id int64) (*stage.Stage, error) {
	return appctx.GetOrFetch(appctx.FromContext(ctx), stageKey(id), func(ctx context.Context) (*stage.Stage, error) {
		return s.sequencer.GetByID(ctx, id)
	})
}

func stageKey(id int64) string {
	return "stage:" + strconv.FormatInt(id, 10)
}
