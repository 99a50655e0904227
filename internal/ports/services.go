package ports

import (
	"context"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
)

// StageSequencer owns the ordering invariant: stage positions are always a
// dense 1..N permutation. Implemented by the application layer on top of a
// StageStore; called by the AssignmentGateway and the StageService.
//
// Every mutation runs as one atomic transaction, so readers never observe a
// half-renumbered list. Positions here are 1-based; the 0-based drag index
// of the UI is converted by StageService.MoveStage before it gets here.
//
//	// [A@1 B@2 C@3 D@4]
//	seq.Move(ctx, c.ID, 1) // [C@1 A@2 B@3 D@4]
type StageSequencer interface {
	// List returns all stages by ascending position.
	List(ctx context.Context) ([]stage.Stage, error)

	// GetByID returns a single stage.
	// Returns domain.ErrNotFound if the stage does not exist.
	GetByID(ctx context.Context, id int64) (*stage.Stage, error)

	// Create inserts a stage at position (1 <= position <= N+1), shifting
	// later stages down by one.
	// Returns domain.ErrValidation for an empty name or out-of-range position.
	Create(ctx context.Context, name string, position int) (*stage.Stage, error)

	// Delete removes a stage and closes the gap it leaves.
	// Returns domain.ErrNotFound if the stage does not exist.
	// Returns domain.ErrConflict if a project still references the stage.
	Delete(ctx context.Context, id int64) error

	// Move relocates a stage to newPosition (1 <= newPosition <= N) and
	// renumbers the whole list. Moving onto the current position is a no-op.
	// Returns domain.ErrNotFound if the stage does not exist.
	// Returns domain.ErrValidation if newPosition is out of range.
	Move(ctx context.Context, id int64, newPosition int) (*stage.Stage, error)

	// Rename changes a stage's name without touching its position.
	Rename(ctx context.Context, id int64, name string) (*stage.Stage, error)
}

// AssignmentGateway mediates between stage identities and the project store's
// stage reference field. It verifies the stage through the StageSequencer
// before touching a project, so a dangling reference is reported as
// domain.ErrNotFound rather than left for the store to reject.
//
// The project store behind it is either the local tables or the remote
// project API; callers cannot tell the two apart.
type AssignmentGateway interface {
	// AssignProjectToStage points a project at an existing stage.
	// Returns domain.ErrNotFound if either the stage or the project is unknown.
	AssignProjectToStage(ctx context.Context, projectID, stageID int64) error

	// UnassignProject clears a project's stage reference. Unassigning a
	// project that has no stage succeeds.
	// Returns domain.ErrNotFound if the project is unknown.
	UnassignProject(ctx context.Context, projectID int64) error

	// CountProjectsInStage returns the number of projects referencing stageID.
	CountProjectsInStage(ctx context.Context, stageID int64) (int, error)

	// ListProjectsInStage returns the projects referencing stageID.
	ListProjectsInStage(ctx context.Context, stageID int64) ([]project.Project, error)
}

// StageService is the request boundary called by inbound adapters (the HTTP
// handlers and the CLI). Implemented by the application layer.
//
// It is the only place that speaks in drag-and-drop 0-based indexes; every
// port below it uses 1-based positions. Failures come back as domain errors
// that the adapters map to statuses:
//
//	_, err := svc.MoveStage(ctx, id, 0) // drop at the head of the board
//	errors.Is(err, domain.ErrValidation) // bad index, HTTP 400
type StageService interface {
	// ListStages returns all stages by ascending position.
	ListStages(ctx context.Context) ([]stage.Stage, error)

	// GetStage returns a single stage. Repeated lookups within one request
	// are served from the request's memo.
	// Returns domain.ErrNotFound if the stage does not exist.
	GetStage(ctx context.Context, id int64) (*stage.Stage, error)

	// CreateStage inserts a stage at the 1-based position.
	// Returns domain.ErrValidation for an empty name or out-of-range position.
	CreateStage(ctx context.Context, name string, position int) (*stage.Stage, error)

	// RenameStage changes a stage's name and keeps its position.
	// Returns domain.ErrNotFound if the stage does not exist.
	RenameStage(ctx context.Context, id int64, name string) (*stage.Stage, error)

	// DeleteStage removes a stage no project references any more.
	// Returns domain.ErrConflict while projects reference the stage.
	// Returns domain.ErrNotFound if the stage does not exist.
	DeleteStage(ctx context.Context, id int64) error

	// MoveStage moves a stage to the 0-based index it was dropped at and
	// returns the canonical ordered list.
	MoveStage(ctx context.Context, id int64, targetIndex int) ([]stage.Stage, error)

	// AssignProject puts a project into a stage. Stage IDs are used as-is.
	// Returns domain.ErrNotFound if the stage or the project is unknown.
	AssignProject(ctx context.Context, projectID, stageID int64) error

	// UnassignProject takes a project off the board.
	UnassignProject(ctx context.Context, projectID int64) error

	// ListProjectsInStage returns the projects in one stage.
	// Returns domain.ErrNotFound if the stage does not exist.
	ListProjectsInStage(ctx context.Context, stageID int64) ([]project.Project, error)

	// Board returns every stage in order with the projects it holds.
	Board(ctx context.Context) ([]BoardColumn, error)

	// DrainStage moves every project in fromID to toID. Either all projects
	// move or none do: a failed reassignment moves the others back.
	// Returns domain.ErrValidation if fromID equals toID.
	// Returns domain.ErrNotFound if either stage does not exist.
	DrainStage(ctx context.Context, fromID, toID int64) (*DrainResult, error)
}

// BoardColumn is one stage of the board together with its projects.
type BoardColumn struct {
	Stage    stage.Stage
	Projects []project.Project
}

// DrainResult reports the projects moved by DrainStage.
type DrainResult struct {
	FromStageID int64
	ToStageID   int64
	Moved       []int64
}
