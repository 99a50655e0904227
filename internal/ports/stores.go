package ports

import (
	"context"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
)

// StageStore defines the persistence port for the ordered stage list.
// Implemented by the storage adapters; called only by the sequencer, which is
// the sole writer of stage positions.
type StageStore interface {
	// ListStages returns all stages ordered by ascending position. It only
	// ever observes committed state.
	ListStages(ctx context.Context) ([]stage.Stage, error)

	// GetStage returns a single stage by ID.
	// Returns domain.ErrNotFound if the stage does not exist.
	GetStage(ctx context.Context, id int64) (*stage.Stage, error)

	// WithinTx runs fn inside a single storage transaction. A nil return from
	// fn commits; any error rolls back every write made through the StageTx.
	WithinTx(ctx context.Context, fn func(tx StageTx) error) error
}

// StageTx is the transactional view of the stage list handed to
// StageStore.WithinTx callbacks. It must not be retained after fn returns.
type StageTx interface {
	// LockStages returns the full ordered list and holds a lock that
	// serializes concurrent reorders until the transaction ends.
	LockStages(ctx context.Context) ([]stage.Stage, error)

	// InsertStage stores a new stage at position and returns it as persisted.
	// The caller must have freed the position first.
	InsertStage(ctx context.Context, name string, position int) (*stage.Stage, error)

	// DeleteStage removes a stage row.
	// Returns domain.ErrNotFound if it does not exist, or domain.ErrConflict if
	// project records still reference it.
	DeleteStage(ctx context.Context, id int64) error

	// RenameStage updates a stage's name and returns the stage as persisted.
	// Returns domain.ErrNotFound if the stage does not exist.
	RenameStage(ctx context.Context, id int64, name string) (*stage.Stage, error)

	// ApplyPositions rewrites the positions of the given stages as one batch.
	ApplyPositions(ctx context.Context, changes []stage.PositionChange) error
}

// ProjectStore defines the port to the external project record store. Only the
// stage reference of a project is written through it.
type ProjectStore interface {
	// GetProject returns a single project by ID.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id int64) (*project.Project, error)

	// ListProjects returns every project in the store's own order.
	ListProjects(ctx context.Context) ([]project.Project, error)

	// CreateProject adds a project record and returns it with its ID set.
	CreateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// SetProjectStage points a project at stageID, or clears the reference
	// when stageID is nil.
	// Returns domain.ErrNotFound if the project does not exist.
	SetProjectStage(ctx context.Context, projectID int64, stageID *int64) error

	// ListProjectsByStage returns projects referencing stageID in insertion order.
	ListProjectsByStage(ctx context.Context, stageID int64) ([]project.Project, error)

	// CountProjectsByStage returns how many projects reference stageID.
	CountProjectsByStage(ctx context.Context, stageID int64) (int, error)
}

// RenumberRecorder receives metrics about committed stage mutations.
type RenumberRecorder interface {
	RecordStageMutation(ctx context.Context, operation string, rowsRenumbered int)
}
