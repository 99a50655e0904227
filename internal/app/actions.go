package app

import (
	"context"
	"fmt"
	"slices"

	appctx "github.com/jsamuelsen11/stageboard/internal/app/context"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// reassignAction moves one project between stages and can move it back.
type reassignAction struct {
	gateway   ports.AssignmentGateway
	projectID int64
	fromID    int64
	toID      int64
	moved     *appctx.SafeRef[[]int64]
}

func (a *reassignAction) Execute(ctx context.Context) error {
	if err := a.gateway.AssignProjectToStage(ctx, a.projectID, a.toID); err != nil {
		return err
	}
	a.moved.Update(func(ids *[]int64) { *ids = append(*ids, a.projectID) })
	return nil
}

func (a *reassignAction) Rollback(ctx context.Context) error {
	if err := a.gateway.AssignProjectToStage(ctx, a.projectID, a.fromID); err != nil {
		return err
	}
	a.moved.Update(func(ids *[]int64) {
		*ids = slices.DeleteFunc(*ids, func(id int64) bool { return id == a.projectID })
	})
	return nil
}

func (a *reassignAction) Description() string {
	return fmt.Sprintf("move project %d from stage %d to stage %d", a.projectID, a.fromID, a.toID)
}
