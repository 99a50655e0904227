package domain

import "context"

// Action is one undoable step of a multi-step change, for example pointing a
// single project at another stage while a stage is drained.
type Action interface {
	Execute(ctx context.Context) error
	// Rollback undoes a successful Execute. Failed actions are not rolled back.
	Rollback(ctx context.Context) error
	// Description is logged when the action runs or is undone.
	Description() string
}
