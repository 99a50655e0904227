package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// CreateStageRequest is the body of POST /api/v1/stages. Position is the
// 1-based slot the new stage takes.
type CreateStageRequest struct {
	Name     string `json:"name"`
	Position *int   `json:"position"`
}

// Validate checks that required fields are present. Range checks against the
// current stage count happen in the sequencer.
func (r *CreateStageRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if r.Position == nil {
		fields["position"] = domain.MsgRequired
	} else if *r.Position < 1 {
		fields["position"] = fmt.Sprintf("must be at least 1, got %d", *r.Position)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RenameStageRequest is the body of PATCH /api/v1/stages/{id}.
type RenameStageRequest struct {
	Name string `json:"name"`
}

// Validate checks that a name was given.
func (r *RenameStageRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return domain.NewValidationError("name", domain.MsgRequired)
	}
	return nil
}

// MoveStageRequest is the body of POST /api/v1/stages/{id}/move. Index is the
// 0-based slot the stage was dropped at in the rendered list.
type MoveStageRequest struct {
	Index *int `json:"index"`
}

// Validate checks that an index was given and is not negative.
func (r *MoveStageRequest) Validate() error {
	switch {
	case r.Index == nil:
		return domain.NewValidationError("index", domain.MsgRequired)
	case *r.Index < 0:
		return domain.NewValidationError("index", fmt.Sprintf("must be zero or greater, got %d", *r.Index))
	}
	return nil
}

// DrainStageRequest is the body of POST /api/v1/stages/{id}/drain.
type DrainStageRequest struct {
	TargetStageID int64 `json:"target_stage_id"`
}

// Validate checks that a target stage was named.
func (r *DrainStageRequest) Validate() error {
	if r.TargetStageID <= 0 {
		return domain.NewValidationError("target_stage_id", domain.MsgRequired)
	}
	return nil
}

// AssignStageRequest is the body of PUT /api/v1/projects/{id}/stage.
type AssignStageRequest struct {
	StageID int64 `json:"stage_id"`
}

// Validate checks that a stage was named.
func (r *AssignStageRequest) Validate() error {
	if r.StageID <= 0 {
		return domain.NewValidationError("stage_id", domain.MsgRequired)
	}
	return nil
}
