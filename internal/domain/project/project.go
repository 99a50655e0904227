// Package project holds the slice of a project record that the board cares
// about. Projects are owned elsewhere; this service only reads them and
// moves their stage reference.
package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// Project is a project as seen by the board. A nil StageID means the
// project is not on the board.
type Project struct {
	ID          int64
	Name        string
	Description string
	StageID     *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InStage reports whether p sits in stage stageID.
func (p *Project) InStage(stageID int64) bool {
	return p.StageID != nil && *p.StageID == stageID
}

// Validate returns a *domain.ValidationError listing every bad field.
func (p *Project) Validate() error {
	verr := &domain.ValidationError{Fields: map[string]string{}}
	if strings.TrimSpace(p.Name) == "" {
		verr.Fields["name"] = domain.MsgRequired
	}
	if id := p.StageID; id != nil && *id < 1 {
		verr.Fields["stage_id"] = fmt.Sprintf("must be positive, got %d", *id)
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}
