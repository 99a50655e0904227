// Package stage holds the Stage entity and the ordering algebra that keeps
// stage positions a dense 1..N permutation.
package stage

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// MaxNameLength bounds a stage name in characters.
const MaxNameLength = 100

// Stage is a named workflow column. Position is its 1-based rank in the
// global ordering and is only ever written by the sequencer.
type Stage struct {
	ID        int64
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks business rules for the Stage entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (s *Stage) Validate() error {
	fields := make(map[string]string)

	if msg := nameProblem(s.Name); msg != "" {
		fields["name"] = msg
	}
	if s.Position < 1 {
		fields["position"] = fmt.Sprintf("must be at least 1, got %d", s.Position)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// NormalizeName trims name and checks it against the naming rules.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if msg := nameProblem(trimmed); msg != "" {
		return "", domain.NewValidationError("name", msg)
	}
	return trimmed, nil
}

func nameProblem(name string) string {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return domain.MsgRequired
	case utf8.RuneCountInString(trimmed) > MaxNameLength:
		return fmt.Sprintf("must be at most %d characters", MaxNameLength)
	default:
		return ""
	}
}
