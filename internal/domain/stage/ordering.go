package stage

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// PositionChange records a single row whose position must be rewritten.
type PositionChange struct {
	ID   int64
	From int
	To   int
}

// Sorted returns a copy of stages ordered by ascending position.
func Sorted(stages []Stage) []Stage {
	out := slices.Clone(stages)
	slices.SortStableFunc(out, func(a, b Stage) int { return a.Position - b.Position })
	return out
}

// CheckDense reports whether the positions of stages are exactly 1..N with
// no gaps and no duplicates. stages may be in any order.
func CheckDense(stages []Stage) error {
	seen := make([]int64, len(stages)+1)
	for _, s := range stages {
		if s.Position < 1 || s.Position > len(stages) {
			return fmt.Errorf("stage %d has position %d outside 1..%d", s.ID, s.Position, len(stages))
		}
		if prev := seen[s.Position]; prev != 0 {
			return fmt.Errorf("stages %d and %d share position %d", prev, s.ID, s.Position)
		}
		seen[s.Position] = s.ID
	}
	return nil
}

// ValidateInsertPosition checks that pos is a legal insertion point for a
// list of n stages: 1 <= pos <= n+1.
func ValidateInsertPosition(pos, n int) error {
	if pos < 1 || pos > n+1 {
		return domain.NewValidationError("position", fmt.Sprintf("must be between 1 and %d, got %d", n+1, pos))
	}
	return nil
}

// ValidateMovePosition checks that pos is a legal destination for a move in
// a list of n stages: 1 <= pos <= n.
func ValidateMovePosition(pos, n int) error {
	if n == 0 || pos < 1 || pos > n {
		return domain.NewValidationError("position", fmt.Sprintf("must be between 1 and %d, got %d", n, pos))
	}
	return nil
}

// Insert returns the shifts needed to open slot pos in ordered: every stage
// at or after pos moves down by one. ordered must be sorted and dense.
func Insert(ordered []Stage, pos int) ([]PositionChange, error) {
	if err := ValidateInsertPosition(pos, len(ordered)); err != nil {
		return nil, err
	}
	var changes []PositionChange
	for _, s := range ordered {
		if s.Position >= pos {
			changes = append(changes, PositionChange{ID: s.ID, From: s.Position, To: s.Position + 1})
		}
	}
	return changes, nil
}

// Remove finds id in ordered and returns the removed stage together with the
// shifts that close the gap it leaves behind.
func Remove(ordered []Stage, id int64) (Stage, []PositionChange, error) {
	idx := slices.IndexFunc(ordered, func(s Stage) bool { return s.ID == id })
	if idx < 0 {
		return Stage{}, nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	removed := ordered[idx]

	var changes []PositionChange
	for _, s := range ordered {
		if s.Position > removed.Position {
			changes = append(changes, PositionChange{ID: s.ID, From: s.Position, To: s.Position - 1})
		}
	}
	return removed, changes, nil
}

// Reorder moves stage id to newPos. The stage is taken out of the list,
// reinserted at index newPos-1 and the whole list is renumbered by index.
// It returns the resulting order and only the rows whose position changed;
// moving a stage onto its own position yields no changes.
func Reorder(ordered []Stage, id int64, newPos int) ([]Stage, []PositionChange, error) {
	idx := slices.IndexFunc(ordered, func(s Stage) bool { return s.ID == id })
	if idx < 0 {
		return nil, nil, fmt.Errorf("stage %d: %w", id, domain.ErrNotFound)
	}
	if err := ValidateMovePosition(newPos, len(ordered)); err != nil {
		return nil, nil, err
	}

	target := ordered[idx]
	rest := slices.Delete(slices.Clone(ordered), idx, idx+1)
	next := slices.Insert(rest, newPos-1, target)

	var changes []PositionChange
	for i := range next {
		want := i + 1
		if next[i].Position != want {
			changes = append(changes, PositionChange{ID: next[i].ID, From: next[i].Position, To: want})
			next[i].Position = want
		}
	}
	return next, changes, nil
}

// Apply returns a copy of stages with changes applied, sorted by position.
func Apply(stages []Stage, changes []PositionChange) []Stage {
	out := slices.Clone(stages)
	byID := make(map[int64]int, len(changes))
	for _, c := range changes {
		byID[c.ID] = c.To
	}
	for i := range out {
		if to, ok := byID[out[i].ID]; ok {
			out[i].Position = to
		}
	}
	return Sorted(out)
}
