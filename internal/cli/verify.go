package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
)

// errInconsistent is returned by verify after it has printed its findings.
var errInconsistent = errors.New("board is inconsistent")

// Report is the outcome of Verify.
type Report struct {
	Stages   int      `json:"stages"`
	Projects int      `json:"projects"`
	Problems []string `json:"problems"`
}

// Verify reads the stores directly and reports positions that are not a
// dense 1..N sequence and projects pointing at stages that do not exist.
func Verify(ctx context.Context, env *Env) (*Report, error) {
	stages, err := env.Stages.ListStages(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := env.Projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	rep := &Report{Stages: len(stages), Projects: len(projects), Problems: []string{}}
	if err := stage.CheckDense(stages); err != nil {
		rep.Problems = append(rep.Problems, err.Error())
	}

	ids := make(map[int64]bool, len(stages))
	for _, s := range stages {
		ids[s.ID] = true
	}
	for _, p := range projects {
		if p.StageID != nil && !ids[*p.StageID] {
			rep.Problems = append(rep.Problems,
				fmt.Sprintf("project %d references missing stage %d", p.ID, *p.StageID))
		}
	}
	return rep, nil
}

func newVerifyCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check stage positions and project stage references",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, env *Env, p *printer, _ []string) error {
			rep, err := Verify(ctx, env)
			if err != nil {
				return err
			}

			if p.format == OutputJSON {
				if err := p.json(rep); err != nil {
					return err
				}
			} else {
				for _, problem := range rep.Problems {
					fmt.Fprintf(p.w, "FAIL %s\n", problem)
				}
				if len(rep.Problems) == 0 {
					fmt.Fprintf(p.w, "ok: %d stage(s), %d project(s)\n", rep.Stages, rep.Projects)
				}
			}

			if len(rep.Problems) > 0 {
				return errInconsistent
			}
			return nil
		}),
	}
}
