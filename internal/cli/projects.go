package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
)

func newProjectsCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "Create projects and manage their stage",
	}

	var stageFilter string
	list := &cobra.Command{
		Use:   "list",
		Short: "Print projects, optionally only those in one stage",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, env *Env, p *printer, _ []string) error {
			var (
				projects []project.Project
				err      error
			)
			if stageFilter != "" {
				id, perr := parseID("stage", stageFilter)
				if perr != nil {
					return perr
				}
				projects, err = env.Service.ListProjectsInStage(ctx, id)
			} else {
				projects, err = env.Projects.ListProjects(ctx)
			}
			if err != nil {
				return err
			}
			return p.Projects(projects)
		}),
	}
	list.Flags().StringVar(&stageFilter, "stage", "", "only projects in this stage")
	cmd.AddCommand(list)

	var createStage string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Add a project record",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			rec := &project.Project{Name: args[0]}
			if createStage != "" {
				id, err := parseID("stage", createStage)
				if err != nil {
					return err
				}
				rec.StageID = &id
			}
			created, err := env.Projects.CreateProject(ctx, rec)
			if err != nil {
				return err
			}
			return p.Projects([]project.Project{*created})
		}),
	}
	create.Flags().StringVar(&createStage, "stage", "", "stage to place the project in")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "assign PROJECT STAGE",
		Short: "Point a project at a stage",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			projectID, err := parseID("project", args[0])
			if err != nil {
				return err
			}
			stageID, err := parseID("stage", args[1])
			if err != nil {
				return err
			}
			if err := env.Service.AssignProject(ctx, projectID, stageID); err != nil {
				return err
			}
			return p.Message(map[string]int64{"project_id": projectID, "stage_id": stageID},
				"project %d assigned to stage %d", projectID, stageID)
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unassign PROJECT",
		Short: "Take a project off the board",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			projectID, err := parseID("project", args[0])
			if err != nil {
				return err
			}
			if err := env.Service.UnassignProject(ctx, projectID); err != nil {
				return err
			}
			return p.Message(map[string]int64{"project_id": projectID}, "project %d unassigned", projectID)
		}),
	})

	return cmd
}

func newBoardCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Print every stage with its projects",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, env *Env, p *printer, _ []string) error {
			columns, err := env.Service.Board(ctx)
			if err != nil {
				return err
			}
			return p.Board(columns)
		}),
	}
}
