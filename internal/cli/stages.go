package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: must be a positive integer", kind, raw)
	}
	return id, nil
}

func newStagesCommand(run runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stages",
		Aliases: []string{"stage"},
		Short:   "List and edit the ordered stage list",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print stages by position",
		Args:  cobra.NoArgs,
		RunE: run(func(ctx context.Context, env *Env, p *printer, _ []string) error {
			stages, err := env.Service.ListStages(ctx)
			if err != nil {
				return err
			}
			return p.Stages(stages)
		}),
	})

	var position int
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Insert a stage; later stages shift down",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			pos := position
			if pos == 0 {
				stages, err := env.Service.ListStages(ctx)
				if err != nil {
					return err
				}
				pos = len(stages) + 1
			}
			created, err := env.Service.CreateStage(ctx, args[0], pos)
			if err != nil {
				return err
			}
			return p.Stage(created)
		}),
	}
	create.Flags().IntVar(&position, "position", 0, "1-based position to insert at (default: append)")
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a stage in place",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			id, err := parseID("stage", args[0])
			if err != nil {
				return err
			}
			renamed, err := env.Service.RenameStage(ctx, id, args[1])
			if err != nil {
				return err
			}
			return p.Stage(renamed)
		}),
	})

	var index int
	move := &cobra.Command{
		Use:   "move ID --index K",
		Short: "Move a stage to a 0-based index and print the new order",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			id, err := parseID("stage", args[0])
			if err != nil {
				return err
			}
			stages, err := env.Service.MoveStage(ctx, id, index)
			if err != nil {
				return err
			}
			return p.Stages(stages)
		}),
	}
	move.Flags().IntVar(&index, "index", 0, "0-based target index")
	_ = move.MarkFlagRequired("index")
	cmd.AddCommand(move)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete ID",
		Short: "Delete an empty stage and close the gap",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			id, err := parseID("stage", args[0])
			if err != nil {
				return err
			}
			if err := env.Service.DeleteStage(ctx, id); err != nil {
				return err
			}
			return p.Message(map[string]int64{"deleted": id}, "deleted stage %d", id)
		}),
	})

	var target string
	drain := &cobra.Command{
		Use:   "drain ID --to TARGET",
		Short: "Move every project in a stage to another stage",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			from, err := parseID("stage", args[0])
			if err != nil {
				return err
			}
			to, err := parseID("stage", target)
			if err != nil {
				return err
			}
			res, err := env.Service.DrainStage(ctx, from, to)
			if err != nil {
				return err
			}
			view := struct {
				From  int64   `json:"from_stage_id"`
				To    int64   `json:"to_stage_id"`
				Moved []int64 `json:"moved"`
			}{res.FromStageID, res.ToStageID, res.Moved}
			return p.Message(view, "moved %d project(s) from stage %d to stage %d", len(res.Moved), from, to)
		}),
	}
	drain.Flags().StringVar(&target, "to", "", "stage receiving the projects")
	_ = drain.MarkFlagRequired("to")
	cmd.AddCommand(drain)

	return cmd
}
