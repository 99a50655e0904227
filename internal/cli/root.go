// Package cli implements stagectl, the operator command line for the stage
// board. It talks to the configured store directly, through the same
// sequencer and assignment gateway the HTTP service uses.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/stageboard/internal/platform/config"
	"github.com/jsamuelsen11/stageboard/internal/platform/logging"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

var validOutputs = []string{OutputTable, OutputJSON}

// Options holds the global flags shared by every command.
type Options struct {
	Profile    string
	ConfigDir  string
	Driver     string
	SQLitePath string
	Output     string
	LogLevel   string
}

// Opener builds the Env a command runs against.
type Opener func(ctx context.Context, opts *Options, logger *slog.Logger) (*Env, error)

// Execute runs stagectl with args. Results go to stdout, logs to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	boot, err := config.LoadBootstrap()
	if err != nil {
		return err
	}

	cmd := NewRootCommand(OpenEnv, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.PersistentFlags().Set("profile", boot.Profile); err != nil {
		return err
	}
	if err := cmd.PersistentFlags().Set("config-dir", boot.ConfigDir); err != nil {
		return err
	}
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the stagectl command tree. open is called once per
// command invocation.
func NewRootCommand(open Opener, stdout, stderr io.Writer) *cobra.Command {
	opts := &Options{}
	var logger *slog.Logger

	cmd := &cobra.Command{
		Use:           "stagectl",
		Short:         "Inspect and reorder the stage board",
		Long:          "stagectl manages the ordered list of project stages: create, rename, move and delete stages, assign projects and check that positions stay dense.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(validOutputs, opts.Output) {
				return fmt.Errorf("invalid output %q: must be one of %v", opts.Output, validOutputs)
			}
			logger = logging.New(opts.LogLevel, "pretty", stderr)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.Profile, "profile", "local", "configuration profile to load")
	flags.StringVar(&opts.ConfigDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	flags.StringVar(&opts.Driver, "driver", "", "override storage.driver (sqlite, postgres, memory)")
	flags.StringVar(&opts.SQLitePath, "db", "", "override storage.sqlite.path")
	flags.StringVarP(&opts.Output, "output", "o", OutputTable, "output format (table|json)")
	flags.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	run := func(fn func(ctx context.Context, env *Env, p *printer, args []string) error) func(*cobra.Command, []string) error {
		return func(c *cobra.Command, args []string) error {
			env, err := open(c.Context(), opts, logger)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := env.Close(); cerr != nil {
					logger.Warn("closing store", slog.Any("error", cerr))
				}
			}()
			return fn(c.Context(), env, newPrinter(c.OutOrStdout(), opts.Output), args)
		}
	}

	cmd.AddCommand(
		newStagesCommand(run),
		newProjectsCommand(run),
		newBoardCommand(run),
		newSeedCommand(run),
		newVerifyCommand(run),
	)
	return cmd
}

// runner adapts a command body to cobra, opening and closing the Env.
type runner func(fn func(ctx context.Context, env *Env, p *printer, args []string) error) func(*cobra.Command, []string) error
