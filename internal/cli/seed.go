package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
)

// defaultStages is the milestone list a fresh board starts with.
var defaultStages = []string{
	"development",
	"preproduction",
	"production",
	"postproduction",
	"invoiced",
	"completed",
}

// SeedFile is the YAML document accepted by "stagectl seed".
//
//	stages:
//	  - development
//	  - production
//	projects:
//	  - name: Launch video
//	    stage: development
type SeedFile struct {
	Stages   []string      `yaml:"stages"`
	Projects []SeedProject `yaml:"projects"`
}

// SeedProject names a project and, optionally, the stage it starts in.
type SeedProject struct {
	Name  string `yaml:"name"`
	Stage string `yaml:"stage"`
}

// SeedResult counts what a seed run added.
type SeedResult struct {
	StagesCreated   int `json:"stages_created"`
	ProjectsCreated int `json:"projects_created"`
}

func loadSeedFile(path string) (*SeedFile, error) {
	if path == "" {
		return &SeedFile{Stages: slices.Clone(defaultStages)}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var f SeedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	return &f, nil
}

// Seed appends missing stages in file order and creates missing projects.
// Stages and projects are matched by name, so running it twice is a no-op.
func Seed(ctx context.Context, env *Env, f *SeedFile) (SeedResult, error) {
	var res SeedResult

	stages, err := env.Service.ListStages(ctx)
	if err != nil {
		return res, err
	}
	n := len(stages)
	byName := make(map[string]int64, n)
	for _, s := range stages {
		byName[s.Name] = s.ID
	}

	for _, name := range f.Stages {
		if _, ok := byName[name]; ok {
			continue
		}
		n++
		created, err := env.Service.CreateStage(ctx, name, n)
		if err != nil {
			return res, fmt.Errorf("seeding stage %q: %w", name, err)
		}
		byName[name] = created.ID
		res.StagesCreated++
	}

	if len(f.Projects) == 0 {
		return res, nil
	}

	existing, err := env.Projects.ListProjects(ctx)
	if err != nil {
		return res, err
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Name] = true
	}

	for _, sp := range f.Projects {
		if known[sp.Name] {
			continue
		}
		rec := &project.Project{Name: sp.Name}
		if sp.Stage != "" {
			id, ok := byName[sp.Stage]
			if !ok {
				return res, fmt.Errorf("project %q: unknown stage %q", sp.Name, sp.Stage)
			}
			rec.StageID = &id
		}
		if _, err := env.Projects.CreateProject(ctx, rec); err != nil {
			return res, fmt.Errorf("seeding project %q: %w", sp.Name, err)
		}
		known[sp.Name] = true
		res.ProjectsCreated++
	}
	return res, nil
}

func newSeedCommand(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [FILE]",
		Short: "Create the default stages, or those listed in a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: run(func(ctx context.Context, env *Env, p *printer, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			f, err := loadSeedFile(path)
			if err != nil {
				return err
			}
			res, err := Seed(ctx, env, f)
			if err != nil {
				return err
			}
			return p.Message(res, "created %d stage(s) and %d project(s)", res.StagesCreated, res.ProjectsCreated)
		}),
	}
}
