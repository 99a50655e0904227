package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsamuelsen11/stageboard/internal/domain/project"
	"github.com/jsamuelsen11/stageboard/internal/domain/stage"
	"github.com/jsamuelsen11/stageboard/internal/ports"
)

// stageView and projectView leave out timestamps so output is reproducible.
type stageView struct {
	ID       int64  `json:"id"`
	Position int    `json:"position"`
	Name     string `json:"name"`
}

type projectView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StageID *int64 `json:"stage_id"`
}

type stageList struct {
	Stages []stageView `json:"stages"`
	Count  int         `json:"count"`
}

type projectList struct {
	Projects []projectView `json:"projects"`
	Count    int           `json:"count"`
}

type boardColumn struct {
	Stage    stageView     `json:"stage"`
	Projects []projectView `json:"projects"`
	Count    int           `json:"count"`
}

type boardView struct {
	Columns []boardColumn `json:"columns"`
}

func toStageView(s stage.Stage) stageView {
	return stageView{ID: s.ID, Position: s.Position, Name: s.Name}
}

func toProjectView(p project.Project) projectView {
	return projectView{ID: p.ID, Name: p.Name, StageID: p.StageID}
}

func toStageList(stages []stage.Stage) stageList {
	out := stageList{Stages: make([]stageView, 0, len(stages)), Count: len(stages)}
	for _, s := range stages {
		out.Stages = append(out.Stages, toStageView(s))
	}
	return out
}

func toProjectList(projects []project.Project) projectList {
	out := projectList{Projects: make([]projectView, 0, len(projects)), Count: len(projects)}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProjectView(p))
	}
	return out
}

// printer renders command results as aligned text or indented JSON.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	return &printer{w: w, format: format}
}

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) table(header string, rows func(tw io.Writer)) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

func (p *printer) Stages(stages []stage.Stage) error {
	if p.format == OutputJSON {
		return p.json(toStageList(stages))
	}
	return p.table("ID\tPOSITION\tNAME", func(tw io.Writer) {
		for _, s := range stages {
			fmt.Fprintf(tw, "%d\t%d\t%s\n", s.ID, s.Position, s.Name)
		}
	})
}

func (p *printer) Stage(s *stage.Stage) error {
	return p.Stages([]stage.Stage{*s})
}

func (p *printer) Projects(projects []project.Project) error {
	if p.format == OutputJSON {
		return p.json(toProjectList(projects))
	}
	return p.table("ID\tSTAGE\tNAME", func(tw io.Writer) {
		for _, pr := range projects {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", pr.ID, stageRef(pr.StageID), pr.Name)
		}
	})
}

func (p *printer) Board(columns []ports.BoardColumn) error {
	if p.format == OutputJSON {
		view := boardView{Columns: make([]boardColumn, 0, len(columns))}
		for _, c := range columns {
			projects := toProjectList(c.Projects)
			view.Columns = append(view.Columns, boardColumn{
				Stage:    toStageView(c.Stage),
				Projects: projects.Projects,
				Count:    projects.Count,
			})
		}
		return p.json(view)
	}

	for _, c := range columns {
		fmt.Fprintf(p.w, "%d. %s (%d)\n", c.Stage.Position, c.Stage.Name, len(c.Projects))
		for _, pr := range c.Projects {
			fmt.Fprintf(p.w, "   #%d %s\n", pr.ID, pr.Name)
		}
	}
	return nil
}

// Message prints a one-line confirmation in table mode, or v as JSON.
func (p *printer) Message(v any, format string, args ...any) error {
	if p.format == OutputJSON {
		return p.json(v)
	}
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func stageRef(id *int64) string {
	if id == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *id)
}
