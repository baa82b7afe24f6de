// Package render writes build plans and action chains for people (tables)
// and for executors (JSON).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/specialistvlad/buildlevels/internal/planner"
)

// Report is one scheduled solution configuration.
type Report struct {
	Solution string             `json:"solution,omitempty"`
	Plan     *planner.BuildPlan `json:"plan"`
	Warnings []planner.Warning  `json:"warnings"`
}

// Renderer writes reports to a single writer.
type Renderer struct {
	w     io.Writer
	color bool
}

// New returns a renderer writing to w. Color adds ANSI colors to tables.
func New(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

func (r *Renderer) paint(c text.Color, v any) string {
	if !r.color {
		return fmt.Sprint(v)
	}
	return c.Sprint(v)
}

func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleRounded)
	return t
}

// PlanTable renders each report as a table of levels, followed by its
// missing-configuration warnings.
func (r *Renderer) PlanTable(reports ...Report) {
	for i, rep := range reports {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.planTable(rep)
	}
}

func (r *Renderer) planTable(rep Report) {
	t := r.newTable()
	title := rep.Plan.Key.String()
	if rep.Solution != "" {
		title = rep.Solution + " " + title
	}
	t.SetTitle("%s", title)
	t.AppendHeader(table.Row{
		r.paint(text.FgHiCyan, "Level"),
		r.paint(text.FgHiCyan, "Project"),
		r.paint(text.FgHiCyan, "Action"),
		r.paint(text.FgHiCyan, "Target"),
	})

	for i, level := range rep.Plan.Levels {
		if i > 0 {
			t.AppendSeparator()
		}
		for _, e := range level.Entries {
			target := ""
			if e.Verdict == planner.Build {
				target = e.Target.String()
			}
			t.AppendRow(table.Row{level.Index, e.Name, r.verdict(e.Verdict), target})
		}
	}

	t.AppendFooter(table.Row{
		"",
		"Total",
		fmt.Sprintf("%d build, %d skip, %d missing",
			rep.Plan.Count(planner.Build), rep.Plan.Count(planner.Skip), rep.Plan.Count(planner.MissingConfig)),
		"",
	})
	t.Render()

	for _, w := range rep.Warnings {
		fmt.Fprintf(r.w, "%s %s\n", r.paint(text.FgYellow, "warning:"), w)
	}
}

func (r *Renderer) verdict(v planner.Verdict) string {
	switch v {
	case planner.Build:
		return r.paint(text.FgGreen, v)
	case planner.Skip:
		return r.paint(text.FgHiBlack, v)
	default:
		return r.paint(text.FgYellow, v)
	}
}

// PlanJSON writes one JSON document: an object for a single report, an
// array for several.
func (r *Renderer) PlanJSON(reports ...Report) error {
	for i := range reports {
		if reports[i].Warnings == nil {
			reports[i].Warnings = []planner.Warning{}
		}
	}
	var doc any = reports
	if len(reports) == 1 {
		doc = reports[0]
	}
	return r.writeJSON(doc)
}

// ActionsTable renders an action chain in run order.
func (r *Renderer) ActionsTable(actions []planner.Action) {
	t := r.newTable()
	t.AppendHeader(table.Row{
		r.paint(text.FgHiCyan, "#"),
		r.paint(text.FgHiCyan, "Action"),
		r.paint(text.FgHiCyan, "Project"),
		r.paint(text.FgHiCyan, "Depends On"),
	})
	for i, a := range actions {
		deps := make([]string, 0, len(a.DependsOn))
		for _, d := range a.DependsOn {
			deps = append(deps, d.String())
		}
		t.AppendRow(table.Row{i + 1, r.paint(text.FgGreen, a.Kind), a.Name, strings.Join(deps, ", ")})
	}
	t.Render()
}

// ActionsJSON writes an action chain as a JSON array.
func (r *Renderer) ActionsJSON(actions []planner.Action) error {
	if actions == nil {
		actions = []planner.Action{}
	}
	return r.writeJSON(actions)
}

func (r *Renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
