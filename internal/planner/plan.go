package planner

import (
	"encoding/json"
	"fmt"

	"github.com/specialistvlad/buildlevels/internal/cfgmatrix"
	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/leveler"
	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// Verdict is the resolved action for one project under one solution key.
type Verdict int

const (
	Build Verdict = iota
	Skip
	MissingConfig
)

func (v Verdict) String() string {
	switch v {
	case Build:
		return "build"
	case Skip:
		return "skip"
	case MissingConfig:
		return "missing-configuration"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// MarshalText renders verdicts by name in JSON output.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Entry is one project's slot in a level.
type Entry struct {
	Project projectid.ID `json:"project"`
	Name    string       `json:"name"`
	Verdict Verdict      `json:"action"`
	// Target is the project-level key to build; only meaningful for Build.
	Target cfgmatrix.Key `json:"-"`
}

// MarshalJSON omits the target for entries that are not built.
func (e Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	out := struct {
		plain
		Target *cfgmatrix.Key `json:"target,omitempty"`
	}{plain: plain(e)}
	if e.Verdict == Build {
		out.Target = &e.Target
	}
	return json.Marshal(out)
}

// BuildLevel is the set of projects on one level. All Build entries in it
// are mutually independent.
type BuildLevel struct {
	Index   int     `json:"level"`
	Entries []Entry `json:"projects"`
}

// BuildPlan is the ordered sequence of levels for one solution key.
type BuildPlan struct {
	Key    cfgmatrix.Key `json:"configuration"`
	Levels []BuildLevel  `json:"levels"`
}

// Buildable returns the Build entries of level i (1-indexed): the batch an
// executor may run concurrently before moving to level i+1.
func (p *BuildPlan) Buildable(i int) []Entry {
	if i < 1 || i > len(p.Levels) {
		return nil
	}
	var out []Entry
	for _, e := range p.Levels[i-1].Entries {
		if e.Verdict == Build {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many entries across all levels carry verdict v.
func (p *BuildPlan) Count(v Verdict) int {
	n := 0
	for _, l := range p.Levels {
		for _, e := range l.Entries {
			if e.Verdict == v {
				n++
			}
		}
	}
	return n
}

// Warning reports a project with no mapping for the requested solution key.
type Warning struct {
	Project     projectid.ID  `json:"project"`
	Name        string        `json:"name"`
	SolutionKey cfgmatrix.Key `json:"configuration"`
}

func (w Warning) String() string {
	return fmt.Sprintf("project %q has no mapping for solution configuration %s", w.Name, w.SolutionKey)
}

// Planner produces plans from a leveled graph. It only reads its inputs.
type Planner struct {
	graph  *depgraph.Graph
	levels *leveler.Levels
	matrix *cfgmatrix.Matrix
}

// New returns a planner over an already leveled graph.
func New(g *depgraph.Graph, levels *leveler.Levels, m *cfgmatrix.Matrix) *Planner {
	return &Planner{graph: g, levels: levels, matrix: m}
}

// Plan resolves every project for solutionKey. Warnings list the projects
// annotated MissingConfig, in plan order.
func (p *Planner) Plan(solutionKey cfgmatrix.Key) (*BuildPlan, []Warning) {
	solutionKey = solutionKey.Normalized()
	plan := &BuildPlan{Key: solutionKey, Levels: make([]BuildLevel, 0, p.levels.Count())}
	var warnings []Warning

	for i := 1; i <= p.levels.Count(); i++ {
		level := BuildLevel{Index: i}
		for _, id := range p.levels.At(i) {
			project, _ := p.graph.Project(id)
			entry := Entry{Project: id, Name: project.DisplayName}

			mapping, ok := p.matrix.Lookup(id, solutionKey)
			switch {
			case !ok:
				entry.Verdict = MissingConfig
				warnings = append(warnings, Warning{Project: id, Name: project.DisplayName, SolutionKey: solutionKey})
			case !mapping.BuildEnabled:
				entry.Verdict = Skip
			default:
				entry.Verdict = Build
				entry.Target = mapping.Target
			}
			level.Entries = append(level.Entries, entry)
		}
		plan.Levels = append(plan.Levels, level)
	}

	return plan, warnings
}
