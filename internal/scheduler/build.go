package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/buildlevels/internal/cfgmatrix"
	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// Build assembles the graph and matrix for sol. Structural problems
// (duplicate ids, unresolvable references, malformed configuration keys)
// are returned here; cycles are only detected by Schedule.
func Build(ctx context.Context, sol *config.Solution) (*Solution, error) {
	logger := ctxlog.FromContext(ctx)
	if sol == nil {
		return nil, errors.New("nil solution")
	}
	logger.Debug("Building solution.", "solution", sol.Name, "projects", len(sol.Projects))

	g := depgraph.New()
	ids := make([]projectid.ID, len(sol.Projects))
	for i, p := range sol.Projects {
		id, err := projectID(p)
		if err != nil {
			return nil, err
		}
		err = g.AddProject(depgraph.Project{ID: id, DisplayName: p.Name, BuildFile: p.BuildFile})
		if err != nil {
			return nil, fmt.Errorf("adding project %q: %w", p.Name, err)
		}
		ids[i] = id
	}

	refs := newResolver(g)
	edges := 0
	for i, p := range sol.Projects {
		for _, ref := range p.DependsOn {
			dep, err := refs.resolve(p.Name, ref)
			if err != nil {
				return nil, err
			}
			if err := g.AddDependency(ids[i], dep); err != nil {
				return nil, fmt.Errorf("adding dependency of %q: %w", p.Name, err)
			}
			edges++
		}
	}
	logger.Debug("Dependency graph built.", "projects", g.Len(), "edges", edges)

	m, err := buildMatrix(sol, ids)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration matrix filled.", "mappings", m.Len(), "solution_configurations", len(m.SolutionKeys()))

	return &Solution{name: sol.Name, graph: g, matrix: m}, nil
}

// projectID prefers the declared id, parsed as a GUID when it is one, and
// falls back to an id derived from the project name. Derived ids never clash
// with declared ones.
func projectID(p *config.Project) (projectid.ID, error) {
	switch {
	case p.ID != "" && projectid.IsGUID(p.ID):
		id, err := projectid.FromGUID(p.ID)
		if err != nil {
			return projectid.ID{}, fmt.Errorf("project %q: %w", p.Name, err)
		}
		return id, nil
	case p.ID != "":
		return projectid.New(p.ID)
	default:
		id, err := projectid.FromName(p.Name)
		if err != nil {
			return projectid.ID{}, fmt.Errorf("project with no id or name: %w", err)
		}
		return id, nil
	}
}

// buildMatrix declares every mapping disabled first and enables the ones
// marked buildable in a second pass over the same cells.
func buildMatrix(sol *config.Solution, ids []projectid.ID) (*cfgmatrix.Matrix, error) {
	m := cfgmatrix.New()
	for _, raw := range sol.Configurations {
		k, err := cfgmatrix.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("solution configuration: %w", err)
		}
		m.DeclareSolutionKey(k)
	}
	declared := len(sol.Configurations) > 0

	type enabled struct {
		project       projectid.ID
		solution, tgt cfgmatrix.Key
	}
	var toEnable []enabled

	for i, p := range sol.Projects {
		for _, mapping := range p.Configurations {
			solKey, err := cfgmatrix.ParseKey(mapping.Solution)
			if err != nil {
				return nil, fmt.Errorf("project %q: %w", p.Name, err)
			}
			target, err := cfgmatrix.ParseKey(mapping.Target)
			if err != nil {
				return nil, fmt.Errorf("project %q, configuration %s: target: %w", p.Name, solKey, err)
			}
			m.SetMapping(ids[i], solKey, target, false)
			if mapping.Build {
				toEnable = append(toEnable, enabled{project: ids[i], solution: solKey, tgt: target})
			}
			if !declared {
				m.DeclareSolutionKey(solKey)
			}
		}
	}

	for _, e := range toEnable {
		m.SetMapping(e.project, e.solution, e.tgt, true)
	}
	return m, nil
}
