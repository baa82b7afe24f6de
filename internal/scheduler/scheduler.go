package scheduler

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/buildlevels/internal/cfgmatrix"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/leveler"
	"github.com/specialistvlad/buildlevels/internal/planner"
)

// Solution is a built solution, ready to be scheduled any number of times.
type Solution struct {
	name   string
	graph  *depgraph.Graph
	matrix *cfgmatrix.Matrix
}

// Result is the outcome of scheduling one solution configuration.
type Result struct {
	Levels   *leveler.Levels
	Plan     *planner.BuildPlan
	Warnings []planner.Warning
}

// Name returns the solution name from its description.
func (s *Solution) Name() string { return s.name }

// Graph returns the dependency graph.
func (s *Solution) Graph() *depgraph.Graph { return s.graph }

// Matrix returns the configuration matrix.
func (s *Solution) Matrix() *cfgmatrix.Matrix { return s.matrix }

// Schedule levels the graph and plans key.
func (s *Solution) Schedule(ctx context.Context, key cfgmatrix.Key) (*Result, error) {
	p, levels, err := s.planner(ctx)
	if err != nil {
		return nil, err
	}
	return s.plan(ctx, p, levels, key), nil
}

// ScheduleAll plans every declared solution configuration in declaration
// order, leveling the graph once.
func (s *Solution) ScheduleAll(ctx context.Context) ([]*Result, error) {
	keys := s.matrix.SolutionKeys()
	if len(keys) == 0 {
		return nil, fmt.Errorf("solution %q declares no configurations", s.name)
	}

	p, levels, err := s.planner(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(keys))
	for _, key := range keys {
		results = append(results, s.plan(ctx, p, levels, key))
	}
	return results, nil
}

// Actions returns the solution-wide action chain of one kind, in level order.
func (s *Solution) Actions(ctx context.Context, kind planner.ActionKind) ([]planner.Action, error) {
	p, _, err := s.planner(ctx)
	if err != nil {
		return nil, err
	}
	actions := p.PlanSolutionActions(kind)
	ctxlog.FromContext(ctx).Debug("Actions planned.", "kind", kind, "count", len(actions))
	return actions, nil
}

func (s *Solution) planner(ctx context.Context) (*planner.Planner, *leveler.Levels, error) {
	logger := ctxlog.FromContext(ctx)

	levels, err := leveler.Compute(s.graph)
	if err != nil {
		logger.Error("Leveling failed.", "solution", s.name, "error", err)
		return nil, nil, fmt.Errorf("scheduling solution %q: %w", s.name, err)
	}
	logger.Debug("Leveling complete.", "levels", levels.Count(), "projects", s.graph.Len())

	return planner.New(s.graph, levels, s.matrix), levels, nil
}

func (s *Solution) plan(ctx context.Context, p *planner.Planner, levels *leveler.Levels, key cfgmatrix.Key) *Result {
	logger := ctxlog.FromContext(ctx).With("configuration", key.Normalized().String())

	if declared := s.matrix.SolutionKeys(); len(declared) > 0 && !slices.Contains(declared, key.Normalized()) {
		logger.Warn("Configuration is not declared by the solution; every project will be missing it.")
	}

	plan, warnings := p.Plan(key)
	for _, w := range warnings {
		logger.Warn("Project has no mapping for configuration.", "project", w.Name, "id", w.Project.String())
	}
	for _, level := range plan.Levels {
		for _, e := range level.Entries {
			if e.Verdict == planner.Skip {
				logger.Debug("Project skipped: build disabled for configuration.", "project", e.Name, "level", level.Index)
			}
		}
	}
	logger.Info("Build plan ready.",
		"levels", len(plan.Levels),
		"build", plan.Count(planner.Build),
		"skip", plan.Count(planner.Skip),
		"missing", plan.Count(planner.MissingConfig),
	)

	return &Result{Levels: levels, Plan: plan, Warnings: warnings}
}
