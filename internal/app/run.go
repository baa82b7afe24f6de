package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/buildlevels/internal/cfgmatrix"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/specialistvlad/buildlevels/internal/hcl"
	"github.com/specialistvlad/buildlevels/internal/planner"
	"github.com/specialistvlad/buildlevels/internal/render"
	"github.com/specialistvlad/buildlevels/internal/scheduler"
)

// ErrMissingConfigurations is returned by Run in strict mode when any project
// lacks a mapping for a scheduled configuration. The plan is still printed.
var ErrMissingConfigurations = errors.New("projects are missing configurations")

// Run loads the solution, schedules it and renders the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sol, err := a.loader.Load(ctx, a.config.SolutionPaths...)
	if err != nil {
		return fmt.Errorf("failed to load solution: %w", err)
	}
	a.logger.Info("Solution loaded.", "solution", sol.Name, "projects", sol.ProjectCount())

	if a.config.EmitHCL {
		return hcl.Write(a.outW, sol)
	}

	built, err := scheduler.Build(ctx, sol)
	if err != nil {
		return fmt.Errorf("failed to build solution graph: %w", err)
	}

	if a.config.Actions != "" {
		return a.runActions(ctx, built)
	}

	var results []*scheduler.Result
	if a.config.All {
		results, err = built.ScheduleAll(ctx)
	} else {
		var res *scheduler.Result
		res, err = built.Schedule(ctx, cfgmatrix.NewKey(a.config.Configuration, a.config.Platform))
		results = []*scheduler.Result{res}
	}
	if err != nil {
		return err
	}

	reports := make([]render.Report, 0, len(results))
	missing := 0
	for _, res := range results {
		reports = append(reports, render.Report{Solution: built.Name(), Plan: res.Plan, Warnings: res.Warnings})
		missing += len(res.Warnings)
	}
	if err := a.render(reports); err != nil {
		return err
	}

	if a.config.Strict && missing > 0 {
		return fmt.Errorf("%w: %d missing mapping(s)", ErrMissingConfigurations, missing)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runActions(ctx context.Context, built *scheduler.Solution) error {
	kind, err := planner.ParseActionKind(a.config.Actions)
	if err != nil {
		return err
	}
	actions, err := built.Actions(ctx, kind)
	if err != nil {
		return err
	}
	if a.config.Output == OutputJSON {
		return a.renderer.ActionsJSON(actions)
	}
	a.renderer.ActionsTable(actions)
	return nil
}

func (a *App) render(reports []render.Report) error {
	if a.config.Output == OutputJSON {
		return a.renderer.PlanJSON(reports...)
	}
	a.renderer.PlanTable(reports...)
	return nil
}
