package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateProject converts the HCL project schema into the agnostic model.
func translateProject(ctx context.Context, p *projectBlock, evalCtx *hcl.EvalContext) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx).With("project", p.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	project := &config.Project{
		Name:      p.Name,
		ID:        p.ID,
		BuildFile: p.BuildFile,
		DependsOn: p.DependsOn,
	}

	for _, m := range p.Configurations {
		build, err := buildEnabled(ctx, m.Build, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("project %q, configuration %q: %w", p.Name, m.Solution, err)
		}
		target := m.Target
		if target == "" {
			target = m.Solution
		}
		project.Configurations = append(project.Configurations, &config.Mapping{
			Solution: m.Solution,
			Target:   target,
			Build:    build,
		})
	}

	logger.Debug("Translated HCL project.", "dependencies", len(project.DependsOn), "mappings", len(project.Configurations))
	return project, nil
}

// buildEnabled evaluates the optional `build` attribute, which defaults to true.
func buildEnabled(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext) (bool, error) {
	if !isExprDefined(ctx, expr, "build") {
		return true, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return false, diags
	}
	if val.IsNull() {
		return true, nil
	}
	var build bool
	if err := gocty.FromCtyValue(val, &build); err != nil {
		return false, fmt.Errorf("build must be a bool, got %s", val.Type().FriendlyName())
	}
	return build, nil
}
