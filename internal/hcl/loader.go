package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/specialistvlad/buildlevels/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	overrides map[string]string
}

// Option configures a Loader.
type Option func(*Loader)

// WithVariables sets values for declared variables, taking precedence over
// their defaults. Values are converted to each variable's declared type.
func WithVariables(values map[string]string) Option {
	return func(l *Loader) {
		for k, v := range values {
			l.overrides[k] = v
		}
	}
}

// NewLoader creates a new HCL solution loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{overrides: make(map[string]string)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type parsedFile struct {
	path string
	body hcl.Body
}

// Load parses every .hcl file under paths and merges their blocks into a
// single solution. Variables from all files are evaluated before any other
// block is decoded.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Solution, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	files := make([]parsedFile, 0, len(hclFiles))
	vars := make(map[string]*variable)
	var solutionRange *hcl.Range

	// First pass: parse, collect variables, and check there is one solution.
	for _, path := range hclFiles {
		f, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		files = append(files, parsedFile{path: path, body: f.Body})

		content, _, diags := f.Body.PartialContent(firstPassSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
		for _, block := range content.Blocks {
			switch block.Type {
			case "variable":
				v, diags := decodeVariable(ctx, block)
				if diags.HasErrors() {
					return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
				}
				if prev, ok := vars[v.Name]; ok {
					return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, duplicateBlock("variable", v.Name, prev.DeclRange, block.DefRange))
				}
				vars[v.Name] = v
			case "solution":
				if solutionRange != nil {
					return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, duplicateBlock("solution", block.Labels[0], *solutionRange, block.DefRange))
				}
				r := block.DefRange
				solutionRange = &r
			}
		}
	}
	logger.Debug("Collected HCL variables.", "count", len(vars))

	evalCtx, err := evalContext(ctx, vars, l.overrides)
	if err != nil {
		return nil, err
	}

	// Second pass: decode everything else with var.* available.
	sol := &config.Solution{}
	for _, f := range files {
		var root fileRoot
		if diags := gohcl.DecodeBody(f.body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", f.path, diags)
		}

		for _, s := range root.Solutions {
			sol.Name = s.Name
			sol.Configurations = append(sol.Configurations, s.Configurations...)
		}
		for _, p := range root.Projects {
			project, err := translateProject(ctx, p, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("in file %s: %w", f.path, err)
			}
			sol.Projects = append(sol.Projects, project)
		}
	}

	logger.Debug("HCL loading complete.", "solution", sol.Name, "projects", len(sol.Projects), "configurations", len(sol.Configurations))
	return sol, nil
}

func duplicateBlock(kind, name string, first, second hcl.Range) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Duplicate %s block", kind),
		Detail:   fmt.Sprintf("A %s block %q was already declared at %s.", kind, name, first),
		Subject:  second.Ptr(),
	}}
}
