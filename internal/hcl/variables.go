package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// variable is one evaluated `variable` block.
type variable struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	DeclRange   hcl.Range
}

// decodeVariable evaluates a variable block without an evaluation context:
// defaults are literals and may not refer to other variables.
func decodeVariable(ctx context.Context, block *hcl.Block) (*variable, hcl.Diagnostics) {
	var body variableBody
	if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
		return nil, diags
	}

	v := &variable{
		Name:        block.Labels[0],
		Type:        cty.DynamicPseudoType,
		Description: body.Description,
		DeclRange:   block.DefRange,
	}

	if isExprDefined(ctx, body.Type, "type") {
		ty, err := typeExprToCtyType(body.Type)
		if err != nil {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid variable type",
				Detail:   fmt.Sprintf("Variable %q: %s.", v.Name, err),
				Subject:  body.Type.Range().Ptr(),
			}}
		}
		v.Type = ty
	}

	if isExprDefined(ctx, body.Default, "default") {
		val, diags := body.Default.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		val, err := convert.Convert(val, v.Type)
		if err != nil {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Invalid default value for variable",
				Detail:   fmt.Sprintf("Variable %q: %s.", v.Name, err),
				Subject:  body.Default.Range().Ptr(),
			}}
		}
		if !val.IsNull() {
			v.Default = &val
		}
	}

	return v, nil
}

// evalContext resolves every declared variable, applying overrides given as
// raw strings and converting them to the declared type.
func evalContext(ctx context.Context, vars map[string]*variable, overrides map[string]string) (*hcl.EvalContext, error) {
	logger := ctxlog.FromContext(ctx)

	for name := range overrides {
		if _, ok := vars[name]; !ok {
			return nil, fmt.Errorf("value given for undeclared variable %q", name)
		}
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make(map[string]cty.Value, len(vars))
	for _, name := range names {
		v := vars[name]
		if raw, ok := overrides[name]; ok {
			val, err := overrideValue(name, raw, v.Type)
			if err != nil {
				return nil, fmt.Errorf("invalid value for variable %q: %w", name, err)
			}
			logger.Debug("Variable overridden.", "variable", name)
			values[name] = val
			continue
		}
		if v.Default == nil {
			return nil, fmt.Errorf("%s: variable %q has no default and no value was given", v.DeclRange, name)
		}
		values[name] = *v.Default
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(values)},
	}, nil
}

// overrideValue converts a raw command-line value to ty. Primitive and untyped
// variables take the text as a string; collection types parse it as an HCL
// expression, e.g. `["Debug", "Release"]` or `{ x64 = true }`.
func overrideValue(name, raw string, ty cty.Type) (cty.Value, error) {
	if ty.IsPrimitiveType() || ty == cty.DynamicPseudoType {
		return convert.Convert(cty.StringVal(raw), ty)
	}

	expr, diags := hclsyntax.ParseExpression([]byte(raw), fmt.Sprintf("<value for var.%s>", name), hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	return convert.Convert(val, ty)
}

// isExprDefined reports whether an optional attribute was actually written.
// gohcl fills omitted optional expressions with a zero-width placeholder, so
// the source range is the only reliable signal.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	defined := r.End.Byte > r.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checked optional HCL attribute.", "attribute", attrName, "hcl_range", r.String(), "is_defined", defined)
	return defined
}

// typeExprToCtyType converts a variable type expression (`string`, `number`,
// `bool`, `any`, or `list(...)`, `set(...)`, `map(...)` of those) into a cty type.
func typeExprToCtyType(expr hcl.Expression) (cty.Type, error) {
	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type keyword must be a single identifier")
		}
		switch name := v.Traversal.RootName(); name {
		case "string":
			return cty.String, nil
		case "number":
			return cty.Number, nil
		case "bool":
			return cty.Bool, nil
		case "any":
			return cty.DynamicPseudoType, nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown primitive type %q", name)
		}

	case *hclsyntax.FunctionCallExpr:
		if len(v.Args) != 1 {
			return cty.DynamicPseudoType, fmt.Errorf("type constructor %s() requires exactly one argument, got %d", v.Name, len(v.Args))
		}
		elem, err := typeExprToCtyType(v.Args[0])
		if err != nil {
			return cty.DynamicPseudoType, err
		}
		switch v.Name {
		case "list":
			return cty.List(elem), nil
		case "set":
			return cty.Set(elem), nil
		case "map":
			return cty.Map(elem), nil
		default:
			return cty.DynamicPseudoType, fmt.Errorf("unknown type constructor %q", v.Name)
		}

	default:
		return cty.DynamicPseudoType, fmt.Errorf("unsupported type expression %T", expr)
	}
}
