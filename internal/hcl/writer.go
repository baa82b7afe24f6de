package hcl

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// Write renders sol as an HCL solution description that Loader reads back
// into an equivalent solution. Defaults (`build = true`, a target equal to
// the solution key) are left out.
func Write(w io.Writer, sol *config.Solution) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if sol.Name != "" || len(sol.Configurations) > 0 {
		sb := body.AppendNewBlock("solution", []string{sol.Name}).Body()
		if len(sol.Configurations) > 0 {
			sb.SetAttributeValue("configurations", stringList(sol.Configurations))
		}
	}

	for _, p := range sol.Projects {
		body.AppendNewline()
		pb := body.AppendNewBlock("project", []string{p.Name}).Body()
		if p.ID != "" {
			pb.SetAttributeValue("id", cty.StringVal(p.ID))
		}
		if p.BuildFile != "" {
			pb.SetAttributeValue("build_file", cty.StringVal(p.BuildFile))
		}
		if len(p.DependsOn) > 0 {
			pb.SetAttributeValue("depends_on", stringList(p.DependsOn))
		}
		for _, m := range p.Configurations {
			mb := pb.AppendNewBlock("configuration", []string{m.Solution}).Body()
			if m.Target != m.Solution {
				mb.SetAttributeValue("target", cty.StringVal(m.Target))
			}
			if !m.Build {
				mb.SetAttributeValue("build", cty.False)
			}
		}
	}

	if _, err := w.Write(hclwrite.Format(f.Bytes())); err != nil {
		return fmt.Errorf("writing HCL solution: %w", err)
	}
	return nil
}

func stringList(values []string) cty.Value {
	vals := make([]cty.Value, len(values))
	for i, v := range values {
		vals[i] = cty.StringVal(v)
	}
	return cty.ListVal(vals)
}
