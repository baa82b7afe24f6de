package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all top-level blocks of one file once variables are known.
type fileRoot struct {
	Variables []*variableDecl  `hcl:"variable,block"`
	Solutions []*solutionBlock `hcl:"solution,block"`
	Projects  []*projectBlock  `hcl:"project,block"`
}

// variableDecl only claims the block in the second pass; its body was
// already evaluated in the first.
type variableDecl struct {
	Name   string   `hcl:"name,label"`
	Remain hcl.Body `hcl:",remain"`
}

type variableBody struct {
	Type        hcl.Expression `hcl:"type,optional"`
	Default     hcl.Expression `hcl:"default,optional"`
	Description string         `hcl:"description,optional"`
}

type solutionBlock struct {
	Name           string   `hcl:"name,label"`
	Configurations []string `hcl:"configurations,optional"`
}

type projectBlock struct {
	Name           string          `hcl:"name,label"`
	ID             string          `hcl:"id,optional"`
	BuildFile      string          `hcl:"build_file,optional"`
	DependsOn      []string        `hcl:"depends_on,optional"`
	Configurations []*mappingBlock `hcl:"configuration,block"`
}

type mappingBlock struct {
	Solution string `hcl:"solution,label"`
	// Target defaults to the solution key when omitted.
	Target string         `hcl:"target,optional"`
	Build  hcl.Expression `hcl:"build,optional"`
}

// firstPassSchema picks out the blocks that must be seen before the rest of a
// file can be decoded.
var firstPassSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "variable", LabelNames: []string{"name"}},
		{Type: "solution", LabelNames: []string{"name"}},
	},
}
