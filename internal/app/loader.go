package app

import (
	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/specialistvlad/buildlevels/internal/hcl"
	"github.com/specialistvlad/buildlevels/internal/yamlsln"
)

// NewLoader returns the loader used by the CLI: HCL for directories and
// .hcl files, YAML for .yaml/.yml files. Variables apply to HCL only.
func NewLoader(variables map[string]string) config.Loader {
	hclLoader := hcl.NewLoader(hcl.WithVariables(variables))
	yamlLoader := yamlsln.NewLoader()
	return config.NewRouter(hclLoader, map[string]config.Loader{
		".hcl":  hclLoader,
		".yaml": yamlLoader,
		".yml":  yamlLoader,
	})
}
