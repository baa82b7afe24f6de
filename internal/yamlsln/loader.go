// Package yamlsln reads YAML solution descriptions into the format-agnostic
// config.Solution model.
//
//	name: Example
//	configurations: ["Debug|Any CPU"]
//	projects:
//	  - name: Core
//	    id: "{6F5D8A3E-2B1C-4D5E-9F00-112233445566}"
//	    depends_on: [Util]
//	    configurations:
//	      - solution: "Debug|Any CPU"
//	        target: "Debug|AnyCPU"
//
// `build` defaults to true and `target` to the solution key. Unknown fields
// are rejected.
package yamlsln

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/buildlevels/internal/config"
	"github.com/specialistvlad/buildlevels/internal/ctxlog"
	"github.com/specialistvlad/buildlevels/internal/fsutil"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Name           string         `yaml:"name"`
	Configurations []string       `yaml:"configurations"`
	Projects       []*projectNode `yaml:"projects"`
}

type projectNode struct {
	Name           string         `yaml:"name"`
	ID             string         `yaml:"id"`
	BuildFile      string         `yaml:"build_file"`
	DependsOn      []string       `yaml:"depends_on"`
	Configurations []*mappingNode `yaml:"configurations"`
}

type mappingNode struct {
	Solution string `yaml:"solution"`
	Target   string `yaml:"target"`
	Build    *bool  `yaml:"build"`
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML solution loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml/.yml file under paths and merges them. Only one
// file may name the solution.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Solution, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml files found in %v", paths)
	}

	sol := &config.Solution{}
	var namedBy string
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}

		root, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("error loading solution from %s: %w", path, err)
		}

		if root.Name != "" {
			if namedBy != "" {
				return nil, fmt.Errorf("solution name declared twice: in %s and %s", namedBy, path)
			}
			namedBy = path
			sol.Name = root.Name
		}
		sol.Configurations = append(sol.Configurations, root.Configurations...)
		for i, p := range root.Projects {
			if p == nil || p.Name == "" {
				return nil, fmt.Errorf("error loading solution from %s: project #%d has no name", path, i+1)
			}
			sol.Projects = append(sol.Projects, translateProject(p))
		}
		logger.Debug("Loaded YAML solution file.", "file", path, "projects", len(root.Projects))
	}

	logger.Debug("YAML loading complete.", "solution", sol.Name, "projects", len(sol.Projects), "configurations", len(sol.Configurations))
	return sol, nil
}

// decode parses one document strictly. An empty file is an empty solution.
func decode(data []byte) (*fileRoot, error) {
	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &root, nil
}

func translateProject(p *projectNode) *config.Project {
	project := &config.Project{
		Name:      p.Name,
		ID:        p.ID,
		BuildFile: p.BuildFile,
		DependsOn: p.DependsOn,
	}
	for _, m := range p.Configurations {
		if m == nil {
			continue
		}
		build := true
		if m.Build != nil {
			build = *m.Build
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
	return project
}
