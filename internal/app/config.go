package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/buildlevels/internal/planner"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SolutionPaths []string // .hcl/.yaml files or directories

	Configuration string
	Platform      string
	// All schedules every configuration the solution declares instead of
	// Configuration|Platform.
	All bool
	// Actions, when set, prints the solution-wide chain of that action kind
	// instead of a build plan.
	Actions string
	// Strict turns missing configurations into a failed run.
	Strict bool
	// EmitHCL prints the loaded solution as HCL and stops.
	EmitHCL bool

	Variables map[string]string

	Output    string
	Color     bool
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.SolutionPaths) == 0 {
		return nil, errors.New("SolutionPaths is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = OutputTable
	}
	if cfg.Output != OutputTable && cfg.Output != OutputJSON {
		return nil, fmt.Errorf("invalid output %q: must be %q or %q", cfg.Output, OutputTable, OutputJSON)
	}
	if cfg.Actions != "" {
		if _, err := planner.ParseActionKind(cfg.Actions); err != nil {
			return nil, err
		}
	}
	if !cfg.All && cfg.Actions == "" && !cfg.EmitHCL && (cfg.Configuration == "" || cfg.Platform == "") {
		return nil, errors.New("a configuration and platform are required unless scheduling all configurations")
	}
	return &cfg, nil
}
