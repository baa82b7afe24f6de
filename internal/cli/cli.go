package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/buildlevels/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("buildlevels", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
buildlevels - Orders a solution's projects into build levels and resolves
what each project builds for a solution configuration.

Usage:
  buildlevels [options] [SOLUTION_PATH...]

Arguments:
  SOLUTION_PATH
    A .hcl, .yaml or .yml solution file, or a directory of .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	solutionFlag := flagSet.String("solution", "", "Path to the solution file or directory.")
	sFlag := flagSet.String("s", "", "Path to the solution file or directory (shorthand).")
	configurationFlag := flagSet.String("configuration", "Debug", "Solution configuration to plan.")
	platformFlag := flagSet.String("platform", "Any CPU", "Solution platform to plan.")
	allFlag := flagSet.Bool("all", false, "Plan every configuration the solution declares.")
	actionsFlag := flagSet.String("actions", "", "Print the solution-wide chain of one action instead of a plan. Options: 'build', 'clean', 'rebuild', 'publish'.")
	emitHCLFlag := flagSet.Bool("emit-hcl", false, "Print the loaded solution as HCL instead of planning it.")
	strictFlag := flagSet.Bool("strict", false, "Fail when a project has no mapping for a planned configuration.")
	outputFlag := flagSet.String("output", app.OutputTable, "Result format. Options: 'table' or 'json'.")
	colorFlag := flagSet.Bool("color", false, "Colorize table output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	variables := make(map[string]string)
	flagSet.Func("var", "Set an HCL variable as name=value. May be repeated.", func(s string) error {
		name, value, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("expected name=value, got %q", s)
		}
		variables[name] = value
		return nil
	})

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	for _, p := range []string{*solutionFlag, *sFlag} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Solution paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No solution path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SolutionPaths: paths,
		Configuration: strings.TrimSpace(*configurationFlag),
		Platform:      strings.TrimSpace(*platformFlag),
		All:           *allFlag,
		Actions:       strings.ToLower(*actionsFlag),
		Strict:        *strictFlag,
		EmitHCL:       *emitHCLFlag,
		Variables:     variables,
		Output:        strings.ToLower(*outputFlag),
		Color:         *colorFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
