package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/specialistvlad/buildlevels/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		expectExit bool
		expectCode int
		check      func(t *testing.T, cfg *app.Config)
	}{
		{
			name: "positional path with defaults",
			args: []string{"solution.hcl"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, []string{"solution.hcl"}, cfg.SolutionPaths)
				assert.Equal(t, "Debug", cfg.Configuration)
				assert.Equal(t, "Any CPU", cfg.Platform)
				assert.Equal(t, app.OutputTable, cfg.Output)
				assert.Equal(t, "text", cfg.LogFormat)
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.Empty(t, cfg.Variables)
			},
		},
		{
			name: "solution flag and extra paths",
			args: []string{"-solution", "a.hcl", "b.hcl"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, []string{"a.hcl", "b.hcl"}, cfg.SolutionPaths)
			},
		},
		{
			name: "long and short solution flags together",
			args: []string{"-s", "b.yaml", "-solution", "a.yaml", "c.yaml"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, []string{"a.yaml", "b.yaml", "c.yaml"}, cfg.SolutionPaths)
			},
		},
		{
			name: "shorthand and options",
			args: []string{"-s", "dir", "-configuration", "Release", "-platform", "x64", "-output", "JSON", "-strict", "-color", "-log-level", "DEBUG", "-log-format", "json"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, []string{"dir"}, cfg.SolutionPaths)
				assert.Equal(t, "Release", cfg.Configuration)
				assert.Equal(t, "x64", cfg.Platform)
				assert.Equal(t, app.OutputJSON, cfg.Output)
				assert.True(t, cfg.Strict)
				assert.True(t, cfg.Color)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "json", cfg.LogFormat)
			},
		},
		{
			name: "all and actions",
			args: []string{"-all", "-actions", "Publish", "dir"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.True(t, cfg.All)
				assert.Equal(t, "publish", cfg.Actions)
			},
		},
		{
			name: "emit hcl",
			args: []string{"-emit-hcl", "s.yaml"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.True(t, cfg.EmitHCL)
			},
		},
		{
			name: "repeated variables",
			args: []string{"-var", "platform=x64", "-var", "suffix=a=b", "dir"},
			check: func(t *testing.T, cfg *app.Config) {
				assert.Equal(t, map[string]string{"platform": "x64", "suffix": "a=b"}, cfg.Variables)
			},
		},
		{name: "help exits cleanly", args: []string{"-h"}, expectExit: true},
		{name: "no path prints usage", args: nil, expectExit: true},
		{name: "unknown flag", args: []string{"-nope"}, expectCode: 2},
		{name: "bad variable", args: []string{"-var", "novalue", "dir"}, expectCode: 2},
		{name: "bad log format", args: []string{"-log-format", "xml", "dir"}, expectCode: 2},
		{name: "bad log level", args: []string{"-log-level", "loud", "dir"}, expectCode: 2},
		{name: "bad output", args: []string{"-output", "yaml", "dir"}, expectCode: 2},
		{name: "bad action", args: []string{"-actions", "deploy", "dir"}, expectCode: 2},
		{name: "empty platform", args: []string{"-platform", " ", "dir"}, expectCode: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			cfg, shouldExit, err := Parse(tc.args, &out)

			if tc.expectCode != 0 {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				assert.Nil(t, cfg)
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			tc.check(t, cfg)
		})
	}
}
