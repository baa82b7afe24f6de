package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/buildlevels/internal/testutil"
)

// SetupAppTest writes files to a temporary directory, points cfg at it and
// returns an app together with its output and log buffers. A relative
// SolutionPaths entry is resolved against that directory; none means the
// whole directory.
func SetupAppTest(t *testing.T, cfg Config, files map[string]string) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	if len(cfg.SolutionPaths) == 0 {
		cfg.SolutionPaths = []string{dir}
	} else {
		for i, p := range cfg.SolutionPaths {
			cfg.SolutionPaths[i] = filepath.Join(dir, p)
		}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.Output == "" {
		cfg.Output = OutputTable
	}

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testApp := NewApp(out, logs, &cfg, NewLoader(cfg.Variables))

	t.Cleanup(func() {
		if os.Getenv("BUILDLEVELS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
