package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/buildlevels/internal/ctxlog"
)

// Loader is the interface for a format-specific solution reader.
type Loader interface {
	// Load reads the solution description from the given paths and translates
	// it into the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Solution, error)
}

// Router is a Loader that hands paths to the loader registered for their file
// extension. Directories go to the directory loader.
type Router struct {
	byExt map[string]Loader
	dir   Loader
}

// NewRouter creates a router. Extensions include the leading dot and are
// matched case-insensitively.
func NewRouter(dir Loader, byExt map[string]Loader) *Router {
	r := &Router{byExt: make(map[string]Loader, len(byExt)), dir: dir}
	for ext, l := range byExt {
		r.byExt[strings.ToLower(ext)] = l
	}
	return r
}

// Load picks a single loader for all paths. Paths that resolve to different
// loaders are rejected, since one solution is read by one format.
func (r *Router) Load(ctx context.Context, paths ...string) (*Solution, error) {
	logger := ctxlog.FromContext(ctx)
	if len(paths) == 0 {
		return nil, errors.New("no solution path given")
	}

	var (
		chosen   Loader
		chosenBy string
	)
	for _, path := range paths {
		l, err := r.loaderFor(path)
		if err != nil {
			return nil, err
		}
		if chosen == nil {
			chosen, chosenBy = l, path
			continue
		}
		if l != chosen {
			return nil, fmt.Errorf("cannot mix solution formats: %s and %s", chosenBy, path)
		}
	}

	logger.Debug("Routing solution paths.", "paths", paths, "loader", fmt.Sprintf("%T", chosen))
	return chosen.Load(ctx, paths...)
}

func (r *Router) loaderFor(path string) (Loader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if info.IsDir() {
		if r.dir == nil {
			return nil, fmt.Errorf("%s is a directory and no directory loader is configured", path)
		}
		return r.dir, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported solution file %s: unknown extension %q", path, ext)
	}
	return l, nil
}
