package leveler

import (
	"errors"
	"strings"

	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// ErrCyclicDependency is the sentinel wrapped by CyclicDependencyError.
var ErrCyclicDependency = errors.New("cyclic dependency detected")

// CyclicDependencyError reports a cycle found while leveling. Path lists the
// projects along the cycle in "depends on" order and ends with its first
// element again, e.g. [A B A] for A → B → A, or [A A] for a self-edge.
type CyclicDependencyError struct {
	Path  []projectid.ID
	Names []string // display names parallel to Path
}

func (e *CyclicDependencyError) Error() string {
	if len(e.Path) == 0 {
		return ErrCyclicDependency.Error()
	}
	parts := make([]string, len(e.Path))
	for i, id := range e.Path {
		parts[i] = label(id, e.nameAt(i))
	}
	return ErrCyclicDependency.Error() + ": " + strings.Join(parts, " -> ")
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }

// Project returns the project at which the cycle was closed.
func (e *CyclicDependencyError) Project() projectid.ID {
	if len(e.Path) == 0 {
		return projectid.ID{}
	}
	return e.Path[0]
}

func (e *CyclicDependencyError) nameAt(i int) string {
	if i < len(e.Names) {
		return e.Names[i]
	}
	return ""
}

func label(id projectid.ID, name string) string {
	if name == "" || name == id.String() {
		return id.String()
	}
	return name + " (" + id.String() + ")"
}
