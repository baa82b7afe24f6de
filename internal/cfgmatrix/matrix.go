package cfgmatrix

import (
	"slices"

	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// Mapping is what a project builds for one solution key.
type Mapping struct {
	Target       Key
	BuildEnabled bool
}

type cell struct {
	project  projectid.ID
	solution Key
}

// Matrix maps (project, solution key) to a Mapping. A missing cell is a
// distinct state from a cell with BuildEnabled=false.
type Matrix struct {
	cells        map[cell]Mapping
	solutionKeys []Key
}

// New returns an empty matrix.
func New() *Matrix {
	return &Matrix{cells: make(map[cell]Mapping)}
}

// SetMapping records the mapping for (project, solutionKey). Calling it again
// for the same pair replaces the earlier mapping, which is how a reader
// declares a mapping first and marks it buildable in a second pass.
func (m *Matrix) SetMapping(project projectid.ID, solutionKey, target Key, buildEnabled bool) {
	m.cells[cell{project: project, solution: solutionKey.Normalized()}] = Mapping{
		Target:       target.Normalized(),
		BuildEnabled: buildEnabled,
	}
}

// Lookup returns the mapping for (project, solutionKey), if any.
func (m *Matrix) Lookup(project projectid.ID, solutionKey Key) (Mapping, bool) {
	mapping, ok := m.cells[cell{project: project, solution: solutionKey.Normalized()}]
	return mapping, ok
}

// DeclareSolutionKey adds k to the solution's configuration list unless it
// is already there.
func (m *Matrix) DeclareSolutionKey(k Key) {
	k = k.Normalized()
	if slices.Contains(m.solutionKeys, k) {
		return
	}
	m.solutionKeys = append(m.solutionKeys, k)
}

// SolutionKeys returns the declared solution keys in declaration order.
func (m *Matrix) SolutionKeys() []Key {
	return slices.Clone(m.solutionKeys)
}

// Len returns the number of stored mappings.
func (m *Matrix) Len() int {
	return len(m.cells)
}
