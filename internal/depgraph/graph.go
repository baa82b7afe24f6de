package depgraph

import (
	"slices"
	"sync"

	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// Project is a single vertex: one buildable unit of the solution.
type Project struct {
	ID projectid.ID
	// DisplayName is the human-readable name from the solution description.
	// It is not unique.
	DisplayName string
	// BuildFile points at the project's own build file. The scheduler never
	// opens it; it is handed through to whoever executes the plan.
	BuildFile string
	// Dependencies lists the ids this project depends on, in the order the
	// edges were first added. Filled by the graph; callers should leave it empty.
	Dependencies []projectid.ID
}

// Graph stores projects and their dependency edges. Reads and writes are
// guarded by a mutex, but the intended use is populate-then-read.
type Graph struct {
	mu    sync.RWMutex
	order []projectid.ID
	nodes map[projectid.ID]*entry
}

type entry struct {
	project Project
	depSet  map[projectid.ID]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[projectid.ID]*entry),
	}
}

// AddProject registers p. Any dependencies already set on p are ignored;
// edges are added with AddDependency.
func (g *Graph) AddProject(p Project) error {
	if p.ID.IsZero() {
		return projectid.ErrEmpty
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.nodes[p.ID]; ok {
		return &DuplicateProjectError{ID: p.ID, Existing: existing.project.DisplayName, Incoming: p.DisplayName}
	}

	p.Dependencies = nil
	g.nodes[p.ID] = &entry{project: p, depSet: make(map[projectid.ID]struct{})}
	g.order = append(g.order, p.ID)
	return nil
}

// AddDependency records that `from` depends on `to`. Both must exist.
// Adding the same edge twice is a no-op. from == to is allowed.
func (g *Graph) AddDependency(from, to projectid.ID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	src, ok := g.nodes[from]
	if !ok {
		return &UnknownProjectError{ID: from, Role: "dependent"}
	}
	if _, ok := g.nodes[to]; !ok {
		return &UnknownProjectError{ID: to, Role: "dependency"}
	}

	if _, seen := src.depSet[to]; seen {
		return nil
	}
	src.depSet[to] = struct{}{}
	src.project.Dependencies = append(src.project.Dependencies, to)
	return nil
}

// DependenciesOf returns the direct dependencies of id in edge order.
func (g *Graph) DependenciesOf(id projectid.ID) ([]projectid.ID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.nodes[id]
	if !ok {
		return nil, &UnknownProjectError{ID: id}
	}
	return slices.Clone(e.project.Dependencies), nil
}

// Project looks up a single project.
func (g *Graph) Project(id projectid.ID) (Project, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.nodes[id]
	if !ok {
		return Project{}, false
	}
	return e.project.snapshot(), true
}

// AllProjects returns every project in insertion order. The slice and each
// project's Dependencies are copies.
func (g *Graph) AllProjects() []Project {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Project, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id].project.snapshot())
	}
	return out
}

// Len returns the number of projects.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.order)
}

func (p Project) snapshot() Project {
	p.Dependencies = slices.Clone(p.Dependencies)
	return p
}
