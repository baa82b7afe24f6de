package leveler

import (
	"fmt"

	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// Graph is the read side of a dependency graph. *depgraph.Graph satisfies it.
type Graph interface {
	AllProjects() []depgraph.Project
	DependenciesOf(id projectid.ID) ([]projectid.ID, error)
}

type visit uint8

const (
	unvisited visit = iota
	inProgress
	done
)

// frame is one entry of the explicit DFS stack.
type frame struct {
	id     projectid.ID
	deps   []projectid.ID
	next   int
	maxDep int
}

// Compute levels every project in g. On a cycle it returns a
// *CyclicDependencyError and no levels at all.
func Compute(g Graph) (*Levels, error) {
	projects := g.AllProjects()

	names := make(map[projectid.ID]string, len(projects))
	order := make([]projectid.ID, 0, len(projects))
	for _, p := range projects {
		names[p.ID] = p.DisplayName
		order = append(order, p.ID)
	}

	state := make(map[projectid.ID]visit, len(projects))
	level := make(map[projectid.ID]int, len(projects))
	var stack []frame

	push := func(id projectid.ID) error {
		deps, err := g.DependenciesOf(id)
		if err != nil {
			return fmt.Errorf("reading dependencies of %s: %w", id, err)
		}
		state[id] = inProgress
		stack = append(stack, frame{id: id, deps: deps})
		return nil
	}

	for _, root := range order {
		if state[root] == done {
			continue
		}
		if err := push(root); err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.next < len(top.deps) {
				dep := top.deps[top.next]
				top.next++

				switch state[dep] {
				case done:
					top.maxDep = max(top.maxDep, level[dep])
				case inProgress:
					return nil, cycleFrom(stack, dep, names)
				default:
					if err := push(dep); err != nil {
						return nil, err
					}
				}
				continue
			}

			finished := top.id
			level[finished] = top.maxDep + 1
			state[finished] = done
			stack = stack[:len(stack)-1]

			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				parent.maxDep = max(parent.maxDep, level[finished])
			}
		}
	}

	return newLevels(order, level), nil
}

// cycleFrom cuts the cycle out of the current DFS stack: everything from the
// frame for closing up to the top, then closing again.
func cycleFrom(stack []frame, closing projectid.ID, names map[projectid.ID]string) *CyclicDependencyError {
	start := 0
	for i := range stack {
		if stack[i].id == closing {
			start = i
			break
		}
	}

	path := make([]projectid.ID, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		path = append(path, f.id)
	}
	path = append(path, closing)

	pathNames := make([]string, len(path))
	for i, id := range path {
		pathNames[i] = names[id]
	}
	return &CyclicDependencyError{Path: path, Names: pathNames}
}
