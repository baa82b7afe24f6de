package leveler

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/projectid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGraph creates one project per name and one edge per "from>to" pair.
func buildGraph(t *testing.T, names []string, edges ...string) *depgraph.Graph {
	t.Helper()
	g := depgraph.New()
	for _, n := range names {
		require.NoError(t, g.AddProject(depgraph.Project{ID: projectid.MustNew(n), DisplayName: n}))
	}
	for _, e := range edges {
		var from, to string
		for i := range e {
			if e[i] == '>' {
				from, to = e[:i], e[i+1:]
				break
			}
		}
		require.NotEmpty(t, from, "malformed edge %q", e)
		require.NoError(t, g.AddDependency(projectid.MustNew(from), projectid.MustNew(to)))
	}
	return g
}

func id(name string) projectid.ID { return projectid.MustNew(name) }

func TestCompute_EmptyGraph(t *testing.T) {
	levels, err := Compute(depgraph.New())
	require.NoError(t, err)
	assert.Equal(t, 0, levels.Count())
	assert.Nil(t, levels.At(1))
}

func TestCompute_Chain(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, "A>B", "B>C")

	levels, err := Compute(g)
	require.NoError(t, err)

	assert.Equal(t, 3, levels.Count())
	assert.Equal(t, 1, levels.Of(id("C")))
	assert.Equal(t, 2, levels.Of(id("B")))
	assert.Equal(t, 3, levels.Of(id("A")))
	assert.Equal(t, []projectid.ID{id("C")}, levels.At(1))
	assert.Equal(t, []projectid.ID{id("B")}, levels.At(2))
	assert.Equal(t, []projectid.ID{id("A")}, levels.At(3))
}

func TestCompute_IndependentProjectsShareLevelOne(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"})

	levels, err := Compute(g)
	require.NoError(t, err)

	assert.Equal(t, 1, levels.Count())
	assert.Equal(t, []projectid.ID{id("A"), id("B")}, levels.At(1))
}

func TestCompute_LongestPathWins(t *testing.T) {
	// App depends on Lib directly and through Core; Lib must sit below Core.
	g := buildGraph(t, []string{"App", "Core", "Lib", "Tool"},
		"App>Lib", "App>Core", "Core>Lib", "Tool>Lib")

	levels, err := Compute(g)
	require.NoError(t, err)

	assert.Equal(t, map[projectid.ID]int{
		id("Lib"):  1,
		id("Core"): 2,
		id("Tool"): 2,
		id("App"):  3,
	}, levels.Map())
	assert.Equal(t, []projectid.ID{id("Core"), id("Tool")}, levels.At(2), "insertion order within a level")
}

func TestCompute_UnknownLevelIsZero(t *testing.T) {
	levels, err := Compute(buildGraph(t, []string{"A"}))
	require.NoError(t, err)
	assert.Equal(t, 0, levels.Of(id("ghost")))
	assert.Nil(t, levels.At(0))
	assert.Nil(t, levels.At(2))
}

func TestCompute_CycleRejection(t *testing.T) {
	testCases := []struct {
		name     string
		names    []string
		edges    []string
		wantPath []string
	}{
		{
			name:     "self edge",
			names:    []string{"A"},
			edges:    []string{"A>A"},
			wantPath: []string{"A", "A"},
		},
		{
			name:     "two cycle",
			names:    []string{"A", "B"},
			edges:    []string{"A>B", "B>A"},
			wantPath: []string{"A", "B", "A"},
		},
		{
			name:     "longer cycle",
			names:    []string{"A", "B", "C", "D"},
			edges:    []string{"A>B", "B>C", "C>D", "D>B"},
			wantPath: []string{"B", "C", "D", "B"},
		},
		{
			name:     "cycle in a disjoint component",
			names:    []string{"a", "b", "x", "y", "z"},
			edges:    []string{"a>b", "x>y", "y>z", "z>y"},
			wantPath: []string{"y", "z", "y"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.names, tc.edges...)

			levels, err := Compute(g)
			require.Error(t, err)
			assert.Nil(t, levels, "no partial result may be returned")
			assert.ErrorIs(t, err, ErrCyclicDependency)

			var cycErr *CyclicDependencyError
			require.True(t, errors.As(err, &cycErr))

			want := make([]projectid.ID, len(tc.wantPath))
			for i, n := range tc.wantPath {
				want[i] = id(n)
			}
			assert.Equal(t, want, cycErr.Path)
			assert.Equal(t, want[0], cycErr.Project())
			assert.Contains(t, err.Error(), "cyclic dependency detected")
		})
	}
}

func TestCyclicDependencyError_MessageUsesNames(t *testing.T) {
	g := depgraph.New()
	core := projectid.MustNew("{6F5D8A3E-2B1C-4D5E-9F00-112233445566}")
	util := projectid.MustNew("util-id")
	require.NoError(t, g.AddProject(depgraph.Project{ID: core, DisplayName: "Core"}))
	require.NoError(t, g.AddProject(depgraph.Project{ID: util, DisplayName: "util-id"}))
	require.NoError(t, g.AddDependency(core, util))
	require.NoError(t, g.AddDependency(util, core))

	_, err := Compute(g)
	require.Error(t, err)
	assert.Equal(t,
		"cyclic dependency detected: Core ({6F5D8A3E-2B1C-4D5E-9F00-112233445566}) -> util-id -> Core ({6F5D8A3E-2B1C-4D5E-9F00-112233445566})",
		err.Error())
}

func TestCompute_DeepChainDoesNotRecurse(t *testing.T) {
	const depth = 100_000
	g := depgraph.New()
	prev := projectid.ID{}
	for i := range depth {
		cur := projectid.MustNew(fmt.Sprintf("p%d", i))
		require.NoError(t, g.AddProject(depgraph.Project{ID: cur}))
		if !prev.IsZero() {
			require.NoError(t, g.AddDependency(prev, cur))
		}
		prev = cur
	}

	levels, err := Compute(g)
	require.NoError(t, err)
	assert.Equal(t, depth, levels.Count())
	assert.Equal(t, depth, levels.Of(id("p0")))
	assert.Equal(t, 1, levels.Of(prev))
}

func TestCompute_PlacementInvariantOnRandomDAGs(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := range 25 {
		t.Run(fmt.Sprintf("round_%d", round), func(t *testing.T) {
			n := 2 + rng.IntN(40)
			g := depgraph.New()
			ids := make([]projectid.ID, n)
			for i := range n {
				ids[i] = projectid.MustNew(fmt.Sprintf("n%d", i))
				require.NoError(t, g.AddProject(depgraph.Project{ID: ids[i]}))
			}
			// Edges only point from higher to lower index, so the graph is acyclic.
			for i := 1; i < n; i++ {
				for j := 0; j < i; j++ {
					if rng.IntN(4) == 0 {
						require.NoError(t, g.AddDependency(ids[i], ids[j]))
					}
				}
			}

			levels, err := Compute(g)
			require.NoError(t, err)

			for _, p := range g.AllProjects() {
				if len(p.Dependencies) == 0 {
					assert.Equal(t, 1, levels.Of(p.ID), "leaf %s must be on level 1", p.ID)
				}
				maxDep := 0
				for _, d := range p.Dependencies {
					assert.Greater(t, levels.Of(p.ID), levels.Of(d), "edge %s -> %s", p.ID, d)
					maxDep = max(maxDep, levels.Of(d))
				}
				assert.Equal(t, maxDep+1, levels.Of(p.ID))
			}

			total := 0
			for i := 1; i <= levels.Count(); i++ {
				total += len(levels.At(i))
			}
			assert.Equal(t, n, total, "every project lands on exactly one level")
		})
	}
}

type brokenGraph struct{ projects []depgraph.Project }

func (b brokenGraph) AllProjects() []depgraph.Project { return b.projects }

func (b brokenGraph) DependenciesOf(id projectid.ID) ([]projectid.ID, error) {
	return nil, &depgraph.UnknownProjectError{ID: id}
}

func TestCompute_PropagatesGraphErrors(t *testing.T) {
	_, err := Compute(brokenGraph{projects: []depgraph.Project{{ID: id("A")}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, depgraph.ErrUnknownProject)
	assert.ErrorContains(t, err, "reading dependencies of A")
}
