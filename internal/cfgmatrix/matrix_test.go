package cfgmatrix

import (
	"testing"

	"github.com/specialistvlad/buildlevels/internal/projectid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlatform(t *testing.T) {
	testCases := map[string]string{
		"Any CPU":  "AnyCPU",
		"AnyCPU":   "AnyCPU",
		"x64":      "x64",
		"any cpu":  "any cpu",
		"Any  CPU": "Any  CPU",
		" Any CPU": " Any CPU",
		"":         "",
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, NormalizePlatform(in))
		})
	}
}

func TestParseKey(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Key
	}{
		{name: "simple", raw: "Debug|x64", expected: Key{"Debug", "x64"}},
		{name: "normalises any cpu", raw: "Release|Any CPU", expected: Key{"Release", "AnyCPU"}},
		{name: "trims around separator", raw: " Debug | Win32 ", expected: Key{"Debug", "Win32"}},
		{name: "error - no separator", raw: "Debug", expectErr: true},
		{name: "error - empty platform", raw: "Debug|", expectErr: true},
		{name: "error - empty configuration", raw: "|x64", expectErr: true},
		{name: "error - extra separator", raw: "Debug|x64|arm", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := ParseKey(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, k)
			assert.Equal(t, tc.expected.String(), k.String())
		})
	}
}

func TestMatrix_LookupMissing(t *testing.T) {
	m := New()
	_, ok := m.Lookup(projectid.MustNew("A"), NewKey("Debug", "x64"))
	assert.False(t, ok)
}

func TestMatrix_AbsentIsDistinctFromDisabled(t *testing.T) {
	m := New()
	a := projectid.MustNew("A")
	key := NewKey("Debug", "x64")
	m.SetMapping(a, key, key, false)

	mapping, ok := m.Lookup(a, key)
	require.True(t, ok)
	assert.False(t, mapping.BuildEnabled)

	_, ok = m.Lookup(projectid.MustNew("B"), key)
	assert.False(t, ok)
}

func TestMatrix_LastWriteWins(t *testing.T) {
	m := New()
	a := projectid.MustNew("A")
	sol := NewKey("Debug", "Any CPU")

	m.SetMapping(a, sol, NewKey("Debug", "Any CPU"), false)
	m.SetMapping(a, sol, NewKey("Debug", "Any CPU"), true)

	mapping, ok := m.Lookup(a, sol)
	require.True(t, ok)
	assert.Equal(t, Mapping{Target: Key{"Debug", "AnyCPU"}, BuildEnabled: true}, mapping)
	assert.Equal(t, 1, m.Len())
}

func TestMatrix_PlatformNormalisation(t *testing.T) {
	m := New()
	a := projectid.MustNew("A")

	// Bypass NewKey on purpose: raw keys must be normalised at the boundary.
	m.SetMapping(a, Key{"Debug", "Any CPU"}, Key{"Debug", "Any CPU"}, true)

	spaced, ok := m.Lookup(a, Key{"Debug", "Any CPU"})
	require.True(t, ok)
	compact, ok := m.Lookup(a, Key{"Debug", "AnyCPU"})
	require.True(t, ok)

	assert.Equal(t, spaced, compact)
	assert.Equal(t, Key{"Debug", "AnyCPU"}, compact.Target)
}

func TestMatrix_SolutionKeys(t *testing.T) {
	m := New()
	m.DeclareSolutionKey(Key{"Release", "x64"})
	m.DeclareSolutionKey(Key{"Debug", "Any CPU"})
	m.DeclareSolutionKey(Key{"Debug", "AnyCPU"})

	assert.Equal(t, []Key{{"Release", "x64"}, {"Debug", "AnyCPU"}}, m.SolutionKeys())
}
