package leveler

import (
	"maps"
	"slices"

	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// Levels is the immutable result of Compute.
type Levels struct {
	byID    map[projectid.ID]int
	buckets [][]projectid.ID // buckets[i-1] holds level i, in graph insertion order
}

func newLevels(order []projectid.ID, level map[projectid.ID]int) *Levels {
	count := 0
	for _, l := range level {
		count = max(count, l)
	}

	buckets := make([][]projectid.ID, count)
	for _, id := range order {
		l := level[id]
		buckets[l-1] = append(buckets[l-1], id)
	}
	return &Levels{byID: level, buckets: buckets}
}

// Of returns the level of id, or 0 if id was not part of the graph.
func (l *Levels) Of(id projectid.ID) int {
	return l.byID[id]
}

// Count returns the highest level, which is also the number of levels.
// An empty graph has zero levels.
func (l *Levels) Count() int {
	return len(l.buckets)
}

// At returns the projects on level i (1-indexed) in graph insertion order.
// Out-of-range levels yield nil.
func (l *Levels) At(i int) []projectid.ID {
	if i < 1 || i > len(l.buckets) {
		return nil
	}
	return slices.Clone(l.buckets[i-1])
}

// Map returns a copy of the project → level assignment.
func (l *Levels) Map() map[projectid.ID]int {
	return maps.Clone(l.byID)
}
