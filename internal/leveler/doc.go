// Package leveler assigns every project in a dependency graph a build level,
// or rejects the graph because it contains a cycle.
//
// A project's level is one more than the deepest level among the projects it
// depends on; projects with no dependencies sit on level 1. So for every edge
// a → b, level(a) > level(b), and projects sharing a level never depend on
// each other. That is what lets an executor run one level's members in
// parallel.
//
// The walk is a depth-first search with a three-state marker per project
// (unvisited, in progress, done) and memoised levels, so it is O(V + E). It
// keeps its own stack instead of recursing, which keeps deep chains of
// project references off the goroutine stack.
package leveler
