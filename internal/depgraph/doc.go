// Package depgraph holds the projects of one solution and the directed
// "depends on" edges between them.
//
// The graph is a pure container: it enforces that ids are unique and that
// edges only join known projects, nothing more. Self-edges and cycles are
// accepted here and rejected later by the leveler. Everything is keyed by
// projectid.ID rather than display name, so two projects may share a name.
//
// Iteration is always in insertion order, which keeps every derived result
// (levels, plans, rendered output) deterministic.
package depgraph
