// Package planner turns leveled projects and a configuration matrix into the
// per-configuration build plan handed to an executor.
//
// For one solution key every project keeps the level it was given by the
// leveler and is annotated Build (with the project-level target it resolves
// to), Skip (mapped but disabled) or MissingConfig (no mapping at all).
// MissingConfig is not fatal: it is returned as a Warning and the project
// still occupies its slot, so level numbering is the same for every
// configuration of a solution.
//
// The package also expands projects into their build/clean/rebuild/publish
// actions, each depending on the same action of the project's dependencies.
package planner
