// Package config defines the format-agnostic description of a solution: its
// projects, their declared dependencies and the configuration mappings that
// select what each project builds for a given solution configuration.
//
// The `config.Solution` record is the single input of the scheduler.
// Concrete readers, such as HCL and YAML, live in separate packages and
// implement the Loader interface.
package config
