// Package scheduler ties the scheduling core together for one solution.
//
// Build turns a config.Solution into a dependency graph and configuration
// matrix: it assigns project ids, resolves `depends_on` references and fills
// the matrix. Schedule then levels the graph and plans one solution
// configuration; ScheduleAll plans every declared configuration from a single
// leveling pass. A dependency cycle fails the run with a
// *leveler.CyclicDependencyError and no plan.
package scheduler
