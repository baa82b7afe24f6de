package config

// Solution is the unified, format-agnostic representation of one solution
// description, merged from every file a loader read.
type Solution struct {
	Name string
	// Configurations lists the solution-level keys in "Configuration|Platform"
	// form, in declaration order.
	Configurations []string
	Projects       []*Project
}

// Project is the format-agnostic representation of one project entry.
type Project struct {
	Name string
	// ID is the declared identifier, usually a GUID. Empty means the scheduler
	// derives one from Name.
	ID        string
	BuildFile string
	// DependsOn holds raw references: either another project's ID or its Name.
	DependsOn      []string
	Configurations []*Mapping
}

// Mapping selects the project-level configuration built for one solution
// configuration.
type Mapping struct {
	Solution string
	Target   string
	Build    bool
}

// ProjectCount returns the number of projects, treating a nil solution as empty.
func (s *Solution) ProjectCount() int {
	if s == nil {
		return 0
	}
	return len(s.Projects)
}
