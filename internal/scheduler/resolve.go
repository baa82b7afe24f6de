package scheduler

import (
	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// resolver maps `depends_on` entries to project ids: an entry is tried as a
// declared id first, then as a display name that must be unique.
type resolver struct {
	g      *depgraph.Graph
	byName map[string][]projectid.ID
}

func newResolver(g *depgraph.Graph) *resolver {
	r := &resolver{g: g, byName: make(map[string][]projectid.ID)}
	for _, p := range g.AllProjects() {
		r.byName[p.DisplayName] = append(r.byName[p.DisplayName], p.ID)
	}
	return r
}

func (r *resolver) resolve(project, ref string) (projectid.ID, error) {
	if id, ok := r.lookupID(ref); ok {
		return id, nil
	}
	switch matches := r.byName[ref]; len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return projectid.ID{}, &ReferenceError{Kind: ErrUnknownReference, Project: project, Ref: ref}
	default:
		return projectid.ID{}, &ReferenceError{Kind: ErrAmbiguousReference, Project: project, Ref: ref, Matches: len(matches)}
	}
}

func (r *resolver) lookupID(ref string) (projectid.ID, bool) {
	var (
		id  projectid.ID
		err error
	)
	if projectid.IsGUID(ref) {
		id, err = projectid.FromGUID(ref)
	} else {
		id, err = projectid.New(ref)
	}
	if err != nil {
		return projectid.ID{}, false
	}
	if _, ok := r.g.Project(id); !ok {
		return projectid.ID{}, false
	}
	return id, true
}
