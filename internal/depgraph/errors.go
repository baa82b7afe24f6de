package depgraph

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/buildlevels/internal/projectid"
)

var (
	ErrDuplicateProject = errors.New("duplicate project")
	ErrUnknownProject   = errors.New("unknown project")
)

// DuplicateProjectError is returned by AddProject when the id is taken.
type DuplicateProjectError struct {
	ID       projectid.ID
	Existing string // display name of the project already registered
	Incoming string
}

func (e *DuplicateProjectError) Error() string {
	return fmt.Sprintf("%s: id %q is used by both %q and %q", ErrDuplicateProject, e.ID, e.Existing, e.Incoming)
}

func (e *DuplicateProjectError) Unwrap() error { return ErrDuplicateProject }

// UnknownProjectError is returned when an edge or query names an id that was
// never added. Role says which end of the edge was missing.
type UnknownProjectError struct {
	ID   projectid.ID
	Role string
}

func (e *UnknownProjectError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("%s: %q", ErrUnknownProject, e.ID)
	}
	return fmt.Sprintf("%s: %s %q not found in graph", ErrUnknownProject, e.Role, e.ID)
}

func (e *UnknownProjectError) Unwrap() error { return ErrUnknownProject }
