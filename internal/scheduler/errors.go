package scheduler

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownReference   = errors.New("unknown dependency reference")
	ErrAmbiguousReference = errors.New("ambiguous dependency reference")
)

// ReferenceError reports a `depends_on` entry that does not resolve to
// exactly one project.
type ReferenceError struct {
	Kind    error
	Project string
	Ref     string
	// Matches is how many projects carry Ref as their name.
	Matches int
}

func (e *ReferenceError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("%s: project %q depends on %q, which names %d projects; use the project id", e.Kind, e.Project, e.Ref, e.Matches)
	}
	return fmt.Sprintf("%s: project %q depends on %q, which matches no project id or name", e.Kind, e.Project, e.Ref)
}

func (e *ReferenceError) Unwrap() error { return e.Kind }
