package planner

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/buildlevels/internal/depgraph"
	"github.com/specialistvlad/buildlevels/internal/projectid"
)

// ActionKind is one of the fixed per-project targets.
type ActionKind int

const (
	ActionBuild ActionKind = iota
	ActionClean
	ActionRebuild
	ActionPublish
)

// ActionKinds lists every kind in the order actions are generated.
var ActionKinds = []ActionKind{ActionBuild, ActionClean, ActionRebuild, ActionPublish}

func (k ActionKind) String() string {
	switch k {
	case ActionBuild:
		return "build"
	case ActionClean:
		return "clean"
	case ActionRebuild:
		return "rebuild"
	case ActionPublish:
		return "publish"
	default:
		return fmt.Sprintf("action(%d)", int(k))
	}
}

// ParseActionKind accepts the names produced by String, case-insensitively.
func ParseActionKind(s string) (ActionKind, error) {
	for _, k := range ActionKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q: must be one of build, clean, rebuild, publish", s)
}

// MarshalText renders kinds by name in JSON output.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ActionRef names an action: a kind applied to one project.
type ActionRef struct {
	Kind    ActionKind   `json:"kind"`
	Project projectid.ID `json:"project"`
}

func (r ActionRef) String() string {
	return r.Kind.String() + ":" + r.Project.String()
}

// Action is one generated target and the actions it must wait for.
type Action struct {
	ActionRef
	Name      string      `json:"name"`
	DependsOn []ActionRef `json:"depends_on"`
}

// PlanProjectActions expands one project into its build, clean, rebuild and
// publish actions. Each action depends on the action of the same kind for
// every direct dependency of the project.
func (p *Planner) PlanProjectActions(id projectid.ID) ([]Action, error) {
	project, ok := p.graph.Project(id)
	if !ok {
		return nil, &depgraph.UnknownProjectError{ID: id}
	}

	actions := make([]Action, 0, len(ActionKinds))
	for _, kind := range ActionKinds {
		actions = append(actions, newAction(kind, id, project.DisplayName, project.Dependencies))
	}
	return actions, nil
}

// PlanSolutionActions returns the actions of one kind for every project, in
// level order, which is an order in which they can be run one by one.
func (p *Planner) PlanSolutionActions(kind ActionKind) []Action {
	var actions []Action
	for i := 1; i <= p.levels.Count(); i++ {
		for _, id := range p.levels.At(i) {
			project, _ := p.graph.Project(id)
			actions = append(actions, newAction(kind, id, project.DisplayName, project.Dependencies))
		}
	}
	return actions
}

func newAction(kind ActionKind, id projectid.ID, name string, deps []projectid.ID) Action {
	dependsOn := make([]ActionRef, 0, len(deps))
	for _, d := range deps {
		dependsOn = append(dependsOn, ActionRef{Kind: kind, Project: d})
	}
	return Action{
		ActionRef: ActionRef{Kind: kind, Project: id},
		Name:      name,
		DependsOn: dependsOn,
	}
}
