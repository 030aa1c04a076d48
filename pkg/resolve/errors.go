package resolve

import (
	"fmt"
	"strings"

	"github.com/matzehuels/assetgraph/pkg/resource"
)

// ConflictError reports two distinct resource declarations sharing a uid
// within the same kind namespace. Conflicts are never auto-resolved; a
// silent "last one wins" would hide the declaration bug.
type ConflictError struct {
	Kind resource.Kind
	UID  string
	// First and Second are the competing declarations in candidate order.
	First  *resource.Resource
	Second *resource.Resource
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting %s resource uid %q", e.Kind, e.UID)
}

// MissingDependencyError reports a dependency on a uid with no surviving
// candidate of the same kind: the target either was never declared or was
// pruned by Skip/Include. Dependencies must resolve to something that will
// actually render.
type MissingDependencyError struct {
	Kind       resource.Kind
	UID        string // the dependent resource
	Dependency string // the missing target uid
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s resource %q defines missing dependency %q", e.Kind, e.UID, e.Dependency)
}

// CycleError reports that the dependency graph has no topological order.
// UIDs lists resources on a cycle (or only reachable through one), in
// candidate order, prefixed with their kind.
type CycleError struct {
	UIDs []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("resources define circular dependencies: [%s]", strings.Join(e.UIDs, " "))
}
