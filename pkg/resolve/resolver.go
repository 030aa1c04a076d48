package resolve

import (
	"fmt"

	"github.com/matzehuels/assetgraph/pkg/dag"
	"github.com/matzehuels/assetgraph/pkg/resource"
)

// Resolve produces a total order over the candidate list such that every
// dependency renders before its dependents. Among candidates with no
// dependency relationship, candidate order is preserved.
//
// Resolve fails with [*ConflictError] on duplicate uids within a kind,
// [*MissingDependencyError] on dependencies without a surviving same-kind
// candidate, and [*CycleError] when no topological order exists. It never
// returns a partial order.
func Resolve(candidates []*Candidate) ([]*Candidate, error) {
	byKey := make(map[string]*Candidate, len(candidates))
	g := dag.New()

	for _, c := range candidates {
		if err := c.Resource.Validate(); err != nil {
			return nil, err
		}
		k := key(c.Kind(), c.UID())
		if prev, ok := byKey[k]; ok {
			return nil, &ConflictError{
				Kind:   c.Kind(),
				UID:    c.UID(),
				First:  prev.Resource,
				Second: c.Resource,
			}
		}
		byKey[k] = c
		if err := g.AddNode(k); err != nil {
			return nil, fmt.Errorf("add resource %s: %w", k, err)
		}
	}

	// Edges point dependency → dependent, so zero in-degree means ready.
	for _, c := range candidates {
		for _, dep := range c.Resource.Depends {
			target := key(c.Kind(), dep)
			if _, ok := byKey[target]; !ok {
				return nil, &MissingDependencyError{
					Kind:       c.Kind(),
					UID:        c.UID(),
					Dependency: dep,
				}
			}
			if err := g.AddEdge(target, key(c.Kind(), c.UID())); err != nil {
				return nil, fmt.Errorf("add dependency %s of %s: %w", dep, c.UID(), err)
			}
		}
	}

	order, err := g.TopoSort()
	if err != nil {
		return nil, &CycleError{UIDs: g.CycleNodes()}
	}

	out := make([]*Candidate, len(order))
	for i, k := range order {
		out[i] = byKey[k]
	}
	return out, nil
}

// ResolveRoots is shorthand for Resolve(Collect(roots...)): one full
// resolution pass over a declaration tree snapshot.
func ResolveRoots(roots ...resource.Member) ([]*Candidate, error) {
	return Resolve(Collect(roots...))
}

// key scopes a uid to its kind namespace. A script and a style may share a
// uid, and dependencies never cross kinds.
func key(kind resource.Kind, uid string) string {
	return kind.String() + "/" + uid
}
