package resolve

import (
	"github.com/matzehuels/assetgraph/pkg/resource"
)

// Candidate is a resource that survived Skip/Include filtering, carrying
// its effective (post-cascade) location attributes. Candidates reference
// the declared resource; they never copy or mutate it.
type Candidate struct {
	Resource *resource.Resource

	// Directory and Path are the cascaded values frozen at collection time.
	Directory string
	Path      string
}

// UID returns the candidate's resource uid.
func (c *Candidate) UID() string { return c.Resource.UID }

// Kind returns the candidate's resource kind.
func (c *Candidate) Kind() resource.Kind { return c.Resource.Kind }

// Collect walks the root entities depth first, preserving member insertion
// order, and returns the flat candidate list for one resolution pass.
//
// A group whose Skip evaluates true contributes nothing: the entire subtree
// is pruned regardless of member Include flags. A resource whose Include
// evaluates false is pruned individually. Each flag is evaluated exactly
// once. Collect only reads the tree.
func Collect(roots ...resource.Member) []*Candidate {
	var out []*Candidate
	for _, root := range roots {
		out = collectMember(out, root)
	}
	return out
}

func collectMember(out []*Candidate, m resource.Member) []*Candidate {
	switch v := m.(type) {
	case *resource.Group:
		if v.Skip.Eval(false) {
			return out
		}
		for _, child := range v.Members() {
			out = collectMember(out, child)
		}
	case *resource.Resource:
		if !v.Include.Eval(true) {
			return out
		}
		out = append(out, &Candidate{
			Resource:  v,
			Directory: v.EffectiveDirectory(),
			Path:      v.EffectivePath(),
		})
	}
	return out
}
