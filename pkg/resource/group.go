package resource

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNotMember is returned by [Group.Remove] when the member does not
	// belong to the group.
	ErrNotMember = errors.New("not a member of this group")

	// ErrAlreadyGrouped is returned by [Group.Add] when the member already
	// belongs to a group. Remove it from its current group first; silent
	// reparenting would leave a stale entry in the old member list.
	ErrAlreadyGrouped = errors.New("already a member of a group")

	// ErrContainmentCycle is returned by [Group.Add] when adding the group
	// would make it contain itself transitively. Membership must stay a
	// strict tree.
	ErrContainmentCycle = errors.New("group cannot contain itself")
)

// Member is either a *Resource or a *Group inside a group tree.
type Member interface {
	// Parent returns the owning group, or nil at the root.
	Parent() *Group

	attach(*Group)
	detach()
}

// Group is an ordered, nestable container of resources and groups.
// Member insertion order is significant: it is the tie-break for resolution
// order among resources with no dependency relationship. Directory and Path
// set on a group cascade to members that leave them unset; a value closer
// to the resource always wins.
type Group struct {
	// UID names the group in logs and graph output. Groups are containers,
	// not resolver nodes, so group uids do not join the resource namespaces.
	UID string
	// Skip excludes the group and its entire subtree from resolution when
	// it evaluates true, regardless of member Include flags.
	Skip Flag

	// Cascading attributes. See Resource.EffectiveDirectory/EffectivePath.
	Directory string
	Path      string

	members []Member
	parent  *Group
}

// NewGroup creates an empty group.
func NewGroup(uid string) *Group { return &Group{UID: uid} }

// Parent returns the enclosing group, or nil at the root.
func (g *Group) Parent() *Group { return g.parent }

// Members returns the group's direct members in insertion order.
// The returned slice is a copy; the membership itself is shared.
func (g *Group) Members() []Member { return slices.Clone(g.members) }

// Add appends m to the group. It returns ErrAlreadyGrouped if m belongs to
// a group already, and ErrContainmentCycle if m is g or one of its
// ancestors.
func (g *Group) Add(m Member) error {
	if m.Parent() != nil {
		return fmt.Errorf("add to group %q: %w", g.UID, ErrAlreadyGrouped)
	}
	if child, ok := m.(*Group); ok {
		for anc := g; anc != nil; anc = anc.parent {
			if anc == child {
				return fmt.Errorf("add group %q to %q: %w", child.UID, g.UID, ErrContainmentCycle)
			}
		}
	}
	m.attach(g)
	g.members = append(g.members, m)
	return nil
}

// Remove detaches m from the group. It returns ErrNotMember if m is not a
// direct member.
func (g *Group) Remove(m Member) error {
	idx := slices.Index(g.members, m)
	if idx < 0 {
		return fmt.Errorf("remove from group %q: %w", g.UID, ErrNotMember)
	}
	g.members = slices.Delete(g.members, idx, idx+1)
	m.detach()
	return nil
}

// Scripts returns all script resources in the subtree, depth first in
// member order. Skip and Include flags are not consulted.
func (g *Group) Scripts() []*Resource { return g.filtered(KindScript) }

// Styles returns all stylesheet resources in the subtree.
func (g *Group) Styles() []*Resource { return g.filtered(KindStyle) }

// Links returns all generic link resources in the subtree.
func (g *Group) Links() []*Resource { return g.filtered(KindLink) }

func (g *Group) filtered(kind Kind) []*Resource {
	var out []*Resource
	for _, m := range g.members {
		switch v := m.(type) {
		case *Group:
			out = append(out, v.filtered(kind)...)
		case *Resource:
			if v.Kind == kind {
				out = append(out, v)
			}
		}
	}
	return out
}

func (g *Group) effectiveDirectory() string {
	if g == nil {
		return ""
	}
	if g.Directory != "" {
		return g.Directory
	}
	return g.parent.effectiveDirectory()
}

func (g *Group) effectivePath() string {
	if g == nil {
		return ""
	}
	if g.Path != "" {
		return g.Path
	}
	return g.parent.effectivePath()
}

func (g *Group) attach(p *Group) { g.parent = p }

func (g *Group) detach() { g.parent = nil }

func (g *Group) String() string {
	return fmt.Sprintf("group %q members=%d", g.UID, len(g.members))
}
