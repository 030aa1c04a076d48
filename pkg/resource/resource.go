package resource

import (
	"errors"
	"fmt"

	"github.com/matzehuels/assetgraph/pkg/integrity"
)

var (
	// ErrEmptyUID is returned by [Resource.Validate] when a resource has no
	// identifier. Every resource needs a non-empty uid within its kind.
	ErrEmptyUID = errors.New("resource uid must not be empty")

	// ErrNoLocation is returned by [Resource.Validate] when neither a source
	// file nor an external URL is declared. One of the two must be present
	// for tag rendering to produce a usable href/src.
	ErrNoLocation = errors.New("either file or url must be given")

	// ErrExternalIntegrity is returned by [Resource.Validate] when computed
	// subresource integrity is requested for an external-URL resource. The
	// file content is not available locally, so the digest cannot be derived.
	ErrExternalIntegrity = errors.New("cannot compute integrity hash for external resource")
)

// Kind identifies the resource namespace and the markup shape used for it.
type Kind int

const (
	// KindScript renders as a <script> tag.
	KindScript Kind = iota
	// KindStyle renders as a stylesheet <link> tag.
	KindStyle
	// KindLink renders as a generic <link> tag.
	KindLink
)

// String returns the lowercase kind name used in manifests and error output.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	case KindLink:
		return "link"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// DefaultUniquePrefix marks cache-busting URL segments so delivery
// middleware can strip them before file lookup.
const DefaultUniquePrefix = "++unique++"

// Resource is a single declared asset with identity, location and
// dependency metadata. Construct with [NewScript], [NewStyle] or [NewLink]
// and set exported fields before the first resolution pass. The resolver
// and renderer never mutate resources.
type Resource struct {
	// UID identifies the resource within its kind namespace.
	UID string
	// Kind selects the namespace and tag shape. Set by the constructors.
	Kind Kind
	// Depends lists uids of same-kind resources that must render before
	// this one.
	Depends []string
	// Include controls participation in resolution. Unset means included.
	Include Flag

	// Directory holds the local directory containing the source files.
	// Empty means inherit from the nearest enclosing group.
	Directory string
	// Path is the URL path segment for tag creation. Empty means inherit.
	Path string
	// URL points at an external resource and wins over all URL building.
	URL string

	// File is the source file name. Compressed, when set, is served instead
	// outside development mode.
	File       string
	Compressed string

	// Unique appends a digest-derived key segment to the URL for cache
	// busting. Ignored when URL is set.
	Unique       bool
	UniquePrefix string
	// Algorithm selects the digest used for unique keys and integrity.
	Algorithm integrity.Algorithm

	// Common tag attributes. Empty values are omitted from markup.
	Crossorigin    string
	Referrerpolicy string
	Type           string

	// Script attributes.
	Async    string
	Defer    string
	Nomodule string
	// Integrity is a precomputed subresource integrity value rendered
	// verbatim. ComputeIntegrity derives it from the file content instead.
	Integrity        string
	ComputeIntegrity bool

	// Link attributes.
	Hreflang string
	Media    string
	Rel      string
	Sizes    string
	Title    string

	// Extra attributes rendered on the tag in addition to the ones above.
	Extra map[string]string

	parent *Group
}

// NewScript creates a script resource with default digest settings.
func NewScript(uid string) *Resource {
	return &Resource{
		UID:          uid,
		Kind:         KindScript,
		UniquePrefix: DefaultUniquePrefix,
		Algorithm:    integrity.SHA384,
	}
}

// NewStyle creates a stylesheet resource. Styles render as link tags with
// rel="stylesheet", media="all" and type="text/css" unless overridden.
func NewStyle(uid string) *Resource {
	return &Resource{
		UID:          uid,
		Kind:         KindStyle,
		UniquePrefix: DefaultUniquePrefix,
		Algorithm:    integrity.SHA384,
		Rel:          "stylesheet",
		Media:        "all",
		Type:         "text/css",
	}
}

// NewLink creates a generic link resource.
func NewLink(uid string) *Resource {
	return &Resource{
		UID:          uid,
		Kind:         KindLink,
		UniquePrefix: DefaultUniquePrefix,
		Algorithm:    integrity.SHA384,
	}
}

// Validate checks declaration invariants that do not depend on the
// surrounding tree: a non-empty uid, a file or URL to point at, and no
// computed integrity for external resources.
func (r *Resource) Validate() error {
	if r.UID == "" {
		return ErrEmptyUID
	}
	if r.File == "" && r.URL == "" {
		return fmt.Errorf("%s resource %q: %w", r.Kind, r.UID, ErrNoLocation)
	}
	if r.ComputeIntegrity && r.URL != "" {
		return fmt.Errorf("%s resource %q: %w", r.Kind, r.UID, ErrExternalIntegrity)
	}
	return nil
}

// Parent returns the owning group, or nil for a root resource.
func (r *Resource) Parent() *Group { return r.parent }

// EffectiveDirectory walks from the resource through enclosing groups and
// returns the first explicitly set directory, or "" when none is set.
func (r *Resource) EffectiveDirectory() string {
	if r.Directory != "" {
		return r.Directory
	}
	return r.parent.effectiveDirectory()
}

// EffectivePath walks from the resource through enclosing groups and
// returns the first explicitly set URL path, or "" when none is set.
func (r *Resource) EffectivePath() string {
	if r.Path != "" {
		return r.Path
	}
	return r.parent.effectivePath()
}

func (r *Resource) attach(g *Group) { r.parent = g }

func (r *Resource) detach() { r.parent = nil }

func (r *Resource) String() string {
	return fmt.Sprintf("%s %q depends=%v", r.Kind, r.UID, r.Depends)
}
