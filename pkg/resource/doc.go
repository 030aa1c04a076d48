// Package resource defines the entity model for declared web assets.
//
// Applications declare [Resource] values (scripts, stylesheets, generic
// links) and arrange them in nested [Group] trees. Groups own their members
// in insertion order; members keep a non-owning back-reference to their
// parent that is used only for cascading attribute lookups. The declaration
// tree is consumed read-only by the resolve and render packages.
//
// Resource identifiers live in kind-scoped namespaces: a script and a
// stylesheet may share a uid, and dependencies can only reference resources
// of the same kind.
package resource
