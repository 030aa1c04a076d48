// Package resolve turns a declared resource tree into a deterministic,
// dependency-respecting delivery order.
//
// A resolution pass has two stages. [Collect] walks the root entities depth
// first in member insertion order and projects them into a flat candidate
// list, evaluating Skip/Include flags once per entity and computing the
// effective cascaded attributes. [Resolve] then orders the candidates with
// a stable topological sort: dependencies first, candidate order as the
// tie-break, so the same declaration set always yields the same order.
//
// Resolution is all-or-nothing. Duplicate uids within a kind, dependencies
// on uids that will not render, and dependency cycles each fail the whole
// pass with a typed error identifying the offending resources.
package resolve
