// Package render turns a resolved, ordered candidate list into markup
// tags.
//
// The [Renderer] offers two failure policies over the same input contract.
// Render is strict: the first per-resource failure fails the whole call
// with no partial output. RenderGraceful contains failures per resource: it
// emits an HTML comment placeholder for the failing item, logs the cause,
// and always returns exactly one output line per input candidate, in
// resolved order.
//
// Tag shape, attribute ordering and URL building live here; dependency
// ordering does not. Development mode and the base URL are explicit
// [Options] threaded into the renderer, never process-wide state.
package render
