// Package pkg provides the core libraries for assetgraph.
//
// # Overview
//
// Assetgraph turns declarative web asset registries into deterministic,
// dependency-ordered HTML markup. Applications (or the CLI) declare script,
// style and link resources, group them into nested trees, and let the
// resolver compute an inclusion order where every dependency precedes its
// dependents.
//
// # Architecture
//
// The typical data flow:
//
//	TOML manifest / programmatic declarations
//	         ↓
//	    [resource] package (entity model: resources, groups, flags)
//	         ↓
//	    [resolve] package (collection + conflict checks + ordering)
//	         ↓
//	    [render] package (URLs, integrity, script and link tags)
//	         ↓
//	    HTML tags / DOT / SVG / JSON output
//
// # Main Packages
//
// [resource] - The entity model. Resources carry delivery metadata (files,
// URLs, integrity settings, HTML attributes); groups nest resources and
// cascade directory and path settings onto their members. Include and skip
// flags are fixed booleans or predicates evaluated once per resolution pass.
//
// [resolve] - Tree collection and dependency resolution. Collect flattens a
// declaration tree into candidates, honoring skip and include flags;
// Resolve orders candidates with a stable topological sort and reports
// conflicts, missing dependencies and cycles as typed errors.
//
// [dag] - The directed graph underneath the resolver: insertion-ordered
// nodes, stable Kahn topological sort, and cycle extraction for error
// reporting.
//
// [render] - Markup generation. Builds delivery URLs (with optional
// cache-busting unique keys), computes subresource integrity attributes,
// and serializes script and link tags. Strict and graceful failure policies.
// Also exports dependency graphs as Graphviz DOT or SVG.
//
// [manifest] - TOML manifest loading into the entity model.
//
// [integrity] - Content digests (SHA-256/384/512), digest memoization, and
// UUID-based unique key derivation.
//
// # Infrastructure
//
// [cache] - File-backed and null caches used to persist file digests across
// CLI invocations.
//
// [pipeline] - The resolve → render pipeline shared by all CLI entry
// points.
//
// [io] - JSON export and import of resolved asset graphs for external
// tools.
//
// [observability] - Optional hooks for metrics and tracing around pipeline
// and cache operations.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Quick Start
//
// Declare resources, resolve, and render:
//
//	jquery := resource.NewScript("jquery")
//	jquery.File = "jquery.min.js"
//
//	app := resource.NewScript("app")
//	app.File = "app.js"
//	app.Depends = []string{"jquery"}
//
//	group := resource.NewGroup("core")
//	group.Directory = "/var/www/static"
//	group.Path = "js"
//	_ = group.Add(jquery)
//	_ = group.Add(app)
//
//	order, err := resolve.ResolveRoots(group)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := render.New(render.Options{BaseURL: "https://example.com"})
//	tags, err := r.Tags(order)
//
// [resource]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/resource
// [resolve]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/resolve
// [dag]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/dag
// [render]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/render
// [manifest]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/manifest
// [integrity]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/integrity
// [cache]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/assetgraph/pkg/buildinfo
package pkg
