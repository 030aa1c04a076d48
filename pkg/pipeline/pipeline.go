// Package pipeline provides the resolve → render pipeline for assetgraph.
//
// This package implements the complete manifest load, dependency resolution
// and tag rendering flow shared by the CLI commands. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Resolve: Load the manifest, apply include and skip flags, and compute
//     the dependency-ordered candidate list
//  2. Render: Emit one script or link tag per resolved candidate
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ManifestPath: "assets.toml",
//	    Graceful:     true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(strings.Join(result.Tags, "\n"))
package pipeline

import (
	"time"

	"github.com/matzehuels/assetgraph/pkg/manifest"
	"github.com/matzehuels/assetgraph/pkg/resolve"
)

// Options controls a pipeline run.
type Options struct {
	// ManifestPath is the TOML manifest to load.
	ManifestPath string

	// BaseURL overrides the manifest's base-url when non-empty.
	BaseURL string

	// Development serves plain source files and disables digest caching.
	Development bool

	// Graceful substitutes comment placeholders for resources that fail to
	// render instead of failing the run.
	Graceful bool
}

// Stats captures timing and size information for a pipeline run.
type Stats struct {
	ResolveTime   time.Duration
	RenderTime    time.Duration
	ResourceCount int
}

// Result holds the output of a pipeline run.
type Result struct {
	// Tree is the loaded manifest.
	Tree *manifest.Tree

	// Order is the dependency-ordered candidate list.
	Order []*resolve.Candidate

	// Tags holds one markup tag per candidate, in order. With Graceful set,
	// failed resources appear as HTML comment placeholders.
	Tags []string

	Stats Stats
}
