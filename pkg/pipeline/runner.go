package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assetgraph/pkg/cache"
	"github.com/matzehuels/assetgraph/pkg/manifest"
	"github.com/matzehuels/assetgraph/pkg/observability"
	"github.com/matzehuels/assetgraph/pkg/render"
	"github.com/matzehuels/assetgraph/pkg/resolve"
)

// Runner encapsulates pipeline execution with digest caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (digest caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete resolve → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{}

	resolveStart := time.Now()
	tree, order, err := r.Resolve(ctx, opts.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Tree = tree
	result.Order = order
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.ResourceCount = len(order)

	r.Logger.Info("resolved manifest",
		"resources", len(order),
		"duration", result.Stats.ResolveTime)

	renderStart := time.Now()
	tags, err := r.Render(ctx, tree, order, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Tags = tags
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered tags",
		"tags", len(tags),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Resolve loads a manifest and computes its inclusion order.
func (r *Runner) Resolve(ctx context.Context, manifestPath string) (*manifest.Tree, []*resolve.Candidate, error) {
	start := time.Now()
	observability.Pipeline().OnResolveStart(ctx, manifestPath)

	tree, err := manifest.Load(manifestPath)
	if err != nil {
		observability.Pipeline().OnResolveComplete(ctx, manifestPath, 0, time.Since(start), err)
		return nil, nil, err
	}
	order, err := resolve.ResolveRoots(tree.Roots...)
	observability.Pipeline().OnResolveComplete(ctx, manifestPath, len(order), time.Since(start), err)
	if err != nil {
		return nil, nil, err
	}
	return tree, order, nil
}

// Render emits one markup tag per candidate. The manifest's base-url is used
// unless opts.BaseURL overrides it. Digest caching is bypassed in
// development mode so file edits show up immediately.
func (r *Runner) Render(ctx context.Context, tree *manifest.Tree, order []*resolve.Candidate, opts Options) ([]string, error) {
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, len(order))

	baseURL := opts.BaseURL
	if baseURL == "" && tree != nil {
		baseURL = tree.BaseURL
	}

	digestCache := r.Cache
	if opts.Development {
		digestCache = cache.NewNullCache()
	}

	renderer := render.New(render.Options{
		BaseURL:     baseURL,
		Development: opts.Development,
		Logger:      r.Logger,
		DigestCache: digestCache,
	})

	var (
		tags []string
		err  error
	)
	if opts.Graceful {
		tags = renderer.RenderGraceful(order)
	} else {
		tags, err = renderer.Render(order)
	}
	observability.Pipeline().OnRenderComplete(ctx, len(tags), time.Since(start), err)
	return tags, err
}
