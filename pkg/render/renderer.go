package render

import (
	"fmt"
	"maps"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/assetgraph/pkg/cache"
	"github.com/matzehuels/assetgraph/pkg/integrity"
	"github.com/matzehuels/assetgraph/pkg/resolve"
	"github.com/matzehuels/assetgraph/pkg/resource"
)

// Options configures a Renderer.
type Options struct {
	// BaseURL prefixes every generated resource URL.
	BaseURL string

	// Development serves plain source files instead of compressed variants
	// and disables digest memoization, so edits show up without restart.
	Development bool

	// Logger receives per-resource failures from RenderGraceful.
	// Nil means log.Default().
	Logger *log.Logger

	// DigestCache optionally persists file digests across processes.
	// Ignored in development mode.
	DigestCache cache.Cache
}

// Renderer maps resolved candidates to markup tags.
// Create with New; the zero value is not usable.
type Renderer struct {
	opts   Options
	hasher *integrity.Hasher
	logger *log.Logger
}

// New creates a Renderer. The renderer owns a digest memo cache scoped to
// its lifetime, so long-lived renderers amortize file hashing across calls.
func New(opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{
		opts:   opts,
		hasher: integrity.NewHasherWithCache(opts.Development, opts.DigestCache),
		logger: logger,
	}
}

// Render computes one markup tag per candidate, in order. It is strict:
// the first per-resource failure fails the whole call and no partial
// output is returned.
func (r *Renderer) Render(candidates []*resolve.Candidate) ([]string, error) {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		tag, err := r.Tag(c)
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}
	return out, nil
}

// RenderGraceful computes one markup tag per candidate, substituting an
// HTML comment placeholder for any candidate that fails and logging the
// cause. The result always covers every candidate, 1:1 and in input order.
func (r *Renderer) RenderGraceful(candidates []*resolve.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		tag, err := r.Tag(c)
		if err != nil {
			msg := fmt.Sprintf("Failure to render resource %q", c.UID())
			r.logger.Error(msg, "kind", c.Kind().String(), "err", err)
			tag = fmt.Sprintf("<!-- %s - details in logs -->", msg)
		}
		out = append(out, tag)
	}
	return out
}

// Tags renders strictly and joins the tags with newlines, ready for
// inclusion in a document head.
func (r *Renderer) Tags(candidates []*resolve.Candidate) (string, error) {
	tags, err := r.Render(candidates)
	if err != nil {
		return "", err
	}
	return strings.Join(tags, "\n"), nil
}

// Tag computes the markup tag for a single candidate.
func (r *Renderer) Tag(c *resolve.Candidate) (string, error) {
	url, err := r.resourceURL(c)
	if err != nil {
		return "", err
	}

	switch c.Kind() {
	case resource.KindScript:
		return r.scriptTag(c, url)
	default:
		return r.linkTag(c, url), nil
	}
}

func (r *Renderer) scriptTag(c *resolve.Candidate, url string) (string, error) {
	res := c.Resource
	sri, err := r.integrityValue(c)
	if err != nil {
		return "", err
	}
	attrs := map[string]string{
		"src":            url,
		"crossorigin":    res.Crossorigin,
		"referrerpolicy": res.Referrerpolicy,
		"type":           res.Type,
		"async":          res.Async,
		"defer":          res.Defer,
		"integrity":      sri,
		"nomodule":       res.Nomodule,
	}
	maps.Copy(attrs, res.Extra)
	return renderTag("script", true, attrs), nil
}

func (r *Renderer) linkTag(c *resolve.Candidate, url string) string {
	res := c.Resource
	attrs := map[string]string{
		"href":           url,
		"crossorigin":    res.Crossorigin,
		"referrerpolicy": res.Referrerpolicy,
		"type":           res.Type,
		"hreflang":       res.Hreflang,
		"media":          res.Media,
		"rel":            res.Rel,
		"sizes":          res.Sizes,
		"title":          res.Title,
	}
	maps.Copy(attrs, res.Extra)
	return renderTag("link", false, attrs)
}
