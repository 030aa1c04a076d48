package render

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	errs "github.com/matzehuels/assetgraph/pkg/errors"
	"github.com/matzehuels/assetgraph/pkg/integrity"
	"github.com/matzehuels/assetgraph/pkg/resolve"
)

// fileName returns the file served for the candidate: the compressed
// variant outside development mode, the plain source file otherwise.
func (r *Renderer) fileName(c *resolve.Candidate) string {
	res := c.Resource
	if !r.opts.Development && res.Compressed != "" {
		return res.Compressed
	}
	return res.File
}

// filePath returns the absolute location of the served file, built from
// the candidate's effective directory.
func (r *Renderer) filePath(c *resolve.Candidate) (string, error) {
	if c.Directory == "" {
		return "", errs.New(errs.ErrCodeRenderFailure,
			"no directory set on %s resource %q", c.Kind(), c.UID())
	}
	return filepath.Join(c.Directory, r.fileName(c)), nil
}

// fileDigest returns the digest of the served file content.
func (r *Renderer) fileDigest(c *resolve.Candidate) (string, error) {
	path, err := r.filePath(c)
	if err != nil {
		return "", err
	}
	digest, err := r.hasher.FileDigest(c.Resource.Algorithm, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errs.Wrap(errs.ErrCodeFileNotFound, err,
				"%s resource %q", c.Kind(), c.UID())
		}
		return "", errs.Wrap(errs.ErrCodeRenderFailure, err,
			"%s resource %q", c.Kind(), c.UID())
	}
	return digest, nil
}

// resourceURL builds the delivery URL for the candidate. An explicit URL on
// the resource wins outright; otherwise the URL is assembled from the base
// URL, the effective path, an optional cache-busting unique key and the
// served file name.
func (r *Renderer) resourceURL(c *resolve.Candidate) (string, error) {
	res := c.Resource
	if res.URL != "" {
		return res.URL, nil
	}

	parts := []string{strings.Trim(r.opts.BaseURL, "/")}
	if p := c.Path; p != "" {
		parts = append(parts, strings.Trim(p, "/"))
	}
	if res.Unique {
		digest, err := r.fileDigest(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, integrity.UniqueKey(res.UniquePrefix, digest))
	}
	parts = append(parts, r.fileName(c))
	return strings.Join(parts, "/"), nil
}

// integrityValue returns the subresource integrity attribute value, or ""
// when the resource requests none. Precomputed values render verbatim;
// computed ones derive from the served file's digest.
func (r *Renderer) integrityValue(c *resolve.Candidate) (string, error) {
	res := c.Resource
	if res.Integrity != "" {
		return res.Integrity, nil
	}
	if !res.ComputeIntegrity {
		return "", nil
	}
	digest, err := r.fileDigest(c)
	if err != nil {
		return "", err
	}
	return string(res.Algorithm) + "-" + digest, nil
}
