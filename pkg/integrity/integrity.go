// Package integrity computes content digests for declared assets.
//
// Digests feed two markup features: subresource integrity attributes
// (<alg>-<base64 digest>) and cache-busting unique URL keys (a version 5
// UUID derived from the digest). File digests are memoized per file outside
// development mode, matching the expectation that deployed assets do not
// change while the process runs.
package integrity

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/assetgraph/pkg/cache"
)

// Algorithm names a supported digest algorithm.
type Algorithm string

// Supported algorithms. SHA384 is the default used by the resource model.
const (
	SHA256 Algorithm = "sha256"
	SHA384 Algorithm = "sha384"
	SHA512 Algorithm = "sha512"
)

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case SHA256, SHA384, SHA512:
		return true
	}
	return false
}

// Digest returns the base64 encoded digest of data.
func Digest(alg Algorithm, data []byte) (string, error) {
	var sum []byte
	switch alg {
	case SHA256:
		s := sha256.Sum256(data)
		sum = s[:]
	case SHA384:
		s := sha512.Sum384(data)
		sum = s[:]
	case SHA512:
		s := sha512.Sum512(data)
		sum = s[:]
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", alg)
	}
	return base64.StdEncoding.EncodeToString(sum), nil
}

// Hasher computes and memoizes file digests.
// In development mode every call re-reads the file so edits show up
// immediately; otherwise the first digest per (algorithm, path) pair is
// cached for the lifetime of the Hasher. Safe for concurrent use.
type Hasher struct {
	// Development disables memoization.
	Development bool

	mu      sync.Mutex
	memo    map[string]string
	persist cache.Cache
}

// NewHasher creates a Hasher.
func NewHasher(development bool) *Hasher {
	return NewHasherWithCache(development, nil)
}

// NewHasherWithCache creates a Hasher backed by a persistent cache in
// addition to the in-process memo. The cache key covers the file's size and
// modification time, so edits invalidate stored digests even across
// processes. A nil cache gives plain in-process memoization.
func NewHasherWithCache(development bool, persist cache.Cache) *Hasher {
	return &Hasher{
		Development: development,
		memo:        make(map[string]string),
		persist:     persist,
	}
}

// FileDigest returns the base64 encoded digest of the file at path.
func (h *Hasher) FileDigest(alg Algorithm, path string) (string, error) {
	key := string(alg) + ":" + path
	if !h.Development {
		h.mu.Lock()
		cached, ok := h.memo[key]
		h.mu.Unlock()
		if ok {
			return cached, nil
		}
	}

	var persistKey string
	if h.persist != nil && !h.Development {
		info, err := os.Stat(path)
		if err != nil {
			return "", err
		}
		persistKey = cache.DigestKey(string(alg), path, info)
		if data, ok, err := h.persist.Get(context.Background(), persistKey); err == nil && ok {
			digest := string(data)
			h.mu.Lock()
			h.memo[key] = digest
			h.mu.Unlock()
			return digest, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	digest, err := Digest(alg, data)
	if err != nil {
		return "", err
	}
	if !h.Development {
		h.mu.Lock()
		h.memo[key] = digest
		h.mu.Unlock()
		if persistKey != "" {
			// Best effort, digests can always be recomputed.
			_ = h.persist.Set(context.Background(), persistKey, []byte(digest), 0)
		}
	}
	return digest, nil
}

// namespace is the fixed UUID namespace for unique key derivation.
// Changing it would invalidate every cache-busting URL ever emitted.
var namespace = uuid.MustParse("f3341b2e-f97e-40d2-ad2f-10a08a778877")

// UniqueKey derives a cache-busting URL segment from a file digest.
// The segment is prefix + a name-based (version 5) UUID of the digest, so
// identical content always maps to the identical URL.
func UniqueKey(prefix, digest string) string {
	return prefix + uuid.NewSHA1(namespace, []byte(digest)).String()
}
