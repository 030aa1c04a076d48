// Package cache provides small byte-level caches used to persist file
// digests across CLI invocations.
//
// Computing a subresource integrity digest or a cache-busting unique key
// means hashing the asset file on disk. Within one process the
// integrity.Hasher memoizes those digests; this package adds the
// cross-process layer, keyed on the file's identity (path, size, mtime) so
// a changed file never serves a stale digest.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"time"
)

// Cache stores opaque byte values under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// DigestKey builds the cache key for a file digest. The key covers the
// algorithm and the file's path, size and modification time, so any change
// to the file invalidates the cached digest.
func DigestKey(algorithm, path string, info fs.FileInfo) string {
	return hashKey("digest", algorithm, path, info.Size(), info.ModTime().UnixNano())
}

// hashKey generates a cache key of the form prefix:hash(parts...).
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%v\x00", p)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
