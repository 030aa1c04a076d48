package integrity

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/assetgraph/pkg/cache"
)

func TestAlgorithmValid(t *testing.T) {
	for _, alg := range []Algorithm{SHA256, SHA384, SHA512} {
		if !alg.Valid() {
			t.Errorf("%s should be valid", alg)
		}
	}
	if Algorithm("md5").Valid() {
		t.Error("md5 should not be valid")
	}
	if Algorithm("").Valid() {
		t.Error("empty algorithm should not be valid")
	}
}

func TestDigestKnownValues(t *testing.T) {
	// Digest of the empty input, standard base64.
	got, err := Digest(SHA256, nil)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}
	want := "47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="
	if got != want {
		t.Errorf("Digest(sha256, empty) = %q, want %q", got, want)
	}
}

func TestDigestUnsupportedAlgorithm(t *testing.T) {
	if _, err := Digest(Algorithm("crc32"), []byte("x")); err == nil {
		t.Error("Digest should reject unsupported algorithms")
	}
}

func TestFileDigestMemoizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	if err := os.WriteFile(path, []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewHasher(false)
	first, err := h.FileDigest(SHA384, path)
	if err != nil {
		t.Fatalf("FileDigest: %v", err)
	}

	// Rewrite the file; the memoized digest must survive.
	if err := os.WriteFile(path, []byte("console.log(2)"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := h.FileDigest(SHA384, path)
	if err != nil {
		t.Fatalf("FileDigest: %v", err)
	}
	if first != second {
		t.Error("digest should be memoized outside development mode")
	}
}

func TestFileDigestDevelopmentRereads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := NewHasher(true)
	first, err := h.FileDigest(SHA256, path)
	if err != nil {
		t.Fatalf("FileDigest: %v", err)
	}
	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	second, err := h.FileDigest(SHA256, path)
	if err != nil {
		t.Fatalf("FileDigest: %v", err)
	}
	if first == second {
		t.Error("development mode should re-read the file on every call")
	}
}

func TestFileDigestMissingFile(t *testing.T) {
	h := NewHasher(false)
	if _, err := h.FileDigest(SHA256, filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Error("FileDigest should fail for a missing file")
	}
}

func TestUniqueKeyDeterministic(t *testing.T) {
	digest, err := Digest(SHA384, []byte("content"))
	if err != nil {
		t.Fatal(err)
	}

	k1 := UniqueKey("++unique++", digest)
	k2 := UniqueKey("++unique++", digest)
	if k1 != k2 {
		t.Error("identical digests must yield identical keys")
	}
	if !strings.HasPrefix(k1, "++unique++") {
		t.Errorf("key %q should carry the prefix", k1)
	}
	// prefix + 36-char UUID
	if len(k1) != len("++unique++")+36 {
		t.Errorf("key %q has unexpected length %d", k1, len(k1))
	}

	other, err := Digest(SHA384, []byte("different"))
	if err != nil {
		t.Fatal(err)
	}
	if UniqueKey("++unique++", other) == k1 {
		t.Error("different digests must yield different keys")
	}
}

func TestFileDigestPersistentCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	if err := os.WriteFile(path, []byte("cached content"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := cache.NewFileCache(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	h1 := NewHasherWithCache(false, c)
	first, err := h1.FileDigest(SHA384, path)
	if err != nil {
		t.Fatalf("FileDigest: %v", err)
	}

	// A fresh hasher sharing the cache must agree without touching memo state.
	h2 := NewHasherWithCache(false, c)
	second, err := h2.FileDigest(SHA384, path)
	if err != nil {
		t.Fatalf("FileDigest: %v", err)
	}
	if first != second {
		t.Errorf("cached digest %q != %q", second, first)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(context.Background(), cache.DigestKey(string(SHA384), path, info)); err != nil || !ok {
		t.Errorf("digest should be stored in the persistent cache (ok=%v, err=%v)", ok, err)
	}
}
