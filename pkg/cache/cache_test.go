package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get should hit")
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get should miss for unknown keys")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := c.Set(ctx, "short", []byte("v"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "short"); ok {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); ok {
		t.Error("deleted entry should miss")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("deleting a missing key = %v, want nil", err)
	}
}

func TestFileCacheInvalidEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := c.Set(ctx, "key", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}

	// Corrupt the entry on disk.
	fc := c.(*FileCache)
	if err := os.WriteFile(fc.path("key"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get(ctx, "key"); err != nil || ok {
		t.Errorf("corrupt entry should be a clean miss (ok=%v, err=%v)", ok, err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "key", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "key"); err != nil || ok {
		t.Error("NullCache should never hit")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDigestKeyChangesWithFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.js")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	info1, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	k1 := DigestKey("sha384", path, info1)
	if k1 != DigestKey("sha384", path, info1) {
		t.Error("DigestKey should be deterministic")
	}
	if k1 == DigestKey("sha256", path, info1) {
		t.Error("DigestKey should differ per algorithm")
	}

	// Grow the file; the size change must change the key even if the
	// filesystem's mtime granularity hides the rewrite.
	if err := os.WriteFile(path, []byte("v2 longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	info2, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if k1 == DigestKey("sha384", path, info2) {
		t.Error("DigestKey should change when the file changes")
	}
}

func TestHash(t *testing.T) {
	got := Hash([]byte(""))
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != want {
		t.Errorf("Hash(empty) = %q, want %q", got, want)
	}
	if len(Hash([]byte("x"))) != 64 {
		t.Error("Hash should return 64 hex characters")
	}
}
