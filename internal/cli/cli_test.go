package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{"resolve", "render", "graph", "inspect", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("root command missing %q (have %v)", want, names)
		}
	}
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Error("debug output should be filtered at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug output should appear after SetLogLevel")
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestCacheDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join(home, ".cache", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}

func TestResolveCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	manifest := `
[[script]]
uid = "jquery"
file = "jquery.js"

[[script]]
uid = "app"
file = "app.js"
depends = ["jquery"]
`
	path := filepath.Join(dir, "assets.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"resolve", path})
	root.SetOut(&buf)
	root.SetErr(&buf)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
}

func TestRenderCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	manifest := `
base-url = "https://tld"

[[script]]
uid = "app"
file = "app.js"
directory = "` + dir + `"
`
	path := filepath.Join(dir, "assets.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "tags.html")

	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", path, "-o", out, "--no-cache"})
	root.SetOut(&buf)
	root.SetErr(&buf)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "<script src=\"https://tld/app.js\"></script>\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}
}
