package resolve

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/assetgraph/pkg/resource"
)

func candidates(resources ...*resource.Resource) []*Candidate {
	out := make([]*Candidate, len(resources))
	for i, r := range resources {
		out[i] = &Candidate{Resource: r}
	}
	return out
}

func TestResolveOrdersDependenciesFirst(t *testing.T) {
	app := script("app", "app.js")
	app.Depends = []string{"jquery"}
	jquery := script("jquery", "jquery.js")

	got, err := Resolve(candidates(app, jquery))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"jquery", "app"}
	if !slices.Equal(uids(got), want) {
		t.Errorf("Resolve order = %v, want %v", uids(got), want)
	}
}

func TestResolvePreservesCandidateOrderWithoutEdges(t *testing.T) {
	a := script("a", "a.js")
	b := script("b", "b.js")
	c := script("c", "c.js")

	got, err := Resolve(candidates(c, a, b))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []string{"c", "a", "b"}
	if !slices.Equal(uids(got), want) {
		t.Errorf("Resolve order = %v, want %v", uids(got), want)
	}
}

func TestResolveDeterministic(t *testing.T) {
	build := func() []*Candidate {
		app := script("app", "app.js")
		app.Depends = []string{"base", "widgets"}
		widgets := script("widgets", "widgets.js")
		widgets.Depends = []string{"base"}
		base := script("base", "base.js")
		extra := script("extra", "extra.js")
		return candidates(app, widgets, base, extra)
	}

	first, err := Resolve(build())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Resolve(build())
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if !slices.Equal(uids(first), uids(again)) {
			t.Fatalf("run %d order %v differs from %v", i, uids(again), uids(first))
		}
	}
}

func TestResolveConflict(t *testing.T) {
	first := script("app", "one.js")
	second := script("app", "two.js")

	_, err := Resolve(candidates(first, second))
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Resolve = %v, want *ConflictError", err)
	}
	if conflict.UID != "app" {
		t.Errorf("conflict UID = %q, want %q", conflict.UID, "app")
	}
	if conflict.First != first || conflict.Second != second {
		t.Error("conflict should reference both declarations")
	}
}

func TestResolveMissingDependency(t *testing.T) {
	app := script("app", "app.js")
	app.Depends = []string{"ghost"}

	_, err := Resolve(candidates(app))
	var missing *MissingDependencyError
	if !errors.As(err, &missing) {
		t.Fatalf("Resolve = %v, want *MissingDependencyError", err)
	}
	if missing.UID != "app" || missing.Dependency != "ghost" {
		t.Errorf("missing = %+v, want app/ghost", missing)
	}
}

func TestResolveSkippedDependencyIsMissing(t *testing.T) {
	root := resource.NewGroup("root")
	dep := script("dep", "dep.js")
	dep.Include = resource.Bool(false)
	app := script("app", "app.js")
	app.Depends = []string{"dep"}
	mustAdd(t, root, dep)
	mustAdd(t, root, app)

	_, err := ResolveRoots(root)
	var missing *MissingDependencyError
	if !errors.As(err, &missing) {
		t.Fatalf("ResolveRoots = %v, want *MissingDependencyError", err)
	}
}

func TestResolveCycle(t *testing.T) {
	a := script("a", "a.js")
	a.Depends = []string{"b"}
	b := script("b", "b.js")
	b.Depends = []string{"a"}

	_, err := Resolve(candidates(a, b))
	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("Resolve = %v, want *CycleError", err)
	}
	if len(cycle.UIDs) != 2 {
		t.Errorf("cycle UIDs = %v, want both members", cycle.UIDs)
	}
}

func TestResolveKindNamespaces(t *testing.T) {
	// A script and a style may share a uid without conflict.
	js := script("main", "main.js")
	css := resource.NewStyle("main")
	css.File = "main.css"

	got, err := Resolve(candidates(js, css))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Resolve returned %d candidates, want 2", len(got))
	}

	// Dependencies never cross kinds: a script cannot depend on a style.
	app := script("app", "app.js")
	app.Depends = []string{"theme"}
	theme := resource.NewStyle("theme")
	theme.File = "theme.css"

	_, err = Resolve(candidates(app, theme))
	var missing *MissingDependencyError
	if !errors.As(err, &missing) {
		t.Errorf("cross-kind dependency = %v, want *MissingDependencyError", err)
	}
}

func TestResolveInvalidResource(t *testing.T) {
	bare := resource.NewScript("bare") // no file, no url

	_, err := Resolve(candidates(bare))
	if !errors.Is(err, resource.ErrNoLocation) {
		t.Errorf("Resolve = %v, want ErrNoLocation", err)
	}
}

func TestResolveAllOrNothing(t *testing.T) {
	ok := script("ok", "ok.js")
	bad := script("bad", "bad.js")
	bad.Depends = []string{"ghost"}

	got, err := Resolve(candidates(ok, bad))
	if err == nil {
		t.Fatal("Resolve should fail")
	}
	if got != nil {
		t.Errorf("Resolve returned partial order %v on failure", uids(got))
	}
}
