package io

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/assetgraph/pkg/resolve"
	"github.com/matzehuels/assetgraph/pkg/resource"
)

func testOrder(t *testing.T) []*resolve.Candidate {
	t.Helper()

	jquery := resource.NewScript("jquery")
	jquery.File = "jquery.min.js"
	app := resource.NewScript("app")
	app.File = "app.js"
	app.Depends = []string{"jquery"}
	style := resource.NewStyle("main")
	style.URL = "https://cdn.example.com/main.css"

	group := resource.NewGroup("core")
	group.Path = "js"
	for _, r := range []*resource.Resource{jquery, app} {
		if err := group.Add(r); err != nil {
			t.Fatal(err)
		}
	}

	order, err := resolve.ResolveRoots(group, style)
	if err != nil {
		t.Fatalf("ResolveRoots: %v", err)
	}
	return order
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(testOrder(t), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got struct {
		Nodes []struct {
			ID       string   `json:"id"`
			Kind     string   `json:"kind"`
			UID      string   `json:"uid"`
			Depends  []string `json:"depends"`
			Location string   `json:"location"`
		} `json:"nodes"`
		Edges []struct {
			From string `json:"from"`
			To   string `json:"to"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}

	ids := make([]string, len(got.Nodes))
	for i, n := range got.Nodes {
		ids[i] = n.ID
	}
	want := []string{"script/jquery", "script/app", "style/main"}
	if !slices.Equal(ids, want) {
		t.Errorf("node order = %v, want %v", ids, want)
	}

	if got.Nodes[0].Location != "js/jquery.min.js" {
		t.Errorf("jquery location = %q, want js/jquery.min.js", got.Nodes[0].Location)
	}
	if got.Nodes[2].Location != "https://cdn.example.com/main.css" {
		t.Errorf("style location = %q, want the explicit URL", got.Nodes[2].Location)
	}

	if len(got.Edges) != 1 || got.Edges[0].From != "script/jquery" || got.Edges[0].To != "script/app" {
		t.Errorf("edges = %v, want jquery -> app", got.Edges)
	}
}

func TestRoundTrip(t *testing.T) {
	order := testOrder(t)
	path := filepath.Join(t.TempDir(), "graph.json")
	if err := ExportJSON(order, path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	g, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}

	// Node insertion order preserves the exported inclusion order.
	sorted, err := g.TopoSort()
	if err != nil {
		t.Fatalf("TopoSort: %v", err)
	}
	want := []string{"script/jquery", "script/app", "style/main"}
	if !slices.Equal(sorted, want) {
		t.Errorf("round-trip order = %v, want %v", sorted, want)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", `{`},
		{"duplicate node", `{"nodes":[{"id":"a"},{"id":"a"}],"edges":[]}`},
		{"edge to unknown node", `{"nodes":[{"id":"a"}],"edges":[{"from":"a","to":"ghost"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.src)); err == nil {
				t.Error("ReadJSON should fail")
			}
		})
	}
}
