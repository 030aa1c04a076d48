// Package io provides JSON export and import for resolved asset graphs.
//
// The export format is a plain node/edge listing meant for external tools:
// build systems that want the inclusion order without rendering tags,
// dashboards that visualize the dependency graph, or diffing between
// manifest revisions.
//
//	{
//	  "nodes": [
//	    {"id": "script/jquery", "kind": "script", "uid": "jquery", "location": "js/jquery.min.js"},
//	    {"id": "script/app", "kind": "script", "uid": "app", "depends": ["jquery"], "location": "js/app.min.js"}
//	  ],
//	  "edges": [
//	    {"from": "script/jquery", "to": "script/app"}
//	  ]
//	}
//
// Nodes appear in inclusion order and edges point dependency → dependent,
// so consumers can replay the order without re-running the resolver.
package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/assetgraph/pkg/resolve"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID       string   `json:"id"`
	Kind     string   `json:"kind"`
	UID      string   `json:"uid"`
	Depends  []string `json:"depends,omitempty"`
	Location string   `json:"location,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes the resolved candidate list as JSON and writes it to w.
// Candidates must already be in inclusion order; the output preserves it.
func WriteJSON(order []*resolve.Candidate, w io.Writer) error {
	out := graph{
		Nodes: make([]node, len(order)),
		Edges: []edge{},
	}

	for i, c := range order {
		id := c.Kind().String() + "/" + c.UID()
		out.Nodes[i] = node{
			ID:       id,
			Kind:     c.Kind().String(),
			UID:      c.UID(),
			Depends:  c.Resource.Depends,
			Location: location(c),
		}
		for _, dep := range c.Resource.Depends {
			out.Edges = append(out.Edges, edge{
				From: c.Kind().String() + "/" + dep,
				To:   id,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the resolved candidate list to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(order []*resolve.Candidate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(order, f)
}

// location returns the candidate's externally visible location: the
// explicit URL when set, otherwise the effective path joined with the
// source file name.
func location(c *resolve.Candidate) string {
	if c.Resource.URL != "" {
		return c.Resource.URL
	}
	loc := c.Resource.File
	if p := c.Path; p != "" && loc != "" {
		loc = p + "/" + loc
	}
	return loc
}
