package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/assetgraph/pkg/dag"
)

// ReadJSON decodes an exported asset graph from r into a dependency graph.
//
// The input must be a JSON object with "nodes" and "edges" arrays as
// produced by [WriteJSON]. Node order becomes graph insertion order, so a
// topological sort of the returned graph reproduces the exported inclusion
// order. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*dag.Graph, error) {
	var data graph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := dag.New()
	for _, n := range data.Nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ImportJSON reads an exported asset graph from a JSON file at path.
func ImportJSON(path string) (*dag.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
