package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/assetgraph/pkg/resolve"
	"github.com/matzehuels/assetgraph/pkg/resource"
)

// ToDOT converts a candidate list to Graphviz DOT format, one node per
// candidate and one edge per declared dependency. The resulting DOT string
// can be rendered with [RenderSVG]. Styles and generic links are drawn
// with a distinct fill so mixed graphs stay readable.
func ToDOT(candidates []*resolve.Candidate) string {
	var buf bytes.Buffer
	buf.WriteString("digraph assets {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=16, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, c := range candidates {
		attrs := []string{fmt.Sprintf("label=%q", dotLabel(c))}
		if c.Kind() != resource.KindScript {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", dotID(c.Resource), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range candidates {
		for _, dep := range c.Resource.Depends {
			fmt.Fprintf(&buf, "  \"%s/%s\" -> %q;\n", c.Kind(), dep, dotID(c.Resource))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotID(r *resource.Resource) string {
	return fmt.Sprintf("%s/%s", r.Kind, r.UID)
}

func dotLabel(c *resolve.Candidate) string {
	label := c.UID()
	if p := c.Path; p != "" {
		label += "\n" + p
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
