package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/layoutc/pkg/core/tree"
)

// ToDOT converts a content tree to Graphviz DOT. Renderable elements are
// filled with their background color; structural elements are dashed.
func ToDOT(root tree.Content) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	ids := make(map[tree.Content]int)
	for c := range tree.Walk(root) {
		id := len(ids)
		ids[c] = id
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, nodeAttrs(c))
	}

	buf.WriteString("\n")
	for c := range tree.Walk(root) {
		for _, child := range c.Children() {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", ids[c], ids[child])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(c tree.Content) string {
	label := fmt.Sprintf("label=%q", tree.Describe(c))
	if v, ok := c.(*tree.View); ok {
		return fmt.Sprintf("%s, fillcolor=%q", label, v.Background.Hex())
	}
	return label + ", style=\"rounded,dashed\""
}

// RenderSVG renders DOT source to SVG with the embedded Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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

// RenderTreeSVG draws the content tree rooted at root as SVG.
func RenderTreeSVG(root tree.Content) ([]byte, error) {
	return RenderSVG(ToDOT(root))
}
