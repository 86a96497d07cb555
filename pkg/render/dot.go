package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/partbench/partbench/pkg/craft"
	"github.com/partbench/partbench/pkg/errors"
)

// Options configures part tree rendering.
type Options struct {
	// Detailed includes UIDs and symmetry markers in node labels.
	// When false, only the part name is shown.
	Detailed bool
}

// ToDOT converts a part tree to Graphviz DOT format. The resulting DOT
// string can be rendered with [RenderSVG] or [RenderPNG].
//
// Parent/child attachments become directed solid edges. Each symmetry pair
// becomes one dashed undirected edge (emitted once, from the lower UID), and
// symmetry-root parts are filled to distinguish them from other members.
func ToDOT(t *craft.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Craft {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range t.Parts() {
		label := fmtLabel(p, opts.Detailed)
		attrs := fmtAttrs(p, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(p.UID), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, p := range t.Parts() {
		for _, child := range p.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(p.UID), nodeID(child))
		}
	}

	buf.WriteString("\n")
	for _, p := range t.Parts() {
		for _, other := range p.Symmetry {
			if other < p.UID {
				continue // emitted from the lower UID
			}
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed, constraint=false];\n",
				nodeID(p.UID), nodeID(other))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(uid craft.UID) string { return fmt.Sprintf("p%d", uid) }

func fmtLabel(p *craft.Part, detailed bool) string {
	name := p.Name
	if name == "" {
		name = fmt.Sprintf("part %d", p.UID)
	}
	if !detailed {
		return name
	}

	parts := []string{fmt.Sprintf("uid: %d", p.UID)}
	if p.HasSymmetry() {
		parts = append(parts, fmt.Sprintf("symmetry: %d-way", len(p.Symmetry)+1))
		if p.IsSymmetryRoot() {
			parts = append(parts, "symmetry root")
		}
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p *craft.Part, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if p.HasSymmetry() && p.IsSymmetryRoot() {
		attrs = append(attrs, "fillcolor=lightblue")
	} else if p.HasSymmetry() {
		attrs = append(attrs, "fillcolor=azure")
	}
	return attrs
}

// Render renders a DOT graph in the named format ("svg", "png", or "dot",
// case-insensitive). The dot format returns the graph description verbatim
// without invoking Graphviz. Unknown formats yield an UNSUPPORTED error.
func Render(dot, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return RenderSVG(dot)
	case "png":
		return RenderPNG(dot)
	}
	return nil, errors.New(errors.ErrCodeUnsupported,
		"unsupported render format %q (want svg, png, or dot)", format)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
