package evolution

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures evolution tree rendering.
type DOTOptions struct {
	// Detailed includes the trigger and species ID in node labels.
	// When false, only the species name is shown.
	Detailed bool
}

// ToDOT converts an evolution tree to Graphviz DOT format.
// Edge labels carry the child's evolution condition. Parallel branches are
// grouped on one rank. A nil tree yields an empty graph.
func ToDOT(root *Node, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph evolution {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	var edges []string
	root.Walk(func(n *Node, _ int) bool {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
		for _, c := range n.Children {
			edge := fmt.Sprintf("  %q -> %q", n.Name, c.Name)
			if c.Details != "" {
				edge += fmt.Sprintf(" [label=%q]", c.Details)
			}
			edges = append(edges, edge+";")
		}
		if n.IsParallel {
			names := make([]string, len(n.Children))
			for i, c := range n.Children {
				names[i] = strconv.Quote(c.Name)
			}
			edges = append(edges, fmt.Sprintf("  { rank=same; %s; }", strings.Join(names, "; ")))
		}
		return true
	})

	if len(edges) > 0 {
		buf.WriteString("\n")
		buf.WriteString(strings.Join(edges, "\n"))
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *Node, detailed bool) []string {
	label := n.Name
	if detailed {
		parts := []string{n.Name, fmt.Sprintf("#%d", n.ID)}
		if n.Trigger != "" {
			parts = append(parts, "trigger: "+n.Trigger)
		}
		label = strings.Join(parts, "\n")
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if len(n.Children) == 0 {
		attrs = append(attrs, "fillcolor=\"#e8f4ea\"")
	}
	return attrs
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
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing scales from its
// own viewBox instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
