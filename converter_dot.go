package roadnet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"
)

var dotShapeByKind = map[SegmentKind]string{
	SEGMENT_STRAIGHT: "box",
	SEGMENT_CURVE:    "ellipse",
	SEGMENT_CROSSING: "diamond",
	SEGMENT_END_CAP:  "point",
}

// NetworksToDOT returns Graphviz representation of segment links. Each network is a cluster
func NetworksToDOT(networks []*Network) string {
	var buf bytes.Buffer
	buf.WriteString("graph roadnet {\n")
	buf.WriteString("  node [fontsize=10];\n")
	for i, net := range networks {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", net.Template.Name)
		for _, seg := range net.Segments() {
			fmt.Fprintf(&buf, "    s%d [label=%q, shape=%s];\n", seg.ID, fmt.Sprintf("%s %d", seg.Kind, seg.ID), dotShapeByKind[seg.Kind])
		}
		buf.WriteString("  }\n")
	}
	// Links are stored on both sides, draw every pair once
	for _, net := range networks {
		for _, seg := range net.Segments() {
			for _, ep := range seg.EndPoints {
				if !ep.IsConnected() {
					continue
				}
				if ep.To < seg.ID && net.Lookup(ep.To).linksTo(seg.ID) {
					continue
				}
				fmt.Fprintf(&buf, "  s%d -- s%d;\n", seg.ID, ep.To)
			}
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTToSVG renders DOT graph to SVG using Graphviz
func RenderDOTToSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Can't init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "Can't render SVG")
	}
	return buf.Bytes(), nil
}
