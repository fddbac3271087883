package roadnet

// newStraightSegment creates segment running along the edge, end-points are [at Start, at End]
func newStraightSegment(edge *Edge) *Segment {
	start := edge.Start.Position
	end := edge.End.Position
	return &Segment{
		Kind:     SEGMENT_STRAIGHT,
		Template: edge.Template,
		Edge:     edge,
		Start:    start,
		End:      end,
		EndPoints: []EndPoint{
			{Position: start, Direction: start.Sub(end).Normalized(), To: NoSegment},
			{Position: end, Direction: end.Sub(start).Normalized(), To: NoSegment},
		},
	}
}

// buildEdgeSegments creates one straight segment per edge and links end-points of edges
// sharing a node and a template.
func buildEdgeSegments(topology *Topology, set *segmentSet) map[*Edge]SegmentID {
	edgeSegments := make(map[*Edge]SegmentID, len(topology.Edges))
	for _, edge := range topology.Edges {
		edgeSegments[edge] = set.add(newStraightSegment(edge))
	}

	for _, edge := range topology.Edges {
		edgeSegmentID := edgeSegments[edge]
		connect := func(node *Node) {
			// Direction from the shared node toward the far end of this edge
			direction := edge.otherNode(node).Position.Sub(node.Position).Normalized()
			for _, connectedEdge := range node.Edges {
				if connectedEdge == edge || connectedEdge.Template != edge.Template {
					continue
				}
				connectedSegment := set.get(edgeSegments[connectedEdge])
				ep := connectedSegment.endPointAt(node)
				connectedSegment.EndPoints[ep].connectTo(edgeSegmentID, direction)
			}
		}
		connect(edge.Start)
		connect(edge.End)
	}
	return edgeSegments
}
