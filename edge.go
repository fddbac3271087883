package roadnet

// Edge is a road between two nodes. Immutable once added to a topology
type Edge struct {
	Start    *Node
	End      *Node
	Template *Template

	ID        int
	StartType RoadType
	EndType   RoadType
}

// typeAt returns connection flags declared for the end of the edge touching given node
func (edge *Edge) typeAt(node *Node) RoadType {
	if edge.Start == node {
		return edge.StartType
	}
	return edge.EndType
}

// otherNode returns the far end of the edge as seen from given node
func (edge *Edge) otherNode(node *Node) *Node {
	if edge.Start == node {
		return edge.End
	}
	return edge.Start
}

// isIsolated reports whether neither end of the edge branches into any other road
func (edge *Edge) isIsolated() bool {
	return len(edge.Start.Edges) == 1 && len(edge.End.Edges) == 1
}

// Length returns straight distance between end nodes
func (edge *Edge) Length() float64 {
	return edge.Start.Position.Distance(edge.End.Position)
}
