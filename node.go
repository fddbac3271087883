package roadnet

// Node is a junction or an end of roads
type Node struct {
	// Incident edges in insertion order
	Edges []*Edge

	ID       int
	Position Vector3
}

// Degree returns number of incident edges of any template
func (node *Node) Degree() int {
	return len(node.Edges)
}

// edgesByTemplate groups incident edges by template preserving order of first appearance
func (node *Node) edgesByTemplate() []templateGroup {
	return groupByTemplate(node.Edges)
}

type templateGroup struct {
	template *Template
	edges    []*Edge
}

func groupByTemplate(edges []*Edge) []templateGroup {
	groups := []templateGroup{}
	index := make(map[*Template]int)
	for _, edge := range edges {
		idx, ok := index[edge.Template]
		if !ok {
			idx = len(groups)
			index[edge.Template] = idx
			groups = append(groups, templateGroup{template: edge.Template})
		}
		groups[idx].edges = append(groups[idx].edges, edge)
	}
	return groups
}
