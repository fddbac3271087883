package roadnet

import (
	"errors"
)

var (
	// ErrNilNode is returned by AddEdge when either end is nil
	ErrNilNode = errors.New("edge node must not be nil")
	// ErrForeignNode is returned by AddEdge when a node was created by another topology
	ErrForeignNode = errors.New("node does not belong to topology")
	// ErrSelfLoop is returned by AddEdge when start and end are the same node
	ErrSelfLoop = errors.New("edge must connect two different nodes")
	// ErrNilTemplate is returned by AddEdge and AddTemplate when template is nil
	ErrNilTemplate = errors.New("template must not be nil")
	// ErrDuplicateTemplate is returned by AddTemplate when the template name is already registered
	ErrDuplicateTemplate = errors.New("duplicate template name")
	// ErrUnknownTemplate is returned by readers when an edge references unregistered template
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrUnknownNode is returned by readers when an edge references unknown node
	ErrUnknownNode = errors.New("unknown node")
)

// Topology is an abstract road graph: nodes at junctions and road ends, edges between them.
//
// Orientation normalization is expected to be applied by whoever constructs the topology.
// The network builder only reads it.
type Topology struct {
	Nodes     []*Node
	Edges     []*Edge
	Templates []*Template

	templatesByName map[string]*Template
	owned           map[*Node]struct{}
	nextNodeID      int
}

// NewTopology returns empty topology
func NewTopology() *Topology {
	return &Topology{
		Nodes:           make([]*Node, 0),
		Edges:           make([]*Edge, 0),
		Templates:       make([]*Template, 0),
		templatesByName: make(map[string]*Template),
		owned:           make(map[*Node]struct{}),
	}
}

// AddTemplate registers template so readers can refer to it by name.
// Edges may use unregistered templates as well; registration is only a naming aid.
func (topology *Topology) AddTemplate(tpl *Template) error {
	if tpl == nil {
		return ErrNilTemplate
	}
	if _, ok := topology.templatesByName[tpl.Name]; ok {
		return ErrDuplicateTemplate
	}
	topology.templatesByName[tpl.Name] = tpl
	topology.Templates = append(topology.Templates, tpl)
	return nil
}

// Template returns registered template by its name
func (topology *Topology) Template(name string) (*Template, bool) {
	tpl, ok := topology.templatesByName[name]
	return tpl, ok
}

// AddNode creates node at given position. Node gets the next free ID
func (topology *Topology) AddNode(position Vector3) *Node {
	return topology.addNodeWithID(topology.nextNodeID, position)
}

// addNodeWithID creates node with explicit ID; later AddNode calls continue after the largest ID seen
func (topology *Topology) addNodeWithID(id int, position Vector3) *Node {
	node := &Node{
		ID:       id,
		Position: position,
		Edges:    make([]*Edge, 0, 4),
	}
	if id >= topology.nextNodeID {
		topology.nextNodeID = id + 1
	}
	topology.Nodes = append(topology.Nodes, node)
	topology.owned[node] = struct{}{}
	return node
}

// AddEdge connects two nodes of the topology by a road of given template
func (topology *Topology) AddEdge(start, end *Node, tpl *Template, startType, endType RoadType) (*Edge, error) {
	if start == nil || end == nil {
		return nil, ErrNilNode
	}
	if tpl == nil {
		return nil, ErrNilTemplate
	}
	if start == end {
		return nil, ErrSelfLoop
	}
	if _, ok := topology.owned[start]; !ok {
		return nil, ErrForeignNode
	}
	if _, ok := topology.owned[end]; !ok {
		return nil, ErrForeignNode
	}
	edge := &Edge{
		ID:        len(topology.Edges),
		Start:     start,
		End:       end,
		Template:  tpl,
		StartType: startType,
		EndType:   endType,
	}
	start.Edges = append(start.Edges, edge)
	end.Edges = append(end.Edges, edge)
	topology.Edges = append(topology.Edges, edge)
	return edge, nil
}
