package roadnet

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// ErrDuplicateNode is returned by ReadTopologyTOML when two nodes share an ID
var ErrDuplicateNode = errors.New("duplicate node ID")

// ErrUnknownRoadType is returned by ReadTopologyTOML for unknown connection flag names
var ErrUnknownRoadType = errors.New("unknown road type flag")

// TemplateTOML is a template description in TOML documents. Zero values mean defaults
type TemplateTOML struct {
	Name             string  `toml:"name"`
	RoadWidth        float64 `toml:"road_width,omitempty"`
	CurveRadius      float64 `toml:"curve_radius,omitempty"`
	TightCurveRadius float64 `toml:"tight_curve_radius,omitempty"`
	EndCapLength     float64 `toml:"end_cap_length,omitempty"`
}

// Template converts description into a fresh template
func (t TemplateTOML) Template() *Template {
	tpl := NewTemplate(t.Name)
	if t.RoadWidth > 0 {
		tpl.RoadWidth = t.RoadWidth
	}
	if t.CurveRadius > 0 {
		tpl.CurveRadius = t.CurveRadius
	}
	if t.TightCurveRadius > 0 {
		tpl.TightCurveRadius = t.TightCurveRadius
	}
	if t.EndCapLength > 0 {
		tpl.EndCapLength = t.EndCapLength
	}
	return tpl
}

type nodeTOML struct {
	ID       int        `toml:"id"`
	Position [3]float64 `toml:"position"`
}

type edgeTOML struct {
	Start     int      `toml:"start"`
	End       int      `toml:"end"`
	Template  string   `toml:"template"`
	StartType []string `toml:"start_type,omitempty"`
	EndType   []string `toml:"end_type,omitempty"`
}

type topologyTOML struct {
	Templates []TemplateTOML `toml:"template"`
	Nodes     []nodeTOML     `toml:"node"`
	Edges     []edgeTOML     `toml:"edge"`
}

// ReadTopologyTOML reads topology description:
//
//	[[template]]
//	name = "asphalt"
//	road_width = 6.0
//
//	[[node]]
//	id = 1
//	position = [0.0, 0.0, 0.0]
//
//	[[edge]]
//	start = 1
//	end = 2
//	template = "asphalt"
//	start_type = ["end_cap"]
//
// Node IDs of the document are kept as Node.ID.
func ReadTopologyTOML(r io.Reader) (*Topology, error) {
	var doc topologyTOML
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "Can't decode topology")
	}

	topology := NewTopology()
	for _, t := range doc.Templates {
		if err := topology.AddTemplate(t.Template()); err != nil {
			return nil, errors.Wrapf(err, "template '%s'", t.Name)
		}
	}

	nodes := make(map[int]*Node, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, ok := nodes[n.ID]; ok {
			return nil, errors.Wrapf(ErrDuplicateNode, "node %d", n.ID)
		}
		nodes[n.ID] = topology.addNodeWithID(n.ID, Vector3{X: n.Position[0], Y: n.Position[1], Z: n.Position[2]})
	}

	for i, e := range doc.Edges {
		start, ok := nodes[e.Start]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "edge #%d start %d", i, e.Start)
		}
		end, ok := nodes[e.End]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "edge #%d end %d", i, e.End)
		}
		tpl, ok := topology.Template(e.Template)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownTemplate, "edge #%d template '%s'", i, e.Template)
		}
		startType, ok := ParseRoadType(e.StartType...)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownRoadType, "edge #%d start_type %v", i, e.StartType)
		}
		endType, ok := ParseRoadType(e.EndType...)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownRoadType, "edge #%d end_type %v", i, e.EndType)
		}
		if _, err := topology.AddEdge(start, end, tpl, startType, endType); err != nil {
			return nil, errors.Wrapf(err, "edge #%d", i)
		}
	}
	return topology, nil
}

// WriteTopologyTOML writes topology in the format read by ReadTopologyTOML.
// Templates used by edges but never registered are written as well. Templates are referenced
// by name, so two different templates sharing a name give ErrDuplicateTemplate.
func WriteTopologyTOML(w io.Writer, topology *Topology) error {
	doc := topologyTOML{}
	written := make(map[string]*Template)
	addTemplate := func(tpl *Template) error {
		if seen, ok := written[tpl.Name]; ok {
			if seen != tpl {
				return errors.Wrapf(ErrDuplicateTemplate, "template '%s'", tpl.Name)
			}
			return nil
		}
		written[tpl.Name] = tpl
		doc.Templates = append(doc.Templates, TemplateTOML{
			Name:             tpl.Name,
			RoadWidth:        tpl.RoadWidth,
			CurveRadius:      tpl.CurveRadius,
			TightCurveRadius: tpl.TightCurveRadius,
			EndCapLength:     tpl.EndCapLength,
		})
		return nil
	}
	for _, tpl := range topology.Templates {
		if err := addTemplate(tpl); err != nil {
			return err
		}
	}
	for _, node := range topology.Nodes {
		doc.Nodes = append(doc.Nodes, nodeTOML{ID: node.ID, Position: [3]float64{node.Position.X, node.Position.Y, node.Position.Z}})
	}
	for i, edge := range topology.Edges {
		if err := addTemplate(edge.Template); err != nil {
			return errors.Wrapf(err, "edge #%d", i)
		}
		doc.Edges = append(doc.Edges, edgeTOML{
			Start:     edge.Start.ID,
			End:       edge.End.ID,
			Template:  edge.Template.Name,
			StartType: roadTypeList(edge.StartType),
			EndType:   roadTypeList(edge.EndType),
		})
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "Can't encode topology")
	}
	return nil
}

func roadTypeList(rt RoadType) []string {
	if rt == RoadTypeNone {
		return nil
	}
	names := []string{}
	for _, item := range roadTypeFlags {
		if rt.Has(item.flag) {
			names = append(names, item.name)
		}
	}
	return names
}

