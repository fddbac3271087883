package roadnet

import (
	"github.com/charmbracelet/log"
)

// Stats counts segments produced by one build
type Stats struct {
	Straights int
	Curves    int
	Crossings int
	EndCaps   int
	// Node/template groups of five or more roads left without junction segment
	UnresolvedJunctions int
	Networks            int
}

// Segments returns total number of segments
func (stats Stats) Segments() int {
	return stats.Straights + stats.Curves + stats.Crossings + stats.EndCaps
}

// junctionResolver inserts curve, crossing and end cap segments at nodes
type junctionResolver struct {
	set          *segmentSet
	edgeSegments map[*Edge]SegmentID
	logger       *log.Logger
	stats        *Stats
}

// insertNodeSegments creates curves for two-road groups and crossings for three- and four-road groups
func (resolver *junctionResolver) insertNodeSegments(topology *Topology) {
	for _, node := range topology.Nodes {
		for _, group := range node.edgesByTemplate() {
			incomingRoads := computeRoadAngles(node, group.edges)
			switch len(group.edges) {
			case 1:
				// Dead end, see insertEndCapSegments
			case 2:
				resolver.createCurve(incomingRoads, node, group.template)
			case 3, 4:
				resolver.createCrossing(incomingRoads, node, group.template)
			default:
				resolver.stats.UnresolvedJunctions++
				resolver.logger.Warn("Junction is not supported, no segment created", "node", node.ID, "template", group.template.Name, "roads", len(group.edges))
			}
		}
	}
}

// insertEndCapSegments closes dead ends which request an end cap
func (resolver *junctionResolver) insertEndCapSegments(topology *Topology) {
	for _, node := range topology.Nodes {
		for _, group := range node.edgesByTemplate() {
			if len(group.edges) != 1 {
				continue
			}
			edge := group.edges[0]
			if !needsEndCap(node, edge) {
				continue
			}
			resolver.createEndCap(getIncomingRoadData(node, edge), node, group.template)
		}
	}
}

// needsEndCap decides whether a dead end of the edge at the node gets an end cap.
// A fully isolated edge can carry only one cap: when both ends ask for it, only the End node gets it.
func needsEndCap(node *Node, edge *Edge) bool {
	if edge.isIsolated() && edge.StartType.Has(RoadTypeEndCap) && edge.EndType.Has(RoadTypeEndCap) {
		return node == edge.End
	}
	return edge.typeAt(node).Has(RoadTypeEndCap)
}

// maxTrim returns how far a road may be cut back from one of its ends
func maxTrim(edge *Edge) float64 {
	return edge.Length() / 2.0
}

// attach moves the end of the straight segment of the edge touching the node to position
// and links it with end-point ep of the junction segment.
func (resolver *junctionResolver) attach(edge *Edge, node *Node, position Vector3, junction SegmentID, ep int) {
	straightID := resolver.edgeSegments[edge]
	straight := resolver.set.get(straightID)
	straightEP := straight.endPointAt(node)
	straight.EndPoints[straightEP].Position = position
	if straightEP == 0 {
		straight.Start = position
	} else {
		straight.End = position
	}
	resolver.set.link(straightID, straightEP, junction, ep)
}
