package roadnet

import (
	"math"
	"sort"
)

// IncomingRoadData describes one road entering a node, as seen from the node
type IncomingRoadData struct {
	Edge               *Edge
	TargetNodePosition Vector3
	// Unit direction from the node toward the far end of the edge
	Direction   Vector3
	AngleToAxis float64
	// Index of the angular predecessor in the sorted slice this record belongs to
	Previous        int
	AngleToPrevious float64
}

// getIncomingRoadData computes direction and angle of the edge leaving the node
func getIncomingRoadData(node *Node, incomingEdge *Edge) IncomingRoadData {
	targetNodePosition := incomingEdge.otherNode(node).Position
	direction := targetNodePosition.Sub(node.Position).Normalized()
	return IncomingRoadData{
		Edge:               incomingEdge,
		TargetNodePosition: targetNodePosition,
		Direction:          direction,
		AngleToAxis:        angleToAxis(direction),
		Previous:           -1,
	}
}

// computeRoadAngles returns incoming roads of the node sorted by angle to X axis (ascending).
// Each record refers to its angular predecessor; the first one refers to the last one and
// its delta wraps around the full turn, so all deltas sum up to 2*pi.
// Groups of less than two edges yield empty result.
func computeRoadAngles(node *Node, edges []*Edge) []IncomingRoadData {
	if len(edges) < 2 {
		return []IncomingRoadData{}
	}
	incomingRoads := make([]IncomingRoadData, len(edges))
	for i, edge := range edges {
		incomingRoads[i] = getIncomingRoadData(node, edge)
	}
	sort.SliceStable(incomingRoads, func(i, j int) bool {
		return incomingRoads[i].AngleToAxis < incomingRoads[j].AngleToAxis
	})

	last := len(incomingRoads) - 1
	for i := 1; i < len(incomingRoads); i++ {
		incomingRoads[i].Previous = i - 1
		incomingRoads[i].AngleToPrevious = incomingRoads[i].AngleToAxis - incomingRoads[i-1].AngleToAxis
	}
	incomingRoads[0].Previous = last
	incomingRoads[0].AngleToPrevious = 2*math.Pi + incomingRoads[0].AngleToAxis - incomingRoads[last].AngleToAxis
	return incomingRoads
}

// nextRoad returns index of the angular successor of i
func nextRoad(incomingRoads []IncomingRoadData, i int) int {
	return (i + 1) % len(incomingRoads)
}

// angleToNext returns angular delta between record i and its successor
func angleToNext(incomingRoads []IncomingRoadData, i int) float64 {
	return incomingRoads[nextRoad(incomingRoads, i)].AngleToPrevious
}
