package roadnet

import (
	"math"

	"github.com/paulmach/orb"
)

// tJunctionTolerance is max deviation from a straight angle for a three-way crossing to be a T
const tJunctionTolerance = 10.0 * math.Pi / 180.0

// createCrossing joins three or four roads meeting at the node into one junction tile.
// End-points of the crossing follow angular order of the roads.
func (resolver *junctionResolver) createCrossing(incomingRoads []IncomingRoadData, node *Node, tpl *Template) SegmentID {
	halfWidth := tpl.halfWidth()
	positions := make([]Vector3, len(incomingRoads))
	directions := make([]Vector3, len(incomingRoads))
	endPoints := make([]EndPoint, len(incomingRoads))
	for i, road := range incomingRoads {
		wedge := math.Min(road.AngleToPrevious, angleToNext(incomingRoads, i))
		limit := maxTrim(road.Edge)
		trim := clamp(trimDistance(halfWidth, wedge), math.Min(halfWidth, limit), limit)
		positions[i] = node.Position.Add(road.Direction.Scale(trim))
		directions[i] = road.Direction
		endPoints[i] = EndPoint{Position: positions[i], Direction: road.Direction, To: NoSegment}
	}

	crossing := &Segment{
		Kind:      SEGMENT_CROSSING,
		Template:  tpl,
		Node:      node,
		Start:     node.Position,
		End:       node.Position,
		EndPoints: endPoints,
		Crossing: &CrossingShape{
			Center:     node.Position,
			Type:       crossingType(incomingRoads),
			Directions: directions,
			Outline:    crossingOutline(node.Position, directions, positions, halfWidth),
		},
	}
	id := resolver.set.add(crossing)
	for i, road := range incomingRoads {
		resolver.attach(road.Edge, node, positions[i], id, i)
	}
	resolver.stats.Crossings++
	return id
}

func crossingType(incomingRoads []IncomingRoadData) CrossingType {
	if len(incomingRoads) >= 4 {
		return CROSSING_X
	}
	for _, road := range incomingRoads {
		if math.Abs(road.AngleToPrevious-math.Pi) <= tJunctionTolerance {
			return CROSSING_T
		}
	}
	return CROSSING_Y
}

// leftNormal returns ground plane normal pointing to the left of the direction
func leftNormal(direction Vector3) orb.Point {
	return orb.Point{-direction.Y, direction.X}
}

// crossingOutline returns counter-clockwise polygon of the crossing: for every road the inner
// corner shared with the previous road followed by both corners of the road mouth.
func crossingOutline(center Vector3, directions, mouths []Vector3, halfWidth float64) orb.Ring {
	c := center.XY()
	ring := make(orb.Ring, 0, 3*len(directions)+1)
	for i := range directions {
		prev := (i - 1 + len(directions)) % len(directions)
		prevLeft := leftNormal(directions[prev])
		curLeft := leftNormal(directions[i])

		// Left border of the previous road and right border of the current one
		p1 := orb.Point{c[0] + prevLeft[0]*halfWidth, c[1] + prevLeft[1]*halfWidth}
		p2 := orb.Point{p1[0] + directions[prev].X, p1[1] + directions[prev].Y}
		p3 := orb.Point{c[0] - curLeft[0]*halfWidth, c[1] - curLeft[1]*halfWidth}
		p4 := orb.Point{p3[0] + directions[i].X, p3[1] + directions[i].Y}
		corner, err := intersect(p1, p2, p3, p4)
		if err != nil {
			corner = p1
		}
		ring = append(ring, corner)

		mouth := mouths[i].XY()
		ring = append(ring,
			orb.Point{mouth[0] - curLeft[0]*halfWidth, mouth[1] - curLeft[1]*halfWidth},
			orb.Point{mouth[0] + curLeft[0]*halfWidth, mouth[1] + curLeft[1]*halfWidth},
		)
	}
	ring = append(ring, ring[0])
	return ring
}
