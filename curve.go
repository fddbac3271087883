package roadnet

import "math"

// createCurve replaces the corner of two roads meeting at the node with a curve segment.
// Both straight segments are cut back so the curve fits between them.
func (resolver *junctionResolver) createCurve(incomingRoads []IncomingRoadData, node *Node, tpl *Template) SegmentID {
	first, second := incomingRoads[0], incomingRoads[1]
	angle := interiorAngle(second.AngleToPrevious)

	typeFirst := first.Edge.typeAt(node)
	typeSecond := second.Edge.typeAt(node)
	tight := typeFirst.Has(RoadTypeTightCurve) || typeSecond.Has(RoadTypeTightCurve)
	angled := typeFirst.Has(RoadTypeAngled) || typeSecond.Has(RoadTypeAngled)

	radius := tpl.curveRadius(tight)
	trim := 0.0
	if !angled {
		trim = clamp(trimDistance(radius, angle), 0, math.Min(maxTrim(first.Edge), maxTrim(second.Edge)))
	}

	start := node.Position.Add(first.Direction.Scale(trim))
	end := node.Position.Add(second.Direction.Scale(trim))
	curve := &Segment{
		Kind:     SEGMENT_CURVE,
		Template: tpl,
		Node:     node,
		Start:    start,
		End:      end,
		EndPoints: []EndPoint{
			{Position: start, Direction: first.Direction, To: NoSegment},
			{Position: end, Direction: second.Direction, To: NoSegment},
		},
		Curve: &CurveShape{
			Center:  node.Position,
			Control: node.Position,
			Radius:  radius,
			Angle:   angle,
			Angled:  angled,
		},
	}
	id := resolver.set.add(curve)
	resolver.attach(first.Edge, node, start, id, 0)
	resolver.attach(second.Edge, node, end, id, 1)
	resolver.stats.Curves++
	return id
}
