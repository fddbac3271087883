package roadnet

// createEndCap closes the road entering the node. The cap sticks out of the node away from the road
func (resolver *junctionResolver) createEndCap(road IncomingRoadData, node *Node, tpl *Template) SegmentID {
	length := tpl.endCapLength()
	endCap := &Segment{
		Kind:     SEGMENT_END_CAP,
		Template: tpl,
		Node:     node,
		Start:    node.Position,
		End:      node.Position.Sub(road.Direction.Scale(length)),
		EndPoints: []EndPoint{
			{Position: node.Position, Direction: road.Direction, To: NoSegment},
		},
		Cap: &EndCapShape{
			Direction: road.Direction,
			Length:    length,
		},
	}
	id := resolver.set.add(endCap)
	resolver.attach(road.Edge, node, node.Position, id, 0)
	resolver.stats.EndCaps++
	return id
}
