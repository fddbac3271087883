package roadnet

// linkAdjacency returns neighbours of every segment under the symmetric closure of end-point links.
// Own links come first in end-point order, then segments linking to it one way only.
func linkAdjacency(set *segmentSet) [][]SegmentID {
	adjacency := make([][]SegmentID, set.len())
	for _, seg := range set.segments {
		for _, ep := range seg.EndPoints {
			if !ep.IsConnected() {
				continue
			}
			adjacency[seg.ID] = append(adjacency[seg.ID], ep.To)
		}
	}
	for _, seg := range set.segments {
		for _, ep := range seg.EndPoints {
			if !ep.IsConnected() || set.get(ep.To).linksTo(seg.ID) {
				continue
			}
			adjacency[ep.To] = append(adjacency[ep.To], seg.ID)
		}
	}
	return adjacency
}

// buildNetworks partitions segments into connected components per template.
// Templates are taken in order of their first edge, start segments in edge order.
// The traversal keeps an explicit stack, so its depth does not depend on component size.
func buildNetworks(topology *Topology, set *segmentSet, edgeSegments map[*Edge]SegmentID) []*Network {
	adjacency := linkAdjacency(set)
	visited := make([]bool, set.len())
	networks := []*Network{}

	for _, group := range groupByTemplate(topology.Edges) {
		segmentsToProcess := make(map[SegmentID]struct{}, len(group.edges))
		order := make([]SegmentID, 0, len(group.edges))
		for _, edge := range group.edges {
			id := edgeSegments[edge]
			segmentsToProcess[id] = struct{}{}
			order = append(order, id)
		}

		ordinal := 0
		for _, startID := range order {
			if len(segmentsToProcess) == 0 {
				break
			}
			if _, ok := segmentsToProcess[startID]; !ok {
				continue
			}
			network := newNetwork(group.template, set)
			stack := []SegmentID{startID}
			visited[startID] = true
			for len(stack) > 0 {
				id := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				delete(segmentsToProcess, id)
				network.segments = append(network.segments, id)

				neighbours := adjacency[id]
				// Reverse push keeps the first end-point on top of the stack
				for i := len(neighbours) - 1; i >= 0; i-- {
					nextID := neighbours[i]
					if visited[nextID] || set.get(nextID).Template != group.template {
						continue
					}
					visited[nextID] = true
					stack = append(stack, nextID)
				}
			}
			network.assignID(ordinal)
			ordinal++
			networks = append(networks, network)
		}
	}
	return networks
}
