package roadnet_test

import (
	"fmt"

	"github.com/LdDl/roadnet"
)

func ExampleBuildNetworks() {
	topology := roadnet.NewTopology()
	asphalt := roadnet.NewTemplate("asphalt")

	center := topology.AddNode(roadnet.Vector3{})
	east := topology.AddNode(roadnet.Vector3{X: 30})
	west := topology.AddNode(roadnet.Vector3{X: -30})
	north := topology.AddNode(roadnet.Vector3{Y: 30})

	topology.AddEdge(center, east, asphalt, roadnet.RoadTypeNone, roadnet.RoadTypeNone)
	topology.AddEdge(center, west, asphalt, roadnet.RoadTypeNone, roadnet.RoadTypeNone)
	topology.AddEdge(center, north, asphalt, roadnet.RoadTypeNone, roadnet.RoadTypeEndCap)

	for _, net := range roadnet.BuildNetworks(topology) {
		fmt.Println(net.Template.Name, net.Len())
		for _, seg := range net.Segments() {
			if seg.Crossing != nil {
				fmt.Println(seg.Kind, seg.Crossing.Type, len(seg.EndPoints))
				continue
			}
			fmt.Println(seg.Kind)
		}
	}
	// Output:
	// asphalt 5
	// straight
	// crossing T 3
	// straight
	// end_cap
	// straight
}
