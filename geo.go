package roadnet

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// pointToEuclidean converts WGS84 point to web mercator meters
func pointToEuclidean(pt orb.Point) orb.Point {
	return project.WGS84.ToMercator(pt)
}

// pointToSpherical converts web mercator meters back to WGS84 point
func pointToSpherical(pt orb.Point) orb.Point {
	return project.Mercator.ToWGS84(pt)
}
