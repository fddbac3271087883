package roadnet

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// NetworksToGeoJSON returns FeatureCollection with one feature per segment.
// When mercator is set, coordinates are treated as web mercator meters (see ImportTopologyOSM)
// and converted back to longitude/latitude.
func NetworksToGeoJSON(networks []*Network, mercator bool) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, net := range networks {
		for _, seg := range net.Segments() {
			fc.AddFeature(segmentFeature(net, seg, mercator))
		}
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal feature collection")
	}
	return b, nil
}

// NetworkToGeoJSON returns FeatureCollection for a single network
func NetworkToGeoJSON(net *Network, mercator bool) ([]byte, error) {
	return NetworksToGeoJSON([]*Network{net}, mercator)
}

func segmentFeature(net *Network, seg *Segment, mercator bool) *geojson.Feature {
	var feature *geojson.Feature
	switch geom := segmentGeometry(seg).(type) {
	case orb.Polygon:
		rings := make([][][]float64, len(geom))
		for i, ring := range geom {
			rings[i] = pointsToSlice(ring, mercator)
		}
		feature = geojson.NewPolygonFeature(rings)
	case orb.LineString:
		feature = geojson.NewLineStringFeature(pointsToSlice(geom, mercator))
	}
	feature.SetProperty("network_id", net.ID.String())
	feature.SetProperty("template", net.Template.Name)
	feature.SetProperty("segment_id", int(seg.ID))
	feature.SetProperty("kind", seg.Kind.String())
	if seg.Edge != nil {
		feature.SetProperty("edge_id", seg.Edge.ID)
	}
	if seg.Node != nil {
		feature.SetProperty("node_id", seg.Node.ID)
	}
	if seg.Crossing != nil {
		feature.SetProperty("crossing_type", seg.Crossing.Type.String())
	}
	if movements := seg.Movements(); len(movements) > 0 {
		composite := make([]string, len(movements))
		for i, mvmt := range movements {
			composite[i] = mvmt.CompositeType().String()
		}
		feature.SetProperty("movements", composite)
	}
	links := make([]int, len(seg.EndPoints))
	for i, ep := range seg.EndPoints {
		links[i] = int(ep.To)
	}
	feature.SetProperty("links", links)
	return feature
}

func pointsToSlice(pts []orb.Point, mercator bool) [][]float64 {
	result := make([][]float64, len(pts))
	for i := range pts {
		pt := pts[i]
		if mercator {
			pt = pointToSpherical(pt)
		}
		result[i] = []float64{pt.X(), pt.Y()}
	}
	return result
}
