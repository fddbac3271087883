package roadnet

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// curveSteps is the number of pieces a curve is sampled with for export
const curveSteps = 8

// segmentGeometry returns ground plane geometry of the segment: polygon for crossings,
// center line for everything else
func segmentGeometry(seg *Segment) orb.Geometry {
	if seg.Kind == SEGMENT_CROSSING {
		return orb.Polygon{seg.Crossing.Outline}
	}
	return lineXY(seg.Points(curveSteps)...)
}

// PrepareWKTSegment returns WKT representation of the segment geometry
func PrepareWKTSegment(seg *Segment) string {
	return wkt.MarshalString(segmentGeometry(seg))
}

// PrepareWKTOutline returns WKT representation of the area covered by the segment
func PrepareWKTOutline(seg *Segment) string {
	return wkt.MarshalString(orb.Polygon{seg.Outline()})
}
