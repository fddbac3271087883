package roadnet

import (
	"github.com/paulmach/orb"
)

// SegmentID is a stable handle of a segment inside the segment set of one build
type SegmentID int

// NoSegment marks an end-point which is not connected to anything
const NoSegment = SegmentID(-1)

type SegmentKind uint16

const (
	SEGMENT_STRAIGHT = SegmentKind(iota + 1)
	SEGMENT_CURVE
	SEGMENT_CROSSING
	SEGMENT_END_CAP
)

func (iotaIdx SegmentKind) String() string {
	return [...]string{"straight", "curve", "crossing", "end_cap"}[iotaIdx-1]
}

// EndPoint is a place where a segment touches a neighbour segment
type EndPoint struct {
	Position Vector3
	// Outward unit direction of the segment at this point
	Direction Vector3
	// Direction recorded when the link was made. For straight-to-straight links it points
	// from the shared node toward the far end of the linked edge
	ConnectionDirection Vector3
	To                  SegmentID
}

// IsConnected reports whether the end-point links to another segment
func (ep *EndPoint) IsConnected() bool {
	return ep.To != NoSegment
}

func (ep *EndPoint) connectTo(to SegmentID, direction Vector3) {
	ep.To = to
	ep.ConnectionDirection = direction
}

// CurveShape describes a curve replacing the corner of two roads at a node
type CurveShape struct {
	// Node position the curve bends around
	Center Vector3
	// Control point of quadratic Bezier curve Start -> Control -> End
	Control Vector3
	Radius  float64
	// Interior angle between the two roads, [0, pi]
	Angle float64
	// Hard corner requested by RoadTypeAngled
	Angled bool
}

type CrossingType uint16

const (
	CROSSING_Y = CrossingType(iota + 1)
	CROSSING_T
	CROSSING_X
)

func (iotaIdx CrossingType) String() string {
	return [...]string{"Y", "T", "X"}[iotaIdx-1]
}

// CrossingShape describes a junction tile for three or four roads
type CrossingShape struct {
	Center Vector3
	Type   CrossingType
	// Road directions in ascending angle order
	Directions []Vector3
	// Ground plane outline in ascending angle order
	Outline orb.Ring
}

// EndCapShape describes a terminal piece closing a dead end
type EndCapShape struct {
	// Direction from the cap into the road it closes
	Direction Vector3
	Length    float64
}

// Segment is a concrete geometric piece of road.
// Kind selects the variant; exactly one of Curve, Crossing and Cap is set for junction kinds,
// none of them for straight segments.
type Segment struct {
	Template *Template
	// Originating edge of a straight segment
	Edge *Edge
	// Node a junction segment sits at
	Node *Node

	Curve    *CurveShape
	Crossing *CrossingShape
	Cap      *EndCapShape

	EndPoints []EndPoint
	Start     Vector3
	End       Vector3
	ID        SegmentID
	Kind      SegmentKind
}

// Length returns distance between Start and End
func (seg *Segment) Length() float64 {
	return seg.Start.Distance(seg.End)
}

// Points returns center line of the segment. Curves are sampled with given number of steps (at least 2)
func (seg *Segment) Points(steps int) []Vector3 {
	switch seg.Kind {
	case SEGMENT_CURVE:
		if steps < 2 {
			steps = 2
		}
		pts := make([]Vector3, 0, steps+1)
		for i := 0; i <= steps; i++ {
			pts = append(pts, quadraticBezier(seg.Start, seg.Curve.Control, seg.End, float64(i)/float64(steps)))
		}
		return pts
	case SEGMENT_CROSSING:
		pts := make([]Vector3, 0, len(seg.EndPoints))
		for _, ep := range seg.EndPoints {
			pts = append(pts, ep.Position)
		}
		return pts
	default:
		return []Vector3{seg.Start, seg.End}
	}
}

// Outline returns ground plane polygon covered by the segment
func (seg *Segment) Outline() orb.Ring {
	if seg.Kind == SEGMENT_CROSSING {
		return seg.Crossing.Outline.Clone()
	}
	center := lineXY(seg.Points(8)...)
	halfWidth := seg.Template.halfWidth()
	left := offsetCurve(center, halfWidth)
	right := offsetCurve(center, -halfWidth)
	ring := make(orb.Ring, 0, len(left)+len(right)+1)
	ring = append(ring, left...)
	for i := len(right) - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}
	if len(ring) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// linksTo reports whether any end-point of the segment links to id
func (seg *Segment) linksTo(id SegmentID) bool {
	for _, ep := range seg.EndPoints {
		if ep.To == id {
			return true
		}
	}
	return false
}

// endPointAt returns index of straight segment end-point lying at the given end of its edge
func (seg *Segment) endPointAt(node *Node) int {
	if seg.Edge != nil && seg.Edge.Start == node {
		return 0
	}
	return 1
}

// segmentSet is an arena of segments. Links between segments are SegmentID values,
// so a segment can be reshaped in place without invalidating links held by others.
type segmentSet struct {
	segments []*Segment
}

func (set *segmentSet) add(seg *Segment) SegmentID {
	seg.ID = SegmentID(len(set.segments))
	set.segments = append(set.segments, seg)
	return seg.ID
}

func (set *segmentSet) get(id SegmentID) *Segment {
	if id < 0 || int(id) >= len(set.segments) {
		return nil
	}
	return set.segments[id]
}

func (set *segmentSet) len() int {
	return len(set.segments)
}

// link connects end-point a.epA with b.epB in both directions
func (set *segmentSet) link(a SegmentID, epA int, b SegmentID, epB int) {
	segA, segB := set.get(a), set.get(b)
	segA.EndPoints[epA].connectTo(b, segB.EndPoints[epB].Direction)
	segB.EndPoints[epB].connectTo(a, segA.EndPoints[epA].Direction)
}
