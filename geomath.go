package roadnet

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

const (
	twoPi = 2 * math.Pi
	// angleEpsilon is the tolerance used when comparing angles
	angleEpsilon = 1e-9
)

var errParallelLines = errors.New("the lines are parallel")

// Check if two segments intersects and returns intersections Point
// p1, p2 - first segment
// p3, p4 - second segment
// Note: Euclidean space, segments are treated as infinite lines
func intersect(p1, p2, p3, p4 orb.Point) (orb.Point, error) {
	// Calculate the coefficients of the linear equations
	a1 := p2[1] - p1[1]
	b1 := p1[0] - p2[0]
	c1 := a1*p1[0] + b1*p1[1]
	a2 := p4[1] - p3[1]
	b2 := p3[0] - p4[0]
	c2 := a2*p3[0] + b2*p3[1]

	// Calculate the determinant
	det := a1*b2 - a2*b1
	if math.Abs(det) < angleEpsilon {
		return orb.Point{}, errParallelLines
	}

	x := (b2*c1 - b1*c2) / det
	y := (a1*c2 - a2*c1) / det
	return orb.Point{x, y}, nil
}

// offsetCurve shifts given line by distance. Positive distance moves the line to the left side
func offsetCurve(line orb.LineString, distance float64) orb.LineString {
	var result orb.LineString
	var segments [][2]orb.Point

	for i := 1; i < len(line); i++ {
		p1 := line[i-1]
		p2 := line[i]

		vec := [2]float64{p2[0] - p1[0], p2[1] - p1[1]}
		vecLen := math.Sqrt(vec[0]*vec[0] + vec[1]*vec[1])
		if vecLen == 0 {
			// Zero-length pieces have no normal
			continue
		}
		vec = [2]float64{vec[0] / vecLen, vec[1] / vecLen}

		// Rotate the vector by 90 degrees and scale it
		rotated := [2]float64{-vec[1], vec[0]}
		offset := [2]float64{rotated[0] * distance, rotated[1] * distance}

		op1 := orb.Point{p1[0] + offset[0], p1[1] + offset[1]}
		op2 := orb.Point{p2[0] + offset[0], p2[1] + offset[1]}
		segments = append(segments, [2]orb.Point{op1, op2})
	}
	if len(segments) == 0 {
		return line.Clone()
	}

	result = append(result, segments[0][0])
	for i := 1; i < len(segments); i++ {
		seg1 := segments[i-1]
		seg2 := segments[i]
		intersection, err := intersect(seg1[0], seg1[1], seg2[0], seg2[1])
		if err != nil {
			continue
		}
		result = append(result, intersection)
	}
	result = append(result, segments[len(segments)-1][1])
	return result
}

// interiorAngle folds an angular delta in [0, 2pi] to the smaller side, [0, pi]
func interiorAngle(delta float64) float64 {
	delta = math.Mod(delta, twoPi)
	if delta < 0 {
		delta += twoPi
	}
	if delta > math.Pi {
		return twoPi - delta
	}
	return delta
}

// trimDistance returns how far a road of given half width is cut back from a junction
// so its border clears a neighbour road meeting at angle.
func trimDistance(halfWidth, angle float64) float64 {
	half := angle / 2
	if half >= math.Pi/2-angleEpsilon {
		return 0
	}
	if half < angleEpsilon {
		return math.Inf(1)
	}
	return halfWidth / math.Tan(half)
}

// clamp limits v to [lo, hi]. When lo > hi the upper bound wins
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// quadraticBezier returns point of the curve p0 -> control -> p1 at parameter t
func quadraticBezier(p0, control, p1 Vector3, t float64) Vector3 {
	u := 1 - t
	return p0.Scale(u * u).Add(control.Scale(2 * u * t)).Add(p1.Scale(t * t))
}
