package roadnet

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// degenerateLengthSq is the squared length below which a road vector is treated as zero-length
const degenerateLengthSq = 0.01

// Vector3 is a point or direction in map space. X and Y span the ground plane, Z is height.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	// UnitX is the fallback direction for zero-length roads
	UnitX = Vector3{X: 1}
	// UnitY is the second ground axis
	UnitY = Vector3{Y: 1}
)

// String returns pretty printed value for Vector3
func (v Vector3) String() string {
	return fmt.Sprintf("X: %f | Y: %f | Z: %f", v.X, v.Y, v.Z)
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector3) Scale(f float64) Vector3 {
	return Vector3{v.X * f, v.Y * f, v.Z * f}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) LengthSquared() float64 {
	return v.Dot(v)
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Distance returns euclidean distance between two points
func (v Vector3) Distance(o Vector3) float64 {
	return v.Sub(o).Length()
}

// Normalized returns unit vector of the same direction.
// Vectors with squared length below degenerateLengthSq yield UnitX, so the result is never NaN.
func (v Vector3) Normalized() Vector3 {
	if v.LengthSquared() < degenerateLengthSq {
		return UnitX
	}
	return v.Scale(1.0 / v.Length())
}

// Lerp returns linear interpolation between v and o
func (v Vector3) Lerp(o Vector3, fraction float64) Vector3 {
	return v.Scale(1 - fraction).Add(o.Scale(fraction))
}

// XY projects the vector onto the ground plane
func (v Vector3) XY() orb.Point {
	return orb.Point{v.X, v.Y}
}

// vectorFromXY lifts a ground plane point back to map space at given height
func vectorFromXY(pt orb.Point, z float64) Vector3 {
	return Vector3{X: pt.X(), Y: pt.Y(), Z: z}
}

// angleToAxis returns angle of the direction against X axis in range (-pi, pi]
func angleToAxis(direction Vector3) float64 {
	y := direction.Y
	if y == 0 {
		// Negative zero would give -pi for directions along -X
		y = 0
	}
	return math.Atan2(y, direction.X)
}

// lineXY projects points onto the ground plane
func lineXY(pts ...Vector3) orb.LineString {
	line := make(orb.LineString, len(pts))
	for i := range pts {
		line[i] = pts[i].XY()
	}
	return line
}
