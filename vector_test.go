package roadnet

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	v := Vector3{X: 3, Y: 4}.Normalized()
	assert.InDelta(t, 0.6, v.X, 1e-9)
	assert.InDelta(t, 0.8, v.Y, 1e-9)
	assert.InDelta(t, 1.0, v.Length(), 1e-9)
}

func TestNormalizedDegenerate(t *testing.T) {
	tests := []Vector3{
		{},
		{X: 0.05, Y: 0.05},
		{Z: -0.09},
	}
	for _, v := range tests {
		n := v.Normalized()
		assert.Equal(t, UnitX, n, "vector %s", v)
		assert.False(t, math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z))
	}
	// Exactly at the threshold the vector is long enough
	n := Vector3{X: 0.1}.Normalized()
	assert.InDelta(t, 1.0, n.X, 1e-9)
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 3}
	b := Vector3{X: 4, Y: -1, Z: 0.5}
	assert.Equal(t, Vector3{X: 5, Y: 1, Z: 3.5}, a.Add(b))
	assert.Equal(t, Vector3{X: -3, Y: 3, Z: 2.5}, a.Sub(b))
	assert.Equal(t, Vector3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.Equal(t, Vector3{X: -1, Y: -2, Z: -3}, a.Neg())
	assert.InDelta(t, 3.5, a.Dot(b), 1e-9)
	assert.InDelta(t, 5.0, Vector3{}.Distance(Vector3{Y: 3, Z: 4}), 1e-9)
	assert.Equal(t, Vector3{X: 2.5, Y: 0.5, Z: 1.75}, a.Lerp(b, 0.5))
}

func TestAngleToAxis(t *testing.T) {
	assert.InDelta(t, 0.0, angleToAxis(UnitX), 1e-9)
	assert.InDelta(t, math.Pi/2, angleToAxis(UnitY), 1e-9)
	assert.InDelta(t, math.Pi, angleToAxis(UnitX.Neg()), 1e-9)
	assert.InDelta(t, math.Pi, angleToAxis(Vector3{X: -1, Y: math.Copysign(0, -1)}), 1e-9)
	assert.InDelta(t, -math.Pi/2, angleToAxis(UnitY.Neg()), 1e-9)
	// Height does not matter
	assert.InDelta(t, math.Pi/4, angleToAxis(Vector3{X: 1, Y: 1, Z: 7}), 1e-9)
}

func TestXY(t *testing.T) {
	v := Vector3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, orb.Point{1, 2}, v.XY())
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 5}, vectorFromXY(v.XY(), 5))
	assert.Equal(t, orb.LineString{{1, 2}, {0, 0}}, lineXY(v, Vector3{}))
}
