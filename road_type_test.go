package roadnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoadTypeString(t *testing.T) {
	assert.Equal(t, "none", RoadTypeNone.String())
	assert.Equal(t, "angled", RoadTypeAngled.String())
	assert.Equal(t, "tight_curve|end_cap", (RoadTypeTightCurve | RoadTypeEndCap).String())
}

func TestRoadTypeHas(t *testing.T) {
	rt := RoadTypeAngled | RoadTypeEndCap
	assert.True(t, rt.Has(RoadTypeAngled))
	assert.True(t, rt.Has(RoadTypeEndCap))
	assert.False(t, rt.Has(RoadTypeTightCurve))
	assert.True(t, rt.Has(RoadTypeNone))
}

func TestParseRoadType(t *testing.T) {
	rt, ok := ParseRoadType("End_Cap", " angled ")
	assert.True(t, ok)
	assert.Equal(t, RoadTypeAngled|RoadTypeEndCap, rt)

	rt, ok = ParseRoadType()
	assert.True(t, ok)
	assert.Equal(t, RoadTypeNone, rt)

	rt, ok = ParseRoadType("none", "")
	assert.True(t, ok)
	assert.Equal(t, RoadTypeNone, rt)

	_, ok = ParseRoadType("angled", "roundabout")
	assert.False(t, ok)
}
