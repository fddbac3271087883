package roadnet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOSM = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
 <node id="1" lat="55.7500" lon="37.6000" version="1"/>
 <node id="2" lat="55.7500" lon="37.6010" version="1"/>
 <node id="3" lat="55.7500" lon="37.6020" version="1"/>
 <node id="4" lat="55.7510" lon="37.6010" version="1"/>
 <node id="5" lat="55.7490" lon="37.6030" version="1"/>
 <node id="6" lat="55.7400" lon="37.5000" version="1"/>
 <way id="100" version="1">
  <nd ref="1"/>
  <nd ref="2"/>
  <nd ref="3"/>
  <tag k="highway" v="primary"/>
 </way>
 <way id="101" version="1">
  <nd ref="2"/>
  <nd ref="4"/>
  <tag k="highway" v="residential"/>
 </way>
 <way id="102" version="1">
  <nd ref="3"/>
  <nd ref="5"/>
  <tag k="highway" v="pedestrian"/>
  <tag k="area" v="yes"/>
 </way>
 <way id="103" version="1">
  <nd ref="4"/>
  <nd ref="6"/>
  <tag k="building" v="yes"/>
 </way>
 <way id="104" version="1">
  <nd ref="3"/>
  <nd ref="5"/>
  <tag k="highway" v="primary_link"/>
 </way>
</osm>
`

func writeSampleOSM(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func TestImportTopologyOSM(t *testing.T) {
	fname := writeSampleOSM(t, "sample.osm", sampleOSM)
	topology, err := ImportTopologyOSM(context.Background(), fname, &OSMImportConfig{EndCaps: true})
	require.NoError(t, err)

	require.Len(t, topology.Nodes, 5)
	require.Len(t, topology.Edges, 4)
	require.Len(t, topology.Templates, 3)

	primary, ok := topology.Template("primary")
	require.True(t, ok)
	assert.Equal(t, 3*laneWidth, primary.RoadWidth)
	link, ok := topology.Template("primary_link")
	require.True(t, ok)
	assert.Equal(t, laneWidth, link.RoadWidth)

	// Dead ends get end caps, ramps ask for tight curves
	e12, e23, e24, e35 := topology.Edges[0], topology.Edges[1], topology.Edges[2], topology.Edges[3]
	assert.Equal(t, RoadTypeEndCap, e12.StartType)
	assert.Equal(t, RoadTypeNone, e12.EndType)
	assert.Equal(t, RoadTypeNone, e23.StartType)
	assert.Equal(t, RoadTypeEndCap, e24.EndType)
	assert.Equal(t, RoadTypeTightCurve, e35.StartType)
	assert.Equal(t, RoadTypeTightCurve|RoadTypeEndCap, e35.EndType)
	assert.Same(t, e12.End, e23.Start)
	assert.Same(t, e12.End, e24.Start)

	// Positions are web mercator meters
	back := pointToSpherical(e12.Start.Position.XY())
	assert.InDelta(t, 37.6, back.Lon(), 1e-7)
	assert.InDelta(t, 55.75, back.Lat(), 1e-7)
	assert.InDelta(t, 0.0, e12.Start.Position.Z, 1e-12)

	networks := BuildNetworks(topology)
	assert.Len(t, networks, 3)
}

func TestImportTopologyOSMConfig(t *testing.T) {
	fname := writeSampleOSM(t, "sample.xml", sampleOSM)
	wide := NewTemplate("residential")
	wide.RoadWidth = 12
	topology, err := ImportTopologyOSM(context.Background(), fname, &OSMImportConfig{
		Highways:  []string{"residential"},
		Templates: []*Template{wide},
	})
	require.NoError(t, err)
	require.Len(t, topology.Edges, 1)
	require.Len(t, topology.Nodes, 2)
	assert.Same(t, wide, topology.Edges[0].Template)
	assert.Equal(t, RoadTypeNone, topology.Edges[0].StartType)
	assert.Equal(t, RoadTypeNone, topology.Edges[0].EndType)
}

func TestImportTopologyOSMErrors(t *testing.T) {
	_, err := ImportTopologyOSM(context.Background(), writeSampleOSM(t, "sample.geojson", sampleOSM), nil)
	assert.Error(t, err)

	_, err = ImportTopologyOSM(context.Background(), filepath.Join(t.TempDir(), "missing.osm"), nil)
	assert.Error(t, err)

	broken := `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
 <node id="1" lat="55.75" lon="37.6" version="1"/>
 <way id="1" version="1">
  <nd ref="1"/>
  <nd ref="2"/>
  <tag k="highway" v="primary"/>
 </way>
</osm>
`
	_, err = ImportTopologyOSM(context.Background(), writeSampleOSM(t, "broken.osm", broken), nil)
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestHighwayTemplates(t *testing.T) {
	assert.Nil(t, templateForHighway("building"))
	tpl := templateForHighway("motorway")
	require.NotNil(t, tpl)
	assert.Equal(t, "motorway", tpl.Name)
	assert.Equal(t, 4*laneWidth, tpl.RoadWidth)
	assert.True(t, isTightCurveHighway("motorway_link"))
	assert.False(t, isTightCurveHighway("motorway"))
	assert.False(t, isTightCurveHighway("building"))
}
