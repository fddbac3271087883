package roadnet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	builder := NewBuilder(WithLogger(logger))

	t.Log(builder)

	tpl := NewTemplate("asphalt")
	// Five-way junction is left unresolved
	topology, _ := starTopology(t, tpl, 20, 0, 72, 144, 216, 288)
	a := topology.AddNode(Vector3{X: 100})
	b := topology.AddNode(Vector3{X: 120})
	c := topology.AddNode(Vector3{X: 120, Y: 20})
	_, err := topology.AddEdge(a, b, tpl, RoadTypeEndCap, RoadTypeNone)
	require.NoError(t, err)
	_, err = topology.AddEdge(b, c, tpl, RoadTypeNone, RoadTypeEndCap)
	require.NoError(t, err)

	networks := builder.Build(topology)
	stats := builder.Stats()
	assert.Equal(t, 7, stats.Straights)
	assert.Equal(t, 1, stats.Curves)
	assert.Equal(t, 0, stats.Crossings)
	assert.Equal(t, 2, stats.EndCaps)
	assert.Equal(t, 1, stats.UnresolvedJunctions)
	assert.Equal(t, 2, stats.Networks)
	assert.Equal(t, 10, stats.Segments())
	assert.Len(t, networks, 2)

	out := buf.String()
	assert.Contains(t, out, "Junction is not supported")
	assert.Contains(t, out, "Road networks built")
	assert.True(t, strings.Contains(builder.String(), "unresolved_junctions: 1"))

	// Counters are reset by every build
	builder.Build(NewTopology())
	assert.Equal(t, Stats{}, builder.Stats())
}

func TestBuilderDefaultLogger(t *testing.T) {
	builder := NewBuilder(WithLogger(nil))
	require.NotNil(t, builder.logger)
	assert.Empty(t, builder.Build(NewTopology()))
}
