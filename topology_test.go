package roadnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge(t *testing.T) {
	topology := NewTopology()
	tpl := NewTemplate("asphalt")
	a := topology.AddNode(Vector3{})
	b := topology.AddNode(Vector3{X: 10})
	assert.Equal(t, 0, a.ID)
	assert.Equal(t, 1, b.ID)

	edge, err := topology.AddEdge(a, b, tpl, RoadTypeEndCap, RoadTypeNone)
	require.NoError(t, err)
	assert.Equal(t, 0, edge.ID)
	assert.Equal(t, []*Edge{edge}, a.Edges)
	assert.Equal(t, []*Edge{edge}, b.Edges)
	assert.Equal(t, 1, a.Degree())
	assert.Equal(t, RoadTypeEndCap, edge.typeAt(a))
	assert.Equal(t, RoadTypeNone, edge.typeAt(b))
	assert.Equal(t, b, edge.otherNode(a))
	assert.Equal(t, a, edge.otherNode(b))
	assert.True(t, edge.isIsolated())
	assert.InDelta(t, 10.0, edge.Length(), 1e-9)
}

func TestAddEdgeErrors(t *testing.T) {
	topology := NewTopology()
	tpl := NewTemplate("asphalt")
	a := topology.AddNode(Vector3{})
	b := topology.AddNode(Vector3{X: 10})
	foreign := NewTopology().AddNode(Vector3{Y: 10})

	_, err := topology.AddEdge(nil, b, tpl, RoadTypeNone, RoadTypeNone)
	assert.ErrorIs(t, err, ErrNilNode)
	_, err = topology.AddEdge(a, b, nil, RoadTypeNone, RoadTypeNone)
	assert.ErrorIs(t, err, ErrNilTemplate)
	_, err = topology.AddEdge(a, a, tpl, RoadTypeNone, RoadTypeNone)
	assert.ErrorIs(t, err, ErrSelfLoop)
	_, err = topology.AddEdge(a, foreign, tpl, RoadTypeNone, RoadTypeNone)
	assert.ErrorIs(t, err, ErrForeignNode)

	assert.Empty(t, topology.Edges)
	assert.Empty(t, a.Edges)
}

func TestAddTemplate(t *testing.T) {
	topology := NewTopology()
	tpl := NewTemplate("asphalt")
	require.NoError(t, topology.AddTemplate(tpl))
	assert.ErrorIs(t, topology.AddTemplate(NewTemplate("asphalt")), ErrDuplicateTemplate)
	assert.ErrorIs(t, topology.AddTemplate(nil), ErrNilTemplate)

	found, ok := topology.Template("asphalt")
	assert.True(t, ok)
	assert.Same(t, tpl, found)
	_, ok = topology.Template("gravel")
	assert.False(t, ok)
}

func TestTemplateDefaults(t *testing.T) {
	tpl := NewTemplate("asphalt")
	assert.Equal(t, 2.0, tpl.halfWidth())
	assert.Equal(t, 6.0, tpl.curveRadius(false))
	assert.Equal(t, 2.0, tpl.curveRadius(true))
	assert.Equal(t, 2.0, tpl.endCapLength())
	tpl.EndCapLength = 3
	assert.Equal(t, 3.0, tpl.endCapLength())
}

func TestGroupByTemplate(t *testing.T) {
	topology := NewTopology()
	asphalt := NewTemplate("asphalt")
	gravel := NewTemplate("gravel")
	center := topology.AddNode(Vector3{})
	e1 := mustEdge(t, topology, center, topology.AddNode(Vector3{X: 10}), gravel)
	e2 := mustEdge(t, topology, center, topology.AddNode(Vector3{Y: 10}), asphalt)
	e3 := mustEdge(t, topology, center, topology.AddNode(Vector3{X: -10}), gravel)

	groups := center.edgesByTemplate()
	require.Len(t, groups, 2)
	assert.Same(t, gravel, groups[0].template)
	assert.Equal(t, []*Edge{e1, e3}, groups[0].edges)
	assert.Same(t, asphalt, groups[1].template)
	assert.Equal(t, []*Edge{e2}, groups[1].edges)
}

func mustEdge(t *testing.T, topology *Topology, start, end *Node, tpl *Template) *Edge {
	t.Helper()
	edge, err := topology.AddEdge(start, end, tpl, RoadTypeNone, RoadTypeNone)
	require.NoError(t, err)
	return edge
}
