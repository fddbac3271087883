package roadnet

import "fmt"

const (
	DEFAULT_ROAD_WIDTH         = 4.0
	DEFAULT_CURVE_RADIUS       = 1.5
	DEFAULT_TIGHT_CURVE_RADIUS = 0.5
)

// Template is a road style. Edges and networks are partitioned by template identity (pointer equality),
// two templates with identical fields are still different templates.
type Template struct {
	Name string
	// Width of the road surface
	RoadWidth float64
	// Curve radius as a factor of RoadWidth
	CurveRadius float64
	// Curve radius factor used when an edge requests RoadTypeTightCurve
	TightCurveRadius float64
	// How far an end cap sticks out of the road end. Zero means half of the width
	EndCapLength float64
}

// NewTemplate returns template with default geometry parameters
func NewTemplate(name string) *Template {
	return &Template{
		Name:             name,
		RoadWidth:        DEFAULT_ROAD_WIDTH,
		CurveRadius:      DEFAULT_CURVE_RADIUS,
		TightCurveRadius: DEFAULT_TIGHT_CURVE_RADIUS,
	}
}

func (tpl *Template) String() string {
	return fmt.Sprintf("%s (width: %.2f)", tpl.Name, tpl.RoadWidth)
}

func (tpl *Template) halfWidth() float64 {
	return tpl.RoadWidth / 2.0
}

func (tpl *Template) curveRadius(tight bool) float64 {
	if tight {
		return tpl.RoadWidth * tpl.TightCurveRadius
	}
	return tpl.RoadWidth * tpl.CurveRadius
}

func (tpl *Template) endCapLength() float64 {
	if tpl.EndCapLength > 0 {
		return tpl.EndCapLength
	}
	return tpl.halfWidth()
}
