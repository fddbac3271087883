package roadnet

import "strings"

// RoadType is a set of connection flags declared for one end of an edge
type RoadType uint16

const (
	RoadTypeNone = RoadType(0)
	// Hard corner instead of a smooth curve
	RoadTypeAngled = RoadType(1 << iota)
	// Curve with reduced radius
	RoadTypeTightCurve
	// Dead end closed by an end cap
	RoadTypeEndCap
)

var roadTypeFlags = []struct {
	flag RoadType
	name string
}{
	{RoadTypeAngled, "angled"},
	{RoadTypeTightCurve, "tight_curve"},
	{RoadTypeEndCap, "end_cap"},
}

// Has reports whether every bit of flag is set
func (rt RoadType) Has(flag RoadType) bool {
	return rt&flag == flag
}

func (rt RoadType) String() string {
	if rt == RoadTypeNone {
		return "none"
	}
	names := make([]string, 0, len(roadTypeFlags))
	for _, item := range roadTypeFlags {
		if rt.Has(item.flag) {
			names = append(names, item.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseRoadType converts flag names (as produced by String) to RoadType.
// Unknown names are reported via ok == false
func ParseRoadType(names ...string) (RoadType, bool) {
	rt := RoadTypeNone
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, item := range roadTypeFlags {
			if item.name == name {
				rt |= item.flag
				found = true
				break
			}
		}
		if !found {
			return rt, false
		}
	}
	return rt, true
}
