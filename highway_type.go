package roadnet

import "strings"

type HighwayType uint16

const (
	HIGHWAY_MOTORWAY = HighwayType(iota + 1)
	HIGHWAY_MOTORWAY_LINK
	HIGHWAY_TRUNK
	HIGHWAY_TRUNK_LINK
	HIGHWAY_PRIMARY
	HIGHWAY_PRIMARY_LINK
	HIGHWAY_SECONDARY
	HIGHWAY_SECONDARY_LINK
	HIGHWAY_TERTIARY
	HIGHWAY_TERTIARY_LINK
	HIGHWAY_RESIDENTIAL
	HIGHWAY_RESIDENTIAL_LINK
	HIGHWAY_LIVING_STREET
	HIGHWAY_SERVICE
	HIGHWAY_SERVICES
	HIGHWAY_CYCLEWAY
	HIGHWAY_FOOTWAY
	HIGHWAY_PEDESTRIAN
	HIGHWAY_STEPS
	HIGHWAY_TRACK
	HIGHWAY_UNCLASSIFIED
)

func (iotaIdx HighwayType) String() string {
	return [...]string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "residential_link", "living_street", "service", "services", "cycleway", "footway", "pedestrian", "steps", "track", "unclassified"}[iotaIdx-1]
}

func getHighwayType(str string) HighwayType {
	if found, ok := highwaysTypes[str]; ok {
		return found
	}
	return 0
}

const laneWidth = 3.5

var (
	// Default number of lanes (both directions) used to derive template road width
	defaultLanesByHighway = map[HighwayType]int{
		HIGHWAY_MOTORWAY:         4,
		HIGHWAY_MOTORWAY_LINK:    1,
		HIGHWAY_TRUNK:            3,
		HIGHWAY_TRUNK_LINK:       1,
		HIGHWAY_PRIMARY:          3,
		HIGHWAY_PRIMARY_LINK:     1,
		HIGHWAY_SECONDARY:        2,
		HIGHWAY_SECONDARY_LINK:   1,
		HIGHWAY_TERTIARY:         2,
		HIGHWAY_TERTIARY_LINK:    1,
		HIGHWAY_RESIDENTIAL:      2,
		HIGHWAY_RESIDENTIAL_LINK: 1,
		HIGHWAY_LIVING_STREET:    1,
		HIGHWAY_SERVICE:          1,
		HIGHWAY_SERVICES:         1,
		HIGHWAY_CYCLEWAY:         1,
		HIGHWAY_FOOTWAY:          1,
		HIGHWAY_PEDESTRIAN:       1,
		HIGHWAY_STEPS:            1,
		HIGHWAY_TRACK:            1,
		HIGHWAY_UNCLASSIFIED:     1,
	}
)

var highwaysTypes = func() map[string]HighwayType {
	result := make(map[string]HighwayType, HIGHWAY_UNCLASSIFIED)
	for highwayType := HIGHWAY_MOTORWAY; highwayType <= HIGHWAY_UNCLASSIFIED; highwayType++ {
		result[highwayType.String()] = highwayType
	}
	return result
}()

// templateForHighway returns template for OSM highway value. Unknown values give nil
func templateForHighway(highway string) *Template {
	highwayType := getHighwayType(highway)
	if highwayType == 0 {
		return nil
	}
	tpl := NewTemplate(highwayType.String())
	tpl.RoadWidth = float64(defaultLanesByHighway[highwayType]) * laneWidth
	return tpl
}

// isTightCurveHighway reports whether roads of given highway type use tight curves
func isTightCurveHighway(highway string) bool {
	highwayType := getHighwayType(highway)
	// Ramps and connectors turn sharply
	return highwayType != 0 && strings.HasSuffix(highwayType.String(), "_link")
}
