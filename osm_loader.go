package roadnet

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMImportConfig filters and styles roads imported from OpenStreetMap data
type OSMImportConfig struct {
	// Highway values to import. Empty means every known highway type
	Highways []string
	// Templates overriding defaults derived from highway type, matched by name
	Templates []*Template
	// Close dead ends with end caps
	EndCaps bool
	Logger  *log.Logger
}

func (cfg *OSMImportConfig) allows(highway string) bool {
	if getHighwayType(highway) == 0 {
		return false
	}
	if len(cfg.Highways) == 0 {
		return true
	}
	for _, allowed := range cfg.Highways {
		if allowed == highway {
			return true
		}
	}
	return false
}

func (cfg *OSMImportConfig) template(highway string) *Template {
	for _, tpl := range cfg.Templates {
		if tpl.Name == highway {
			return tpl
		}
	}
	return templateForHighway(highway)
}

type osmRoad struct {
	id      osm.WayID
	highway string
	nodes   []osm.NodeID
}

// ImportTopologyOSM reads ways tagged with `highway` from *.osm, *.xml or *.pbf file.
// Every pair of consecutive way nodes becomes an edge, the highway value becomes the template.
// Positions are web mercator meters, height is zero.
func ImportTopologyOSM(ctx context.Context, filename string, cfg *OSMImportConfig) (*Topology, error) {
	if cfg == nil {
		cfg = &OSMImportConfig{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open OSM file")
	}
	defer file.Close()

	roads, nodesSeen, err := scanRoads(ctx, file, filename, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan ways")
	}
	logger.Debug("Ways scanned", "roads", len(roads), "nodes", len(nodesSeen))

	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}
	positions, err := scanNodes(ctx, file, filename, nodesSeen)
	if err != nil {
		return nil, errors.Wrap(err, "Can't scan nodes")
	}
	logger.Debug("Nodes scanned", "nodes", len(positions))

	return roadsToTopology(roads, positions, cfg)
}

func newOSMScanner(ctx context.Context, file io.Reader, filename string) (OSMScanner, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return osmxml.New(ctx, file), nil
	case ".pbf":
		return osmpbf.New(ctx, file, 4), nil
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

func scanRoads(ctx context.Context, file io.Reader, filename string, cfg *OSMImportConfig) ([]osmRoad, map[osm.NodeID]struct{}, error) {
	scanner, err := newOSMScanner(ctx, file, filename)
	if err != nil {
		return nil, nil, err
	}
	defer scanner.Close()

	roads := []osmRoad{}
	nodesSeen := make(map[osm.NodeID]struct{})
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		highway := way.Tags.Find("highway")
		if !cfg.allows(highway) {
			continue
		}
		// Ignore ways with `area` tag provided
		if area := way.Tags.Find("area"); area != "" && area != "no" {
			continue
		}
		road := osmRoad{
			id:      way.ID,
			highway: highway,
			nodes:   make([]osm.NodeID, 0, len(way.Nodes)),
		}
		for _, node := range way.Nodes {
			nodesSeen[node.ID] = struct{}{}
			road.nodes = append(road.nodes, node.ID)
		}
		roads = append(roads, road)
	}
	return roads, nodesSeen, scanner.Err()
}

func scanNodes(ctx context.Context, file io.Reader, filename string, nodesSeen map[osm.NodeID]struct{}) (map[osm.NodeID]orb.Point, error) {
	scanner, err := newOSMScanner(ctx, file, filename)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	positions := make(map[osm.NodeID]orb.Point, len(nodesSeen))
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, ok := nodesSeen[node.ID]; !ok {
			continue
		}
		positions[node.ID] = pointToEuclidean(node.Point())
	}
	return positions, scanner.Err()
}

func roadsToTopology(roads []osmRoad, positions map[osm.NodeID]orb.Point, cfg *OSMImportConfig) (*Topology, error) {
	// Degree is needed upfront: edges are immutable, end cap flags must be known when adding them
	degree := make(map[osm.NodeID]int)
	for _, road := range roads {
		for i := 1; i < len(road.nodes); i++ {
			if road.nodes[i-1] == road.nodes[i] {
				continue
			}
			degree[road.nodes[i-1]]++
			degree[road.nodes[i]]++
		}
	}

	topology := NewTopology()
	nodes := make(map[osm.NodeID]*Node)
	getNode := func(id osm.NodeID) (*Node, error) {
		if node, ok := nodes[id]; ok {
			return node, nil
		}
		pt, ok := positions[id]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownNode, "OSM node %d", id)
		}
		node := topology.AddNode(vectorFromXY(pt, 0))
		nodes[id] = node
		return node, nil
	}
	endType := func(id osm.NodeID, base RoadType) RoadType {
		if cfg.EndCaps && degree[id] == 1 {
			return base | RoadTypeEndCap
		}
		return base
	}

	for _, road := range roads {
		tpl, ok := topology.Template(road.highway)
		if !ok {
			tpl = cfg.template(road.highway)
			if err := topology.AddTemplate(tpl); err != nil {
				return nil, errors.Wrapf(err, "template '%s'", road.highway)
			}
		}
		base := RoadTypeNone
		if isTightCurveHighway(strings.ToLower(road.highway)) {
			base = RoadTypeTightCurve
		}
		for i := 1; i < len(road.nodes); i++ {
			if road.nodes[i-1] == road.nodes[i] {
				continue
			}
			start, err := getNode(road.nodes[i-1])
			if err != nil {
				return nil, errors.Wrapf(err, "way %d", road.id)
			}
			end, err := getNode(road.nodes[i])
			if err != nil {
				return nil, errors.Wrapf(err, "way %d", road.id)
			}
			_, err = topology.AddEdge(start, end, tpl, endType(road.nodes[i-1], base), endType(road.nodes[i], base))
			if err != nil {
				return nil, errors.Wrapf(err, "way %d", road.id)
			}
		}
	}
	return topology, nil
}
