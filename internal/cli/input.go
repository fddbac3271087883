package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/LdDl/roadnet"
)

// input is a loaded topology together with the knowledge of its coordinate system
type input struct {
	topology *roadnet.Topology
	// Positions are web mercator meters (OSM import)
	mercator bool
}

func loadInput(ctx context.Context, path string, cfg *Config) (*input, error) {
	logger := loggerFromContext(ctx)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml":
		st := startStage(logger, "Topology read")
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "Can't open topology")
		}
		defer file.Close()
		topology, err := roadnet.ReadTopologyTOML(file)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't read topology '%s'", path)
		}
		st.topologyDone(topology)
		return &input{topology: topology}, nil
	case ".osm", ".xml", ".pbf":
		st := startStage(logger, "OSM imported")
		osmCfg := cfg.osmImportConfig()
		osmCfg.Logger = logger
		topology, err := roadnet.ImportTopologyOSM(ctx, path, osmCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't import OSM '%s'", path)
		}
		st.topologyDone(topology)
		return &input{topology: topology, mercator: true}, nil
	default:
		return nil, fmt.Errorf("unsupported input extension '%s' (expected .toml, .osm, .xml or .pbf)", ext)
	}
}

// buildInput loads topology and builds its networks
func buildInput(ctx context.Context, path string, cfg *Config) (*input, []*roadnet.Network, roadnet.Stats, error) {
	in, err := loadInput(ctx, path, cfg)
	if err != nil {
		return nil, nil, roadnet.Stats{}, err
	}
	logger := loggerFromContext(ctx)
	builder := roadnet.NewBuilder(roadnet.WithLogger(logger))
	networks := builder.Build(in.topology)
	return in, networks, builder.Stats(), nil
}
