package roadnet

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Builder turns a topology into road networks.
// A Builder is not safe for concurrent use; create one per goroutine.
type Builder struct {
	logger *log.Logger
	stats  Stats
}

func (builder *Builder) String() string {
	return fmt.Sprintf(`
Road network builder:
	straights: %d
	curves: %d
	crossings: %d
	end_caps: %d
	unresolved_junctions: %d
	networks: %d
	`,
		builder.stats.Straights,
		builder.stats.Curves,
		builder.stats.Crossings,
		builder.stats.EndCaps,
		builder.stats.UnresolvedJunctions,
		builder.stats.Networks,
	)
}

// NewBuilder returns builder. By default nothing is logged
func NewBuilder(options ...func(*Builder)) *Builder {
	builder := &Builder{
		logger: log.New(io.Discard),
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

// WithLogger sets logger for build progress and unsupported junction warnings
func WithLogger(logger *log.Logger) func(*Builder) {
	return func(builder *Builder) {
		if logger != nil {
			builder.logger = logger
		}
	}
}

// Build produces road networks for the topology: straight segments for edges, curves and crossings
// at junctions, end caps at dead ends, then connected components per template.
// The topology is only read. Building the same topology twice gives equal results.
func (builder *Builder) Build(topology *Topology) []*Network {
	builder.stats = Stats{}
	st := time.Now()

	set := &segmentSet{}
	edgeSegments := buildEdgeSegments(topology, set)
	builder.stats.Straights = len(edgeSegments)
	builder.logger.Debug("Straight segments created", "edges", len(topology.Edges), "segments", set.len())

	resolver := &junctionResolver{
		set:          set,
		edgeSegments: edgeSegments,
		logger:       builder.logger,
		stats:        &builder.stats,
	}
	resolver.insertNodeSegments(topology)
	resolver.insertEndCapSegments(topology)
	builder.logger.Debug("Junctions resolved", "curves", builder.stats.Curves, "crossings", builder.stats.Crossings, "end_caps", builder.stats.EndCaps)

	networks := buildNetworks(topology, set, edgeSegments)
	builder.stats.Networks = len(networks)
	builder.logger.Info("Road networks built", "networks", len(networks), "segments", set.len(), "elapsed", time.Since(st).Round(time.Millisecond))
	return networks
}

// Stats returns counters of the last Build call
func (builder *Builder) Stats() Stats {
	return builder.stats
}

// BuildNetworks is a shortcut for NewBuilder(options...).Build(topology)
func BuildNetworks(topology *Topology, options ...func(*Builder)) []*Network {
	return NewBuilder(options...).Build(topology)
}
