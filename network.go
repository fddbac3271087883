package roadnet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// networkNamespace seeds deterministic network identifiers
var networkNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/LdDl/roadnet/network"))

// Network is a maximal connected set of segments sharing one template. Immutable once built
type Network struct {
	ID       uuid.UUID
	Template *Template
	segments []SegmentID
	set      *segmentSet
}

func newNetwork(tpl *Template, set *segmentSet) *Network {
	return &Network{
		Template: tpl,
		segments: make([]SegmentID, 0),
		set:      set,
	}
}

// assignID derives identifier from template name and position of the network among networks
// of its template. Both depend only on edges of that template, so rebuilding the same topology
// or dropping other templates keeps the identifiers.
func (net *Network) assignID(ordinal int) {
	net.ID = uuid.NewSHA1(networkNamespace, []byte(fmt.Sprintf("%s:%d", net.Template.Name, ordinal)))
}

// Len returns number of segments
func (net *Network) Len() int {
	return len(net.segments)
}

// Segments returns segments in traversal order. The slice is a copy, the segments are shared
func (net *Network) Segments() []*Segment {
	result := make([]*Segment, len(net.segments))
	for i, id := range net.segments {
		result[i] = net.set.get(id)
	}
	return result
}

// Lookup resolves an end-point link target. Returns nil for NoSegment
func (net *Network) Lookup(id SegmentID) *Segment {
	return net.set.get(id)
}

// Contains reports whether the segment belongs to the network
func (net *Network) Contains(id SegmentID) bool {
	for _, segID := range net.segments {
		if segID == id {
			return true
		}
	}
	return false
}

// CountKind returns number of segments of given kind
func (net *Network) CountKind(kind SegmentKind) int {
	count := 0
	for _, id := range net.segments {
		if net.set.get(id).Kind == kind {
			count++
		}
	}
	return count
}

// ExportNetworksCSV writes segments of all networks to single CSV file (';' separated, WKT geometry)
func ExportNetworksCSV(networks []*Network, fname string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"network_id", "template", "segment_id", "kind", "edge_id", "node_id", "links", "length", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, net := range networks {
		for _, seg := range net.Segments() {
			err = writer.Write(segmentCSVRecord(net, seg))
			if err != nil {
				return errors.Wrap(err, "Can't write segment")
			}
		}
	}
	return nil
}

func segmentCSVRecord(net *Network, seg *Segment) []string {
	edgeID := -1
	if seg.Edge != nil {
		edgeID = seg.Edge.ID
	}
	nodeID := -1
	if seg.Node != nil {
		nodeID = seg.Node.ID
	}
	links := make([]string, len(seg.EndPoints))
	for i, ep := range seg.EndPoints {
		links[i] = fmt.Sprintf("%d", ep.To)
	}
	return []string{
		net.ID.String(),
		net.Template.Name,
		fmt.Sprintf("%d", seg.ID),
		seg.Kind.String(),
		fmt.Sprintf("%d", edgeID),
		fmt.Sprintf("%d", nodeID),
		strings.Join(links, ","),
		fmt.Sprintf("%f", seg.Length()),
		wkt.MarshalString(segmentGeometry(seg)),
	}
}
