package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// WireVersion is the snapshot document version this decoder accepts.
const WireVersion = 1

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Document is the on-the-wire snapshot format: a full description of
// the network at one instant. Feeds always send complete documents,
// never deltas.
type Document struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generated_at"`
	Nodes       []WireNode `json:"nodes"`
	Edges       []WireEdge `json:"edges"`
}

// WireNode is one discovered entity in a snapshot document.
type WireNode struct {
	ID         string  `json:"id" validate:"required"`
	Label      string  `json:"label"`
	Type       string  `json:"type" validate:"required,oneof=gateway switch device subnet"`
	Size       float64 `json:"size" validate:"gte=0"`
	Color      string  `json:"color"`
	IP         string  `json:"ip" validate:"omitempty,ip"`
	MAC        string  `json:"mac" validate:"omitempty,mac"`
	Hostname   string  `json:"hostname"`
	Vendor     string  `json:"vendor"`
	Subnet     string  `json:"subnet" validate:"omitempty,cidr"`
	SwitchPort string  `json:"switch_port"`
	OpenPorts  []int   `json:"open_ports" validate:"dive,gte=1,lte=65535"`
	Category   string  `json:"bigr_category"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// WireEdge is one connection in a snapshot document.
type WireEdge struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
	Type   string `json:"type" validate:"omitempty,oneof=gateway switch subnet other"`
	Label  string `json:"label"`
}

// DecodeReport counts what the decoder had to discard.
type DecodeReport struct {
	InvalidNodes int
	InvalidEdges int
	Sanitize     topology.SanitizeReport
}

// Decode parses and validates a snapshot document, then builds the
// sanitized graph. Individual invalid records are skipped rather than
// failing the whole snapshot; only a malformed document or a version
// mismatch is fatal.
func Decode(data []byte) (*topology.Graph, DecodeReport, error) {
	var report DecodeReport

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, report, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version != WireVersion {
		return nil, report, fmt.Errorf("unsupported snapshot version %d", doc.Version)
	}

	nodes := make([]topology.Node, 0, len(doc.Nodes))
	for i := range doc.Nodes {
		if err := validate.Struct(&doc.Nodes[i]); err != nil {
			report.InvalidNodes++
			logging.Warn("skipping invalid node record",
				logging.NodeID(doc.Nodes[i].ID),
				logging.Error(err))
			continue
		}
		nodes = append(nodes, doc.Nodes[i].toNode())
	}

	edges := make([]topology.Edge, 0, len(doc.Edges))
	for i := range doc.Edges {
		if err := validate.Struct(&doc.Edges[i]); err != nil {
			report.InvalidEdges++
			logging.Warn("skipping invalid edge record", logging.Error(err))
			continue
		}
		edges = append(edges, doc.Edges[i].toEdge())
	}

	graph, sanitize := topology.NewGraph(nodes, edges)
	report.Sanitize = sanitize
	return graph, report, nil
}

// Encode serializes a snapshot document for transport or storage.
func Encode(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

// DocumentFromGraph converts a graph back to the wire format, used by
// the feed daemon and test fixtures.
func DocumentFromGraph(nodes []topology.Node, edges []topology.Edge) *Document {
	doc := &Document{
		Version:     WireVersion,
		GeneratedAt: time.Now().UTC(),
		Nodes:       make([]WireNode, 0, len(nodes)),
		Edges:       make([]WireEdge, 0, len(edges)),
	}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, WireNode{
			ID:         n.ID,
			Label:      n.Label,
			Type:       string(n.Type),
			Size:       n.Size,
			Color:      n.Color,
			IP:         n.IP,
			MAC:        n.MAC,
			Hostname:   n.Hostname,
			Vendor:     n.Vendor,
			Subnet:     n.Subnet,
			SwitchPort: n.SwitchPort,
			OpenPorts:  n.OpenPorts,
			Category:   n.Category,
			Confidence: n.Confidence,
		})
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, WireEdge{
			Source: e.Source,
			Target: e.Target,
			Type:   string(e.Type),
			Label:  e.Label,
		})
	}
	return doc
}

func (w *WireNode) toNode() topology.Node {
	return topology.Node{
		ID:         w.ID,
		Label:      w.Label,
		Type:       topology.NodeType(w.Type),
		Size:       w.Size,
		Color:      w.Color,
		IP:         w.IP,
		MAC:        w.MAC,
		Hostname:   w.Hostname,
		Vendor:     w.Vendor,
		Subnet:     w.Subnet,
		SwitchPort: w.SwitchPort,
		OpenPorts:  w.OpenPorts,
		Category:   w.Category,
		Confidence: w.Confidence,
	}
}

func (w *WireEdge) toEdge() topology.Edge {
	t := topology.EdgeType(w.Type)
	if w.Type == "" {
		t = topology.EdgeOther
	}
	return topology.Edge{
		Source: w.Source,
		Target: w.Target,
		Type:   t,
		Label:  w.Label,
	}
}
