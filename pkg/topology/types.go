package topology

import (
	"strconv"
	"strings"
)

// NodeType classifies a discovered network entity.
type NodeType string

const (
	NodeGateway NodeType = "gateway"
	NodeSwitch  NodeType = "switch"
	NodeDevice  NodeType = "device"
	NodeSubnet  NodeType = "subnet"
)

// Shape is the render silhouette for a node.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeDiamond
)

// String returns the string representation of a Shape
func (s Shape) String() string {
	switch s {
	case ShapeSquare:
		return "square"
	case ShapeDiamond:
		return "diamond"
	default:
		return "circle"
	}
}

// Shape maps a node type to its silhouette: gateways render as diamonds,
// switches as squares, everything else as circles. Pure function of the
// type, so the same input always draws the same shape.
func (t NodeType) Shape() Shape {
	switch t {
	case NodeGateway:
		return ShapeDiamond
	case NodeSwitch:
		return ShapeSquare
	default:
		return ShapeCircle
	}
}

// EdgeType governs an edge's stroke color and dash pattern.
type EdgeType string

const (
	EdgeGateway EdgeType = "gateway"
	EdgeSwitch  EdgeType = "switch"
	EdgeSubnet  EdgeType = "subnet"
	EdgeOther   EdgeType = "other"
)

// MinNodeSize is the smallest render radius a node may have. Sanitize
// clamps degenerate sizes up to this so one bad record cannot break a
// render pass.
const MinNodeSize = 3.0

// Node is one topology entity as handed to the engine by the discovery
// layer. The engine treats every field as opaque display data; it never
// computes categories or colors itself.
type Node struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Type       NodeType `json:"type"`
	Size       float64  `json:"size"`
	Color      string   `json:"color"`
	IP         string   `json:"ip,omitempty"`
	MAC        string   `json:"mac,omitempty"`
	Hostname   string   `json:"hostname,omitempty"`
	Vendor     string   `json:"vendor,omitempty"`
	Subnet     string   `json:"subnet,omitempty"`
	SwitchPort string   `json:"switch_port,omitempty"`
	OpenPorts  []int    `json:"open_ports,omitempty"`
	Category   string   `json:"bigr_category,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
}

// Shape returns the node's render silhouette.
func (n *Node) Shape() Shape {
	return n.Type.Shape()
}

// Radius returns the effective render radius with the degenerate-size
// clamp applied.
func (n *Node) Radius() float64 {
	if n.Size < MinNodeSize {
		return MinNodeSize
	}
	return n.Size
}

// Edge is one relationship between two nodes, referenced by id.
type Edge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Type   EdgeType `json:"type"`
	Label  string   `json:"label,omitempty"`
}

// Touches reports whether the edge has the given node as either endpoint.
func (e *Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}

// PortList formats the open-ports field for display: a comma-joined list,
// or "None" when the node reported no open ports.
func (n *Node) PortList() string {
	if len(n.OpenPorts) == 0 {
		return "None"
	}
	parts := make([]string, len(n.OpenPorts))
	for i, p := range n.OpenPorts {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
