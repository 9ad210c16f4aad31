package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

func sampleDocument() *Document {
	return &Document{
		Version: WireVersion,
		Nodes: []WireNode{
			{ID: "gw", Label: "Gateway", Type: "gateway", Size: 14, IP: "192.168.1.1", Confidence: 1},
			{ID: "sw", Label: "Switch", Type: "switch", Size: 12, Confidence: 1},
			{ID: "dev", Label: "Printer", Type: "device", Size: 8, Subnet: "10.0.0.0/24", Confidence: 0.9},
		},
		Edges: []WireEdge{
			{Source: "gw", Target: "sw", Type: "gateway"},
			{Source: "sw", Target: "dev", Type: "switch"},
		},
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	data, err := Encode(sampleDocument())
	if err != nil {
		t.Fatal(err)
	}
	graph, report, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(graph.Nodes) != 3 || len(graph.Edges) != 2 {
		t.Fatalf("graph %d nodes %d edges", len(graph.Nodes), len(graph.Edges))
	}
	if report.InvalidNodes != 0 || report.InvalidEdges != 0 {
		t.Errorf("report %+v", report)
	}
	n, ok := graph.Node("gw")
	if !ok || n.Type != topology.NodeGateway || n.IP != "192.168.1.1" {
		t.Errorf("gateway decoded as %+v", n)
	}
}

func TestDecodeSkipsInvalidRecords(t *testing.T) {
	doc := sampleDocument()
	doc.Nodes = append(doc.Nodes,
		WireNode{ID: "", Type: "device"},                         // missing id
		WireNode{ID: "bad-type", Type: "toaster"},                // unknown type
		WireNode{ID: "bad-ip", Type: "device", IP: "999.1.1.1"},  // invalid ip
		WireNode{ID: "bad-conf", Type: "device", Confidence: 2},  // out of range
		WireNode{ID: "bad-port", Type: "device", OpenPorts: []int{70000}},
	)
	doc.Edges = append(doc.Edges,
		WireEdge{Source: "", Target: "dev"},       // missing source
		WireEdge{Source: "gw", Target: "ghost"},   // valid record, dangling target
	)

	data, _ := Encode(doc)
	graph, report, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if report.InvalidNodes != 5 {
		t.Errorf("invalid nodes = %d, want 5", report.InvalidNodes)
	}
	if report.InvalidEdges != 1 {
		t.Errorf("invalid edges = %d, want 1", report.InvalidEdges)
	}
	// The dangling edge passes record validation but falls to sanitize.
	if report.Sanitize.DroppedEdges != 1 {
		t.Errorf("dropped edges = %d, want 1", report.Sanitize.DroppedEdges)
	}
	if len(graph.Nodes) != 3 || len(graph.Edges) != 2 {
		t.Errorf("graph %d nodes %d edges", len(graph.Nodes), len(graph.Edges))
	}
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	doc := sampleDocument()
	doc.Version = 2
	data, _ := json.Marshal(doc)
	if _, _, err := Decode(data); err == nil {
		t.Fatal("expected version error")
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, _, err := Decode([]byte(`{"version": 1, "nodes": [`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDecodeEmptyTypeDefaultsToOther(t *testing.T) {
	doc := sampleDocument()
	doc.Edges = append(doc.Edges, WireEdge{Source: "gw", Target: "dev"})
	data, _ := Encode(doc)
	graph, _, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, e := range graph.Edges {
		if e.Source == "gw" && e.Target == "dev" {
			found = true
			if e.Type != topology.EdgeOther {
				t.Errorf("untyped edge decoded as %q", e.Type)
			}
		}
	}
	if !found {
		t.Fatal("untyped edge missing from graph")
	}
}

func TestDocumentFromGraphRoundTrip(t *testing.T) {
	doc := sampleDocument()
	data, _ := Encode(doc)
	graph, _, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	again := DocumentFromGraph(graph.Nodes, graph.Edges)
	data2, _ := Encode(again)
	graph2, _, err := Decode(data2)
	if err != nil {
		t.Fatal(err)
	}
	if len(graph2.Nodes) != len(graph.Nodes) || len(graph2.Edges) != len(graph.Edges) {
		t.Errorf("round trip changed sizes: %d/%d vs %d/%d",
			len(graph2.Nodes), len(graph2.Edges), len(graph.Nodes), len(graph.Edges))
	}
}
