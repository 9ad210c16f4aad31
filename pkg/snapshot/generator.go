package snapshot

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

var deviceVendors = []string{"Cisco", "Netgear", "TP-Link", "Ubiquiti", "HP", "Dell", "Raspberry Pi"}

var deviceCategories = []string{"workstation", "printer", "camera", "phone", "iot", "server", "nas"}

// Generator produces synthetic office-network topologies: one gateway,
// a layer of switches, subnets hanging off the gateway, and devices
// spread across the switches. Seeded, so the same seed always yields
// the same network.
type Generator struct {
	rng     *rand.Rand
	nodes   []topology.Node
	edges   []topology.Edge
	counter int
}

// NewGenerator builds the initial topology with roughly the requested
// device count.
func NewGenerator(devices int, seed int64) *Generator {
	if devices < 0 {
		devices = 0
	}
	g := &Generator{rng: rand.New(rand.NewSource(seed))}
	g.build(devices)
	return g
}

func (g *Generator) build(devices int) {
	gatewayID := g.newID()
	g.nodes = append(g.nodes, topology.Node{
		ID:         gatewayID,
		Label:      "Gateway",
		Type:       topology.NodeGateway,
		Size:       16,
		Color:      "#e67e22",
		IP:         "192.168.1.1",
		Vendor:     "Cisco",
		Confidence: 1,
	})

	switches := 1 + devices/12
	switchIDs := make([]string, 0, switches)
	for i := 0; i < switches; i++ {
		id := g.newID()
		switchIDs = append(switchIDs, id)
		g.nodes = append(g.nodes, topology.Node{
			ID:         id,
			Label:      fmt.Sprintf("Switch %d", i+1),
			Type:       topology.NodeSwitch,
			Size:       12,
			Color:      "#3498db",
			IP:         fmt.Sprintf("192.168.1.%d", 2+i),
			Vendor:     "Netgear",
			Confidence: 1,
		})
		g.edges = append(g.edges, topology.Edge{
			Source: gatewayID,
			Target: id,
			Type:   topology.EdgeGateway,
		})
	}

	subnets := 1 + devices/16
	for i := 0; i < subnets; i++ {
		id := g.newID()
		cidr := fmt.Sprintf("10.0.%d.0/24", i)
		g.nodes = append(g.nodes, topology.Node{
			ID:         id,
			Label:      cidr,
			Type:       topology.NodeSubnet,
			Size:       8,
			Color:      "#9b59b6",
			Subnet:     cidr,
			Confidence: 1,
		})
		g.edges = append(g.edges, topology.Edge{
			Source: gatewayID,
			Target: id,
			Type:   topology.EdgeSubnet,
			Label:  cidr,
		})
	}

	for i := 0; i < devices; i++ {
		g.addDevice(switchIDs[g.rng.Intn(len(switchIDs))])
	}
}

func (g *Generator) addDevice(switchID string) {
	g.counter++
	id := g.newID()
	category := deviceCategories[g.rng.Intn(len(deviceCategories))]
	g.nodes = append(g.nodes, topology.Node{
		ID:         id,
		Label:      fmt.Sprintf("%s-%d", category, g.counter),
		Type:       topology.NodeDevice,
		Size:       4 + g.rng.Float64()*6,
		Color:      "#2ecc71",
		IP:         fmt.Sprintf("192.168.1.%d", 10+g.counter%240),
		Vendor:     deviceVendors[g.rng.Intn(len(deviceVendors))],
		Category:   category,
		Confidence: 0.5 + g.rng.Float64()*0.5,
	})
	g.edges = append(g.edges, topology.Edge{
		Source: switchID,
		Target: id,
		Type:   topology.EdgeSwitch,
	})
}

// newID derives a deterministic UUID from the seeded stream.
func (g *Generator) newID() string {
	var raw [16]byte
	g.rng.Read(raw[:])
	id, err := uuid.FromBytes(raw[:])
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Document returns the current topology in wire form.
func (g *Generator) Document() *Document {
	return DocumentFromGraph(g.nodes, g.edges)
}

// Graph returns the sanitized current topology.
func (g *Generator) Graph() (*topology.Graph, topology.SanitizeReport) {
	return topology.NewGraph(g.nodes, g.edges)
}

// Mutate evolves the topology one step: usually a new device appears,
// occasionally one drops off. Switches, subnets and the gateway are
// stable.
func (g *Generator) Mutate() {
	if g.rng.Float64() < 0.7 || len(g.nodes) < 4 {
		var switchIDs []string
		for _, n := range g.nodes {
			if n.Type == topology.NodeSwitch {
				switchIDs = append(switchIDs, n.ID)
			}
		}
		if len(switchIDs) == 0 {
			return
		}
		g.addDevice(switchIDs[g.rng.Intn(len(switchIDs))])
		return
	}

	var deviceIdx []int
	for i, n := range g.nodes {
		if n.Type == topology.NodeDevice {
			deviceIdx = append(deviceIdx, i)
		}
	}
	if len(deviceIdx) == 0 {
		return
	}
	victim := g.nodes[deviceIdx[g.rng.Intn(len(deviceIdx))]].ID
	nodes := g.nodes[:0]
	for _, n := range g.nodes {
		if n.ID != victim {
			nodes = append(nodes, n)
		}
	}
	g.nodes = nodes
	edges := g.edges[:0]
	for _, e := range g.edges {
		if !e.Touches(victim) {
			edges = append(edges, e)
		}
	}
	g.edges = edges
}

// GeneratorSource adapts a Generator to the Source interface, emitting
// an evolving topology on a fixed interval. Interval zero emits one
// snapshot and stops.
type GeneratorSource struct {
	gen      *Generator
	interval time.Duration
	metrics  *metrics.Registry

	updates chan Update
	done    chan struct{}
	once    sync.Once
}

// NewGeneratorSource starts the synthetic feed.
func NewGeneratorSource(devices int, seed int64, interval time.Duration, m *metrics.Registry) *GeneratorSource {
	s := &GeneratorSource{
		gen:      NewGenerator(devices, seed),
		interval: interval,
		metrics:  reg(m),
		updates:  make(chan Update, 1),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

// Updates returns the delivery channel.
func (s *GeneratorSource) Updates() <-chan Update { return s.updates }

// Close stops the feed.
func (s *GeneratorSource) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *GeneratorSource) run() {
	defer close(s.updates)

	s.emit()
	if s.interval <= 0 {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.gen.Mutate()
			s.emit()
		}
	}
}

func (s *GeneratorSource) emit() {
	graph, report := s.gen.Graph()
	s.metrics.RecordSnapshot("generator", "ok", 0)
	select {
	case s.updates <- Update{Graph: graph, Report: DecodeReport{Sanitize: report}, Origin: "generator"}:
	case <-s.done:
	default:
		select {
		case <-s.updates:
		default:
		}
		select {
		case s.updates <- Update{Graph: graph, Report: DecodeReport{Sanitize: report}, Origin: "generator"}:
		default:
		}
	}
}
