package render

import (
	"testing"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

func sceneFixture(t *testing.T) (*topology.Graph, map[string]layout.Position) {
	t.Helper()
	g, _ := topology.NewGraph(
		[]topology.Node{
			{ID: "gw", Label: "Gateway", Type: topology.NodeGateway, Size: 14, Color: "#e74c3c"},
			{ID: "sw", Label: "Switch", Type: topology.NodeSwitch, Size: 12, Color: "#3498db"},
			{ID: "dev", Label: "Printer", Type: topology.NodeDevice, Size: 8, Color: "#2ecc71"},
		},
		[]topology.Edge{
			{Source: "gw", Target: "sw", Type: topology.EdgeGateway},
			{Source: "sw", Target: "dev", Type: topology.EdgeSwitch},
			{Source: "gw", Target: "dev", Type: topology.EdgeSubnet, Label: "10.0.0.0/24"},
		},
	)
	positions := map[string]layout.Position{
		"gw":  {X: 100, Y: 100},
		"sw":  {X: 300, Y: 100},
		"dev": {X: 200, Y: 250},
	}
	return g, positions
}

func defaultBuilder() *Builder {
	return NewBuilder(DefaultPalette(), DefaultOpacity())
}

func TestBuildProjectsThroughTransform(t *testing.T) {
	g, pos := sceneFixture(t)
	tr := viewport.Transform{Scale: 2, TX: 10, TY: -5}

	scene := defaultBuilder().Build(g, pos, tr, "", 800, 600)

	var gw *NodeDraw
	for i := range scene.Nodes {
		if scene.Nodes[i].ID == "gw" {
			gw = &scene.Nodes[i]
		}
	}
	if gw == nil {
		t.Fatal("gw missing from scene")
	}
	if gw.X != 210 || gw.Y != 195 {
		t.Errorf("gw projected to (%f, %f), want (210, 195)", gw.X, gw.Y)
	}
	if gw.Radius != 28 {
		t.Errorf("gw radius %f, want 28 (size × scale)", gw.Radius)
	}
}

func TestRestingOpacities(t *testing.T) {
	g, pos := sceneFixture(t)
	scene := defaultBuilder().Build(g, pos, viewport.Identity(), "", 800, 600)

	for _, n := range scene.Nodes {
		if n.Opacity != 1.0 {
			t.Errorf("node %s resting opacity %f, want 1.0", n.ID, n.Opacity)
		}
	}
	for i, e := range scene.Edges {
		if e.Opacity != 0.6 {
			t.Errorf("edge %d resting opacity %f, want 0.6", i, e.Opacity)
		}
		if e.LabelOpacity != 0.7 {
			t.Errorf("edge %d label opacity %f, want 0.7", i, e.LabelOpacity)
		}
	}
}

func TestHoverDimsNonNeighbors(t *testing.T) {
	g, pos := sceneFixture(t)
	// dev connects to sw and gw (subnet edge), so hovering dev keeps
	// everything lit except edges not touching dev.
	scene := defaultBuilder().Build(g, pos, viewport.Identity(), "sw", 800, 600)

	for _, n := range scene.Nodes {
		switch n.ID {
		case "sw", "gw", "dev":
			// gw and dev both share an edge with sw
			if n.Opacity != 1.0 {
				t.Errorf("highlighted node %s opacity %f", n.ID, n.Opacity)
			}
		}
	}
	for _, e := range scene.Edges {
		touchesSw := e.Color != DefaultPalette().EdgeDefault // subnet edge is gw–dev
		if e.Dashed {
			// The gw–dev subnet edge does not touch sw: near-transparent.
			if e.Opacity != 0.08 {
				t.Errorf("untouched edge opacity %f, want 0.08", e.Opacity)
			}
		} else if touchesSw && e.Opacity != 0.6 {
			t.Errorf("touched edge opacity %f, want 0.6", e.Opacity)
		}
	}
}

func TestHoverDimsIsolatedNode(t *testing.T) {
	g, _ := topology.NewGraph(
		[]topology.Node{
			{ID: "a", Type: topology.NodeDevice, Size: 8},
			{ID: "b", Type: topology.NodeDevice, Size: 8},
		},
		nil,
	)
	pos := map[string]layout.Position{"a": {X: 10, Y: 10}, "b": {X: 50, Y: 50}}
	scene := defaultBuilder().Build(g, pos, viewport.Identity(), "a", 100, 100)

	for _, n := range scene.Nodes {
		switch n.ID {
		case "a":
			if n.Opacity != 1.0 {
				t.Errorf("hovered node dimmed to %f", n.Opacity)
			}
		case "b":
			if n.Opacity != 0.15 {
				t.Errorf("unrelated node opacity %f, want 0.15", n.Opacity)
			}
		}
	}
}

func TestSubnetEdgesDashed(t *testing.T) {
	g, pos := sceneFixture(t)
	scene := defaultBuilder().Build(g, pos, viewport.Identity(), "", 800, 600)

	dashed := 0
	for _, e := range scene.Edges {
		if e.Dashed {
			dashed++
		}
	}
	if dashed != 1 {
		t.Errorf("%d dashed edges, want exactly the subnet edge", dashed)
	}
}

func TestEdgeColorsByType(t *testing.T) {
	g, pos := sceneFixture(t)
	pal := DefaultPalette()
	scene := NewBuilder(pal, DefaultOpacity()).Build(g, pos, viewport.Identity(), "", 800, 600)

	colors := map[string]int{}
	for _, e := range scene.Edges {
		colors[e.Color]++
	}
	if colors[pal.EdgeGateway] != 1 || colors[pal.EdgeSwitch] != 1 || colors[pal.EdgeDefault] != 1 {
		t.Errorf("edge color distribution %v", colors)
	}
}

func TestSceneShapeMatchesNodeType(t *testing.T) {
	g, pos := sceneFixture(t)
	scene := defaultBuilder().Build(g, pos, viewport.Identity(), "", 800, 600)

	want := map[string]topology.Shape{
		"gw":  topology.ShapeDiamond,
		"sw":  topology.ShapeSquare,
		"dev": topology.ShapeCircle,
	}
	for _, n := range scene.Nodes {
		if n.Shape != want[n.ID] {
			t.Errorf("node %s shape %v, want %v", n.ID, n.Shape, want[n.ID])
		}
	}
}

func TestEmptyGraphScene(t *testing.T) {
	g, _ := topology.NewGraph(nil, nil)
	scene := defaultBuilder().Build(g, nil, viewport.Identity(), "", 800, 600)
	if len(scene.Nodes) != 0 || len(scene.Edges) != 0 {
		t.Error("empty graph produced drawables")
	}
}

func TestBlend(t *testing.T) {
	// Full opacity keeps the color; zero opacity lands on the background.
	if got := Blend("#ffffff", "#000000", 1.0); got != "#ffffff" {
		t.Errorf("Blend full = %s", got)
	}
	if got := Blend("#ffffff", "#000000", 0.0); got != "#000000" {
		t.Errorf("Blend zero = %s", got)
	}
	// Invalid input degrades to the background, never an error.
	if got := Blend("not-a-color", "#101010", 0.5); got != "#101010" {
		t.Errorf("Blend invalid = %s", got)
	}
}
