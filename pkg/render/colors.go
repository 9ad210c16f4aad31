package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the stroke colors keyed off node and edge data. Node
// fill colors come from the data itself; the palette only covers what
// the engine draws on its own.
type Palette struct {
	Background  string `yaml:"background"`
	EdgeGateway string `yaml:"edge_gateway"`
	EdgeSwitch  string `yaml:"edge_switch"`
	EdgeDefault string `yaml:"edge_default"`
	Label       string `yaml:"label"`
}

// DefaultPalette returns the shipped colors: gateway edges get the
// accent, switch edges a neutral mid-tone, everything else stays muted.
func DefaultPalette() Palette {
	return Palette{
		Background:  "#10141a",
		EdgeGateway: "#e67e22",
		EdgeSwitch:  "#7f8c8d",
		EdgeDefault: "#3d4852",
		Label:       "#c8d0da",
	}
}

// Opacity holds the resting and dimmed opacities used by neighbor
// highlighting.
type Opacity struct {
	Node      float64 `yaml:"node" validate:"gte=0,lte=1"`
	Edge      float64 `yaml:"edge" validate:"gte=0,lte=1"`
	EdgeLabel float64 `yaml:"edge_label" validate:"gte=0,lte=1"`
	DimNode   float64 `yaml:"dim_node" validate:"gte=0,lte=1"`
	DimEdge   float64 `yaml:"dim_edge" validate:"gte=0,lte=1"`
}

// DefaultOpacity returns the shipped highlight opacities.
func DefaultOpacity() Opacity {
	return Opacity{
		Node:      1.0,
		Edge:      0.6,
		EdgeLabel: 0.7,
		DimNode:   0.15,
		DimEdge:   0.08,
	}
}

// FillOpacity is the fraction of a node's color used for its interior.
// Every shape fills at quarter strength with a full-strength outline;
// the half-transparent body is the product's visual signature.
const FillOpacity = 0.25

// Blend emulates opacity on an opaque surface: it interpolates a hex
// color toward the background by 1-opacity. Invalid colors fall back to
// the background so bad data degrades instead of breaking the frame.
func Blend(hex, background string, opacity float64) string {
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{}
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return background
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return c.BlendRgb(bg, 1-opacity).Hex()
}
