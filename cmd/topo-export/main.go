package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/golang/snappy"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/config"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/layout"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/render"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/snapshot"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/viewport"
)

// maxConvergeTicks bounds the headless layout run.
const maxConvergeTicks = 1000

// topo-export converges a layout headlessly and writes an SVG, for
// reports and docs where no terminal is involved.
func main() {
	configPath := flag.String("config", "", "Config file (YAML)")
	in := flag.String("in", "", "Snapshot file (JSON, .sz for snappy); empty uses the generator")
	out := flag.String("out", "topology.svg", "Output SVG path")
	width := flag.Float64("width", 1200, "Canvas width")
	height := flag.Float64("height", 800, "Canvas height")
	devices := flag.Int("devices", 24, "Generator device count when no input file")
	seed := flag.Int64("seed", 1, "Generator seed")
	flag.Parse()

	logging.SetDefaultLogger(logging.NewJSONLogger(os.Stderr, logging.InfoLevel))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	graph, err := loadGraph(*in, *devices, *seed)
	if err != nil {
		log.Fatalf("Failed to load topology: %v", err)
	}
	if graph.Empty() {
		log.Fatal("Topology is empty, nothing to export")
	}

	start := time.Now()
	sim := layout.New(graph, *width, *height, cfg.LayoutOptions())
	ticks := sim.Run(maxConvergeTicks)
	logging.Info("layout converged",
		logging.Ticks(ticks),
		logging.NodeCount(len(graph.Nodes)),
		logging.Duration("elapsed", time.Since(start)))

	view := viewport.NewController(cfg.Viewport.MinScale, cfg.Viewport.MaxScale, cfg.Viewport.ResetDuration.Std())
	if minX, minY, maxX, maxY, ok := sim.Bounds(); ok {
		view.Fit(minX, minY, maxX, maxY, *width, *height, 40)
	}

	builder := render.NewBuilder(cfg.Render.Palette, cfg.Render.Opacity)
	scene := builder.Build(graph, sim.Positions(), view.Transform(), "", *width, *height)
	svg := render.NewSVGSurface(cfg.Render.Palette).Render(scene)

	if err := os.WriteFile(*out, svg, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	logging.Info("svg written", logging.Path(*out), logging.Int("bytes", len(svg)))
}

func loadGraph(path string, devices int, seed int64) (*topology.Graph, error) {
	if path == "" {
		graph, _ := snapshot.NewGenerator(devices, seed).Graph()
		return graph, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(path) > 3 && path[len(path)-3:] == ".sz" {
		if data, err = snappy.Decode(nil, data); err != nil {
			return nil, err
		}
	}
	graph, report, err := snapshot.Decode(data)
	if err != nil {
		return nil, err
	}
	if report.Sanitize.Dirty() {
		logging.Warn("snapshot needed sanitizing",
			logging.DroppedEdges(report.Sanitize.DroppedEdges),
			logging.Int("duplicate_nodes", report.Sanitize.DuplicateNodes))
	}
	return graph, nil
}
