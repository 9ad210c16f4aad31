package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/config"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/snapshot"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/tui"
)

func main() {
	configPath := flag.String("config", "", "Config file (YAML)")
	source := flag.String("source", "", "Snapshot source override: file, s3, stream or generator")
	path := flag.String("path", "", "Snapshot file path (file source)")
	streamURL := flag.String("stream", "", "Publisher URL (stream source)")
	metricsAddr := flag.String("metrics", "", "Prometheus listen address, e.g. :9090")
	logPath := flag.String("log", "", "Structured log file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *source != "" {
		cfg.Feed.Source = *source
	}
	if *path != "" {
		cfg.Feed.Path = *path
	}
	if *streamURL != "" {
		cfg.Feed.StreamURL = *streamURL
	}
	if *metricsAddr != "" {
		cfg.Metrics.Listen = *metricsAddr
	}
	if *logPath != "" {
		cfg.Log.Path = *logPath
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// The alternate screen owns the terminal, so logs either go to a
	// file or nowhere.
	if cfg.Log.Path != "" {
		logger, err := logging.NewFileLogger(cfg.Log.Path, logging.ParseLevel(cfg.Log.Level))
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		logging.SetDefaultLogger(logger)
	} else {
		logging.SetDefaultLogger(logging.NewNopLogger())
	}

	reg := metrics.DefaultRegistry()
	if cfg.Metrics.Listen != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.Metrics.Listen, mux); err != nil {
				logging.ErrorLog("metrics endpoint failed", logging.Error(err))
			}
		}()
	}

	src, err := buildSource(cfg, reg)
	if err != nil {
		log.Fatalf("Failed to open snapshot source: %v", err)
	}
	defer src.Close()

	p := tea.NewProgram(tui.New(cfg, src, reg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}

func buildSource(cfg config.Config, reg *metrics.Registry) (snapshot.Source, error) {
	switch cfg.Feed.Source {
	case "file":
		return snapshot.NewFileSource(cfg.Feed.Path, cfg.Feed.PollInterval.Std(), reg), nil
	case "s3":
		return snapshot.NewS3Source(context.Background(), snapshot.S3Options{
			Bucket:       cfg.Feed.Bucket,
			Key:          cfg.Feed.Key,
			Region:       cfg.Feed.Region,
			Endpoint:     cfg.Feed.Endpoint,
			PathStyle:    cfg.Feed.Endpoint != "",
			AccessKey:    os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken: os.Getenv("AWS_SESSION_TOKEN"),
			PollInterval: cfg.Feed.PollInterval.Std(),
		}, reg)
	case "stream":
		return snapshot.NewStreamSource(cfg.Feed.StreamURL, reg)
	case "generator":
		return snapshot.NewGeneratorSource(cfg.Feed.GeneratorNodes, cfg.Feed.GeneratorSeed, cfg.Feed.PollInterval.Std(), reg), nil
	default:
		return nil, fmt.Errorf("unknown snapshot source %q", cfg.Feed.Source)
	}
}
