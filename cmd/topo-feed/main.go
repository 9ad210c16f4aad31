package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/snapshot"
)

// topo-feed publishes an evolving synthetic topology over nanomsg
// pub/sub, for demos and for driving viewers without a discovery
// backend.
func main() {
	listen := flag.String("listen", "tcp://127.0.0.1:40899", "Publisher listen URL")
	devices := flag.Int("devices", 24, "Initial device count")
	seed := flag.Int64("seed", 1, "Topology seed")
	interval := flag.Duration("interval", 3*time.Second, "Publish interval")
	flag.Parse()

	logging.SetDefaultLogger(logging.NewJSONLogger(os.Stderr, logging.InfoLevel))
	logger := logging.With(logging.Component("topo-feed"))

	pub, err := snapshot.NewPublisher(*listen)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", *listen, err)
	}
	defer pub.Close()

	gen := snapshot.NewGenerator(*devices, *seed)
	logger.Info("feed started",
		logging.Path(*listen),
		logging.Int("devices", *devices),
		logging.Duration("interval", *interval))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	if err := pub.Publish(gen.Document()); err != nil {
		logger.Error("publish failed", logging.Error(err))
	}
	for {
		select {
		case <-stop:
			logger.Info("feed stopping")
			return
		case <-ticker.C:
			gen.Mutate()
			if err := pub.Publish(gen.Document()); err != nil {
				logger.Error("publish failed", logging.Error(err))
			}
		}
	}
}
