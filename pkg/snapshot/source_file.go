package snapshot

import (
	"os"
	"sync"
	"time"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
)

// FileSource polls a snapshot file and delivers an update whenever its
// modification time changes. Files ending in .sz are snappy-compressed.
type FileSource struct {
	path     string
	interval time.Duration
	metrics  *metrics.Registry
	log      logging.Logger

	updates chan Update
	done    chan struct{}
	once    sync.Once
	lastMod time.Time
}

// NewFileSource starts polling the given path. The first read happens
// immediately; later reads happen on the poll interval.
func NewFileSource(path string, interval time.Duration, m *metrics.Registry) *FileSource {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	s := &FileSource{
		path:     path,
		interval: interval,
		metrics:  reg(m),
		log:      logging.With(logging.Component("snapshot"), logging.Source("file"), logging.Path(path)),
		updates:  make(chan Update, 1),
		done:     make(chan struct{}),
	}
	go s.poll()
	return s
}

// Updates returns the delivery channel.
func (s *FileSource) Updates() <-chan Update { return s.updates }

// Close stops polling and closes the update channel.
func (s *FileSource) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}

func (s *FileSource) poll() {
	defer close(s.updates)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.read()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.read()
		}
	}
}

func (s *FileSource) read() {
	info, err := os.Stat(s.path)
	if err != nil {
		s.log.Warn("stat snapshot file", logging.Error(err))
		s.metrics.RecordSnapshot("file", "error", 0)
		return
	}
	if !info.ModTime().After(s.lastMod) {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn("read snapshot file", logging.Error(err))
		s.metrics.RecordSnapshot("file", "error", 0)
		return
	}
	payload, err := decodePayload(data, isCompressedPath(s.path))
	if err != nil {
		s.log.Warn("decompress snapshot file", logging.Error(err))
		s.metrics.RecordDecodeError()
		s.metrics.RecordSnapshot("file", "error", 0)
		return
	}

	graph, report, err := Decode(payload)
	if err != nil {
		s.log.Warn("decode snapshot file", logging.Error(err))
		s.metrics.RecordDecodeError()
		s.metrics.RecordSnapshot("file", "error", 0)
		return
	}

	s.lastMod = info.ModTime()
	s.metrics.RecordSnapshot("file", "ok", len(payload))
	s.metrics.RecordDroppedEdges(report.Sanitize.DroppedEdges)
	s.log.Info("snapshot loaded",
		logging.NodeCount(len(graph.Nodes)),
		logging.EdgeCount(len(graph.Edges)),
		logging.DroppedEdges(report.Sanitize.DroppedEdges))

	s.deliver(Update{Graph: graph, Report: report, Bytes: len(payload), Origin: "file"})
}

// deliver replaces any undelivered update so the consumer always sees
// the newest snapshot.
func (s *FileSource) deliver(u Update) {
	for {
		select {
		case s.updates <- u:
			return
		case <-s.done:
			return
		default:
			select {
			case <-s.updates:
			default:
			}
		}
	}
}
