package snapshot

import (
	"sync"
	"time"

	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/sub"

	// Register all transports
	_ "go.nanomsg.org/mangos/v3/transport/all"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
)

// recvDeadline bounds each Recv so Close is observed promptly.
const recvDeadline = 500 * time.Millisecond

// StreamSource subscribes to a snapshot publisher over nanomsg pub/sub.
// Messages are snappy-framed JSON documents.
type StreamSource struct {
	sock    mangos.Socket
	metrics *metrics.Registry
	log     logging.Logger

	updates chan Update
	done    chan struct{}
	once    sync.Once
}

// NewStreamSource dials the publisher at url (tcp://, ipc:// or
// inproc://) and starts receiving.
func NewStreamSource(url string, m *metrics.Registry) (*StreamSource, error) {
	sock, err := sub.NewSocket()
	if err != nil {
		return nil, err
	}
	if err := sock.SetOption(mangos.OptionSubscribe, []byte("")); err != nil {
		sock.Close()
		return nil, err
	}
	if err := sock.SetOption(mangos.OptionRecvDeadline, recvDeadline); err != nil {
		sock.Close()
		return nil, err
	}
	if err := sock.Dial(url); err != nil {
		sock.Close()
		return nil, err
	}

	s := &StreamSource{
		sock:    sock,
		metrics: reg(m),
		log:     logging.With(logging.Component("snapshot"), logging.Source("stream"), logging.Path(url)),
		updates: make(chan Update, 1),
		done:    make(chan struct{}),
	}
	go s.receive()
	return s, nil
}

// Updates returns the delivery channel.
func (s *StreamSource) Updates() <-chan Update { return s.updates }

// Close stops receiving and closes the socket.
func (s *StreamSource) Close() error {
	s.once.Do(func() { close(s.done) })
	return s.sock.Close()
}

func (s *StreamSource) receive() {
	defer close(s.updates)

	for {
		select {
		case <-s.done:
			return
		default:
		}

		msg, err := s.sock.Recv()
		if err != nil {
			if err == mangos.ErrRecvTimeout {
				continue
			}
			select {
			case <-s.done:
			default:
				s.log.Warn("receive snapshot", logging.Error(err))
			}
			return
		}

		payload, err := decodePayload(msg, true)
		if err != nil {
			s.log.Warn("decompress snapshot message", logging.Error(err))
			s.metrics.RecordDecodeError()
			s.metrics.RecordSnapshot("stream", "error", 0)
			continue
		}
		graph, report, err := Decode(payload)
		if err != nil {
			s.log.Warn("decode snapshot message", logging.Error(err))
			s.metrics.RecordDecodeError()
			s.metrics.RecordSnapshot("stream", "error", 0)
			continue
		}

		s.metrics.RecordSnapshot("stream", "ok", len(payload))
		s.metrics.RecordDroppedEdges(report.Sanitize.DroppedEdges)

		// Replace any undelivered update with the newer one.
		select {
		case s.updates <- Update{Graph: graph, Report: report, Bytes: len(payload), Origin: "stream"}:
		default:
			select {
			case <-s.updates:
			default:
			}
			select {
			case s.updates <- Update{Graph: graph, Report: report, Bytes: len(payload), Origin: "stream"}:
			default:
			}
		}
	}
}
