package snapshot

import (
	"strings"

	"github.com/golang/snappy"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/metrics"
	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/topology"
)

// Update is one decoded snapshot delivered by a source.
type Update struct {
	Graph  *topology.Graph
	Report DecodeReport
	Bytes  int
	Origin string
}

// Source delivers topology snapshots as they arrive. Closing a source
// stops its delivery goroutine and closes the channel.
type Source interface {
	Updates() <-chan Update
	Close() error
}

// decodePayload handles the optional snappy framing in front of the
// JSON document. Compressed payloads carry the extension or come from
// the stream transport, which always compresses.
func decodePayload(data []byte, compressed bool) ([]byte, error) {
	if !compressed {
		return data, nil
	}
	return snappy.Decode(nil, data)
}

func isCompressedPath(path string) bool {
	return strings.HasSuffix(path, ".sz")
}

// reg resolves the metrics registry sources record into.
func reg(r *metrics.Registry) *metrics.Registry {
	if r != nil {
		return r
	}
	return metrics.DefaultRegistry()
}
