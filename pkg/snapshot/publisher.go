package snapshot

import (
	"github.com/golang/snappy"
	"go.nanomsg.org/mangos/v3"
	"go.nanomsg.org/mangos/v3/protocol/pub"

	// Register all transports
	_ "go.nanomsg.org/mangos/v3/transport/all"

	"github.com/okanyucel2/genesis-bigr-discovery-sub000/pkg/logging"
)

// Publisher broadcasts snapshot documents to any number of subscribed
// viewers. Payloads are snappy-framed JSON.
type Publisher struct {
	sock mangos.Socket
	log  logging.Logger
}

// NewPublisher listens on url for subscribers.
func NewPublisher(url string) (*Publisher, error) {
	sock, err := pub.NewSocket()
	if err != nil {
		return nil, err
	}
	if err := sock.Listen(url); err != nil {
		sock.Close()
		return nil, err
	}
	return &Publisher{
		sock: sock,
		log:  logging.With(logging.Component("snapshot"), logging.Source("publisher"), logging.Path(url)),
	}, nil
}

// Publish encodes and broadcasts one document.
func (p *Publisher) Publish(doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	framed := snappy.Encode(nil, data)
	if err := p.sock.Send(framed); err != nil {
		return err
	}
	p.log.Debug("snapshot published",
		logging.NodeCount(len(doc.Nodes)),
		logging.EdgeCount(len(doc.Edges)),
		logging.Int("bytes", len(framed)))
	return nil
}

// Close shuts the socket down.
func (p *Publisher) Close() error {
	return p.sock.Close()
}
