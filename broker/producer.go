package broker

import (
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"stillpad-notes/stillpad/models"
)

// Producer publishes note lifecycle events to NATS. A producer with no
// connection drops every event, so the service can run without a broker.
type Producer struct {
	conn *nats.Conn
}

func NewProducer(url string) (*Producer, error) {
	conn, err := nats.Connect(url, nats.Name("stillpad"))
	if err != nil {
		return nil, err
	}
	log.Infof("connected to NATS at %s", url)
	return &Producer{conn: conn}, nil
}

// NewDisabledProducer returns a producer whose Publish is a no-op.
func NewDisabledProducer() *Producer {
	return &Producer{}
}

// Enabled reports whether events actually leave the process.
func (p *Producer) Enabled() bool {
	return p.conn != nil
}

// Publish sends the event on the subject named by its Event field.
func (p *Producer) Publish(event models.NoteEvent) error {
	if p.conn == nil {
		return nil
	}

	payload, err := event.ToJSON()
	if err != nil {
		return err
	}
	return p.conn.Publish(event.Event, payload)
}

func (p *Producer) Close() {
	if p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		log.Warnf("failed to drain NATS connection: %v", err)
	}
}
