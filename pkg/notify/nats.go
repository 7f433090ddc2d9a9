package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSSender publishes each message as JSON on a subject.
type NATSSender struct {
	publisher Publisher
	subject   string
}

func NewNATSSender(publisher Publisher, subject string) *NATSSender {
	return &NATSSender{publisher: publisher, subject: subject}
}

// ConnectNATS dials the servers with reconnect handling suitable for a
// long-running publisher.
func ConnectNATS(servers string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.Name("gamearena"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				zap.L().Error("NATS disconnected", zap.Error(err))
			} else {
				zap.L().Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(*nats.Conn) {
			zap.L().Info("NATS reconnected")
		}),
	}

	nc, err := nats.Connect(servers, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	zap.L().Info("connected to NATS", zap.String("servers", servers))
	return nc, nil
}

func (n *NATSSender) Send(_ context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := n.publisher.Publish(n.subject, data); err != nil {
		return fmt.Errorf("failed to publish notification to %s: %w", n.subject, err)
	}
	return nil
}
