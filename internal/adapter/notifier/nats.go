package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"tasktracker/internal/core/ports"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// TaskCreatedEvent is the payload published for every new task.
type TaskCreatedEvent struct {
	TaskID uint64 `json:"task_id"`
}

// publisher is the slice of *nats.Conn the notifier needs.
type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier publishes task-created events. nats.Conn.Publish only
// buffers the message, so the request path never waits on the broker.
type NATSNotifier struct {
	conn    publisher
	subject string
}

var _ ports.TaskNotifier = (*NATSNotifier)(nil)

func NewNATSNotifier(conn publisher, subject string) *NATSNotifier {
	return &NATSNotifier{conn: conn, subject: subject}
}

func (n *NATSNotifier) NotifyTaskCreated(_ context.Context, taskID uint64) error {
	data, err := json.Marshal(TaskCreatedEvent{TaskID: taskID})
	if err != nil {
		return fmt.Errorf("marshal task created event: %w", err)
	}
	if err := n.conn.Publish(n.subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", n.subject, err)
	}
	return nil
}

// Connect opens a NATS connection that keeps retrying in the background,
// so a broker outage at boot does not stop the API.
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("tasktracker-api"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				zap.L().Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			zap.L().Info("nats reconnected", zap.String("url", conn.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return conn, nil
}
