package notifier

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const listenerQueueGroup = "tasktracker-notifications"

// Listener consumes task-created events and records the delivery.
type Listener struct {
	subscription *nats.Subscription
}

func StartListener(conn *nats.Conn, subject string) (*Listener, error) {
	subscription, err := conn.QueueSubscribe(subject, listenerQueueGroup, handleTaskCreated)
	if err != nil {
		return nil, fmt.Errorf("subscribe to %s: %w", subject, err)
	}
	return &Listener{subscription: subscription}, nil
}

func (l *Listener) Stop() error {
	return l.subscription.Drain()
}

func handleTaskCreated(msg *nats.Msg) {
	var event TaskCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil || event.TaskID == 0 {
		zap.L().Warn("dropping malformed task created event", zap.String("subject", msg.Subject), zap.ByteString("payload", msg.Data))
		return
	}
	zap.L().Info("Task created notification sent", zap.Uint64("task_id", event.TaskID))
}
