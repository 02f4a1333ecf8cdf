package notifier

import (
	"context"
	"tasktracker/internal/core/ports"

	"go.uber.org/zap"
)

// LogNotifier stands in for the queue when no NATS url is configured.
type LogNotifier struct{}

var _ ports.TaskNotifier = LogNotifier{}

func (LogNotifier) NotifyTaskCreated(_ context.Context, taskID uint64) error {
	zap.L().Info("Task created notification sent", zap.Uint64("task_id", taskID))
	return nil
}
