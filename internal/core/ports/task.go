package ports

import (
	"context"
	"tasktracker/internal/core/domain"
)

type TaskRepository interface {
	ListForMember(ctx context.Context, userID uint64) ([]domain.Task, error)
	Get(ctx context.Context, taskID uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput, assignedBy uint64) (domain.Task, error)
	Update(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, taskID uint64) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}

// Transactor runs fn inside a single unit of work. Repositories called with
// the ctx handed to fn take part in the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TaskNotifier is fire-and-forget: implementations must not block on
// delivery.
type TaskNotifier interface {
	NotifyTaskCreated(ctx context.Context, taskID uint64) error
}
