package ports

import (
	"context"
	"tasktracker/internal/core/domain"
)

type SubtaskRepository interface {
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Subtask, error)
	Get(ctx context.Context, subtaskID uint64) (domain.Subtask, error)
	Create(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	Update(ctx context.Context, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	Delete(ctx context.Context, subtaskID uint64) error
}

type SubtaskService interface {
	ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error)
	CreateSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error)
	GetSubtask(ctx context.Context, userID, subtaskID uint64) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error
}
