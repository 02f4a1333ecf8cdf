package service

import (
	"context"
	"fmt"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"

	"go.uber.org/zap"
)

type TaskService struct {
	taskRepository       ports.TaskRepository
	membershipRepository ports.MembershipRepository
	transactor           ports.Transactor
	notifier             ports.TaskNotifier
	guard                accessGuard
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	membershipRepository ports.MembershipRepository,
	transactor ports.Transactor,
	notifier ports.TaskNotifier,
) *TaskService {
	return &TaskService{
		taskRepository:       taskRepository,
		membershipRepository: membershipRepository,
		transactor:           transactor,
		notifier:             notifier,
		guard:                accessGuard{memberships: membershipRepository},
	}
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListForMember(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	membership, err := s.guard.authorize(ctx, taskID, userID, domain.ActionRead, domain.ErrTaskNotFound)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.Get(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.MyRole = membership.Role
	return task, nil
}

// CreateTask stores the task and the creator's Owner membership in one
// transaction, then enqueues the task-created notification. A notification
// failure is logged and does not fail the call.
func (s *TaskService) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	var task domain.Task
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.taskRepository.Create(ctx, input, userID)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}

		owner, err := s.membershipRepository.GetOrCreate(ctx, created.ID, userID, domain.RoleOwner)
		if err != nil {
			return fmt.Errorf("bootstrap owner membership of task %d: %w", created.ID, err)
		}

		created.MyRole = owner.Role
		task = created
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.notifier.NotifyTaskCreated(ctx, task.ID); err != nil {
		zap.L().Warn("failed to enqueue task created notification", zap.Uint64("task_id", task.ID), zap.Error(err))
	}

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	membership, err := s.guard.authorize(ctx, taskID, userID, domain.ActionUpdate, domain.ErrTaskNotFound)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := s.taskRepository.Update(ctx, taskID, input)
	if err != nil {
		return domain.Task{}, err
	}
	task.MyRole = membership.Role
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	if _, err := s.guard.authorize(ctx, taskID, userID, domain.ActionDelete, domain.ErrTaskNotFound); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
