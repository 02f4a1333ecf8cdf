package service

import (
	"context"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type SubtaskService struct {
	subtaskRepository ports.SubtaskRepository
	guard             accessGuard
}

func NewSubtaskService(subtaskRepository ports.SubtaskRepository, membershipRepository ports.MembershipRepository) *SubtaskService {
	return &SubtaskService{
		subtaskRepository: subtaskRepository,
		guard:             accessGuard{memberships: membershipRepository},
	}
}

func (s *SubtaskService) ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error) {
	if _, err := s.guard.authorize(ctx, taskID, userID, domain.ActionRead, domain.ErrTaskNotFound); err != nil {
		return nil, err
	}
	return s.subtaskRepository.ListByTask(ctx, taskID)
}

// CreateSubtask requires Owner or Assigned on the parent task. A caller with
// no membership gets ErrTaskNotFound, a Viewer gets ErrForbidden.
func (s *SubtaskService) CreateSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	if _, err := s.guard.authorize(ctx, taskID, userID, domain.ActionUpdate, domain.ErrTaskNotFound); err != nil {
		return domain.Subtask{}, err
	}
	return s.subtaskRepository.Create(ctx, taskID, input)
}

func (s *SubtaskService) GetSubtask(ctx context.Context, userID, subtaskID uint64) (domain.Subtask, error) {
	return s.load(ctx, userID, subtaskID, domain.ActionRead)
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	if _, err := s.load(ctx, userID, subtaskID, domain.ActionUpdate); err != nil {
		return domain.Subtask{}, err
	}
	return s.subtaskRepository.Update(ctx, subtaskID, input)
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error {
	if _, err := s.load(ctx, userID, subtaskID, domain.ActionDelete); err != nil {
		return err
	}
	return s.subtaskRepository.Delete(ctx, subtaskID)
}

func (s *SubtaskService) load(ctx context.Context, userID, subtaskID uint64, action domain.Action) (domain.Subtask, error) {
	subtask, err := s.subtaskRepository.Get(ctx, subtaskID)
	if err != nil {
		return domain.Subtask{}, err
	}
	if _, err := s.guard.authorize(ctx, subtask.TaskID, userID, action, domain.ErrSubtaskNotFound); err != nil {
		return domain.Subtask{}, err
	}
	return subtask, nil
}

var _ ports.SubtaskService = (*SubtaskService)(nil)
