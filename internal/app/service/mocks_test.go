package service_test

import (
	"context"
	"tasktracker/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) ListForMember(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Get(ctx context.Context, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput, assignedBy uint64) (domain.Task, error) {
	args := m.Called(ctx, input, assignedBy)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

type membershipRepositoryMock struct {
	mock.Mock
}

func (m *membershipRepositoryMock) Get(ctx context.Context, taskID, userID uint64) (domain.Membership, error) {
	args := m.Called(ctx, taskID, userID)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.Membership, error) {
	args := m.Called(ctx, taskID)

	var memberships []domain.Membership
	if value := args.Get(0); value != nil {
		memberships = value.([]domain.Membership)
	}
	return memberships, args.Error(1)
}

func (m *membershipRepositoryMock) Create(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	args := m.Called(ctx, taskID, userID, role)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) GetOrCreate(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	args := m.Called(ctx, taskID, userID, role)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) UpdateRole(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	args := m.Called(ctx, taskID, userID, role)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipRepositoryMock) Delete(ctx context.Context, taskID, userID uint64) error {
	return m.Called(ctx, taskID, userID).Error(0)
}

type subtaskRepositoryMock struct {
	mock.Mock
}

func (m *subtaskRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.Subtask, error) {
	args := m.Called(ctx, taskID)

	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *subtaskRepositoryMock) Get(ctx context.Context, subtaskID uint64) (domain.Subtask, error) {
	args := m.Called(ctx, subtaskID)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskRepositoryMock) Create(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, taskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskRepositoryMock) Update(ctx context.Context, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, subtaskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskRepositoryMock) Delete(ctx context.Context, subtaskID uint64) error {
	return m.Called(ctx, subtaskID).Error(0)
}

// transactorMock runs the unit of work inline unless the expectation returns
// an error.
type transactorMock struct {
	mock.Mock
}

func (m *transactorMock) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := m.Called(ctx).Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) NotifyTaskCreated(ctx context.Context, taskID uint64) error {
	return m.Called(ctx, taskID).Error(0)
}

func membershipOf(taskID, userID uint64, role domain.Role) domain.Membership {
	return domain.Membership{ID: taskID*100 + userID, TaskID: taskID, UserID: userID, Role: role}
}
