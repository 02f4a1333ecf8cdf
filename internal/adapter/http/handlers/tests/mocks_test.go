package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

type subtaskServiceMock struct {
	mock.Mock
}

func (m *subtaskServiceMock) ListSubtasks(ctx context.Context, userID, taskID uint64) ([]domain.Subtask, error) {
	args := m.Called(ctx, userID, taskID)

	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *subtaskServiceMock) CreateSubtask(ctx context.Context, userID, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskServiceMock) GetSubtask(ctx context.Context, userID, subtaskID uint64) (domain.Subtask, error) {
	args := m.Called(ctx, userID, subtaskID)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskServiceMock) UpdateSubtask(ctx context.Context, userID, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	args := m.Called(ctx, userID, subtaskID, input)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *subtaskServiceMock) DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error {
	return m.Called(ctx, userID, subtaskID).Error(0)
}

type membershipServiceMock struct {
	mock.Mock
}

func (m *membershipServiceMock) ListMemberships(ctx context.Context, callerID, taskID uint64) ([]domain.Membership, error) {
	args := m.Called(ctx, callerID, taskID)

	var memberships []domain.Membership
	if value := args.Get(0); value != nil {
		memberships = value.([]domain.Membership)
	}
	return memberships, args.Error(1)
}

func (m *membershipServiceMock) GetMembership(ctx context.Context, callerID, taskID, userID uint64) (domain.Membership, error) {
	args := m.Called(ctx, callerID, taskID, userID)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipServiceMock) AddMember(ctx context.Context, callerID, taskID uint64, input domain.AddMemberInput) (domain.Membership, error) {
	args := m.Called(ctx, callerID, taskID, input)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipServiceMock) UpdateMemberRole(ctx context.Context, callerID, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	args := m.Called(ctx, callerID, taskID, userID, role)
	return args.Get(0).(domain.Membership), args.Error(1)
}

func (m *membershipServiceMock) RemoveMember(ctx context.Context, callerID, taskID, userID uint64) error {
	return m.Called(ctx, callerID, taskID, userID).Error(0)
}

// tokenAuthenticator accepts tokens of the form "user-<id>".
type tokenAuthenticator struct{}

func (tokenAuthenticator) Authenticate(_ context.Context, token string) (uint64, error) {
	var userID uint64
	if _, err := fmt.Sscanf(token, "user-%d", &userID); err != nil || userID == 0 {
		return 0, errors.New("bad token")
	}
	return userID, nil
}

type pingerStub struct {
	err error
}

func (p pingerStub) PingContext(context.Context) error {
	return p.err
}

type testServices struct {
	tasks       *taskServiceMock
	subtasks    *subtaskServiceMock
	memberships *membershipServiceMock
}

func (s testServices) assertExpectations(t *testing.T) {
	s.tasks.AssertExpectations(t)
	s.subtasks.AssertExpectations(t)
	s.memberships.AssertExpectations(t)
}

func newTestRouter() (*gin.Engine, testServices) {
	services := testServices{
		tasks:       new(taskServiceMock),
		subtasks:    new(subtaskServiceMock),
		memberships: new(membershipServiceMock),
	}

	router := gin.New()
	httpadapter.RegisterRoutes(router, tokenAuthenticator{}, httpadapter.Handlers{
		Health:     handlers.NewHealthHandler(pingerStub{}, nil),
		Task:       handlers.NewTaskHandler(services.tasks),
		Subtask:    handlers.NewSubtaskHandler(services.subtasks),
		Membership: handlers.NewMembershipHandler(services.memberships),
	})
	return router, services
}

// perform sends body as JSON on behalf of userID. userID 0 sends no token.
func perform(router *gin.Engine, method, path string, userID uint64, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en")
	if userID != 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer user-%d", userID))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func performWithLanguage(router *gin.Engine, path string, userID uint64, lang string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept-Language", lang)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer user-%d", userID))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func requireAPIError(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, status, got.ErrDetails.Code)
	if message != "" {
		require.Equal(t, message, got.ErrDetails.Message)
	}
}
