package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
	"time"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	deadline, err := time.Parse(dateLayout, req.Deadline)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.TaskPriority(req.Priority)
	if !priority.Valid() {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Deadline:    deadline,
		Priority:    priority,
		Status:      status,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasAnyJSONField(raw, "title", "description", "deadline", "priority", "status") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	// Only description may be cleared with null.
	for _, field := range []string{"title", "deadline", "priority", "status"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	title, err := trimmedTitle(req.Title)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var deadline *time.Time
	if req.Deadline != nil {
		parsed, err := time.Parse(dateLayout, *req.Deadline)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		deadline = &parsed
	}

	var priority *domain.TaskPriority
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority = &value
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		Deadline:       deadline,
		Priority:       priority,
		Status:         status,
	}, nil
}

var errBlank = errors.New("blank value")

func trimmedTitle(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	title := strings.TrimSpace(*value)
	if title == "" {
		return nil, errBlank
	}
	return &title, nil
}

func optionalStatus(value *string) (*domain.TaskStatus, error) {
	if value == nil {
		return nil, nil
	}
	status := domain.TaskStatus(*value)
	if !status.Valid() {
		return nil, errors.New("unknown status")
	}
	return &status, nil
}

func hasAnyJSONField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
