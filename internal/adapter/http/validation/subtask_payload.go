package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

var ErrInvalidSubtaskPayload = errors.New("invalid subtask payload")

func BuildCreateSubtaskInput(req dto.CreateSubtaskRequest, raw map[string]json.RawMessage) (domain.CreateSubtaskInput, error) {
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.CreateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateSubtaskInput{}, ErrInvalidSubtaskPayload
		}
	}

	return domain.CreateSubtaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
	}, nil
}

func BuildUpdateSubtaskInput(req dto.UpdateSubtaskRequest, raw map[string]json.RawMessage) (domain.UpdateSubtaskInput, error) {
	if !hasAnyJSONField(raw, "title", "description", "status") {
		return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
	}
	for _, field := range []string{"title", "status"} {
		if hasJSONField(raw, field) && isJSONNull(raw[field]) {
			return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
		}
	}

	title, err := trimmedTitle(req.Title)
	if err != nil {
		return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	status, err := optionalStatus(req.Status)
	if err != nil {
		return domain.UpdateSubtaskInput{}, ErrInvalidSubtaskPayload
	}

	return domain.UpdateSubtaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		Status:         status,
	}, nil
}
