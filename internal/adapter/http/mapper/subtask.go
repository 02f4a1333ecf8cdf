package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
	"time"
)

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubtaskItem(subtask))
	}
	return items
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	return dto.SubtaskItem{
		ID:          subtask.ID,
		Task:        subtask.TaskID,
		Title:       subtask.Title,
		Description: copyString(subtask.Description),
		Status:      string(subtask.Status),
		CreatedAt:   subtask.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   subtask.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
