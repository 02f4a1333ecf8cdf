package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
	"time"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: copyString(task.Description),
		Deadline:    task.Deadline.Format(dateLayout),
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		AssignedBy:  task.AssignedBy,
		MyRole:      string(task.MyRole),
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}
