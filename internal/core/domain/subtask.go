package domain

import "time"

type Subtask struct {
	ID          uint64
	TaskID      uint64
	Title       string
	Description *string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateSubtaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
}

type UpdateSubtaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
}
