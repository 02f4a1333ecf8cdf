package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "To do"
	TaskStatusInProgress TaskStatus = "In progress"
	TaskStatusDone       TaskStatus = "Done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	Deadline    time.Time
	Priority    TaskPriority
	Status      TaskStatus
	AssignedBy  uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	// MyRole is the role of the user the task was loaded for. Zero when the
	// task was loaded without a caller.
	MyRole Role
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Deadline    time.Time
	Priority    TaskPriority
	Status      TaskStatus
}

// UpdateTaskInput carries a partial update. Nil pointers leave the column
// untouched; DescriptionSet distinguishes "clear" from "not sent".
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Deadline       *time.Time
	Priority       *TaskPriority
	Status         *TaskStatus
}
