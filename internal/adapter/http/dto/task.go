package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Deadline    string  `json:"deadline"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AssignedBy  uint64  `json:"assigned_by"`
	MyRole      string  `json:"my_role,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Deadline    string  `json:"deadline" binding:"required,datetime=2006-01-02"`
	Priority    string  `json:"priority" binding:"required"`
	Status      *string `json:"status"`
}

// UpdateTaskRequest is a partial update; absent fields are left untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}
