package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"time"

	"github.com/jmoiron/sqlx"
)

const taskColumns = `
  t.id,
  t.title,
  t.description,
  t.deadline,
  t.priority,
  t.status,
  t.assigned_by,
  t.created_at,
  t.updated_at`

const listTasksForMemberQuery = `
SELECT` + taskColumns + `,
  m.role AS my_role
FROM tasks t
JOIN task_memberships m ON m.task_id = t.id
WHERE m.user_id = ?
ORDER BY t.created_at DESC, t.id DESC;
`

const getTaskQuery = `
SELECT` + taskColumns + `
FROM tasks t
WHERE t.id = ?;
`

const insertTaskQuery = `
INSERT INTO tasks (title, description, deadline, priority, status, assigned_by)
VALUES (?, ?, ?, ?, ?, ?);
`

const deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Deadline    time.Time      `db:"deadline"`
	Priority    string         `db:"priority"`
	Status      string         `db:"status"`
	AssignedBy  uint64         `db:"assigned_by"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
	MyRole      sql.NullString `db:"my_role"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListForMember(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, listTasksForMemberQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, getTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput, assignedBy uint64) (domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	result, err := executor(ctx, r.db).ExecContext(
		ctx,
		insertTaskQuery,
		input.Title,
		nullableString(input.Description),
		input.Deadline,
		string(input.Priority),
		string(status),
		assignedBy,
	)
	if err != nil {
		if isMySQLError(err, mysqlErrNoReferencedRow2) {
			return domain.Task{}, domain.ErrUserNotFound
		}
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.Get(ctx, uint64(id))
}

func (r *TaskRepository) Update(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 7)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.Deadline != nil {
		sets = append(sets, "deadline = ?")
		args = append(args, *input.Deadline)
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP(6)")
	args = append(args, taskID)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	return r.Get(ctx, taskID)
}

// Delete removes the task; memberships and subtasks go with it through
// ON DELETE CASCADE.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint64) error {
	result, err := executor(ctx, r.db).ExecContext(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:         row.ID,
		Title:      row.Title,
		Deadline:   row.Deadline,
		Priority:   domain.TaskPriority(row.Priority),
		Status:     domain.TaskStatus(row.Status),
		AssignedBy: row.AssignedBy,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.MyRole.Valid {
		task.MyRole = domain.Role(row.MyRole.String)
	}

	return task
}

func nullableString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
