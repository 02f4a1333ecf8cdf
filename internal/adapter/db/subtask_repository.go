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

const subtaskColumns = `id, task_id, title, description, status, created_at, updated_at`

const listSubtasksByTaskQuery = `
SELECT ` + subtaskColumns + `
FROM subtasks
WHERE task_id = ?
ORDER BY created_at DESC, id DESC;
`

const getSubtaskQuery = `SELECT ` + subtaskColumns + ` FROM subtasks WHERE id = ?;`

const insertSubtaskQuery = `
INSERT INTO subtasks (task_id, title, description, status)
VALUES (?, ?, ?, ?);
`

const deleteSubtaskQuery = `DELETE FROM subtasks WHERE id = ?;`

type SubtaskRepository struct {
	db *sqlx.DB
}

type subtaskRow struct {
	ID          uint64         `db:"id"`
	TaskID      uint64         `db:"task_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.SubtaskRepository = (*SubtaskRepository)(nil)

func NewSubtaskRepository(db *sqlx.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Subtask, error) {
	var rows []subtaskRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, listSubtasksByTaskQuery, taskID); err != nil {
		return nil, err
	}

	subtasks := make([]domain.Subtask, 0, len(rows))
	for _, row := range rows {
		subtasks = append(subtasks, mapSubtaskRowToDomain(row))
	}
	return subtasks, nil
}

func (r *SubtaskRepository) Get(ctx context.Context, subtaskID uint64) (domain.Subtask, error) {
	var row subtaskRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, getSubtaskQuery, subtaskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subtask{}, domain.ErrSubtaskNotFound
		}
		return domain.Subtask{}, err
	}
	return mapSubtaskRowToDomain(row), nil
}

func (r *SubtaskRepository) Create(ctx context.Context, taskID uint64, input domain.CreateSubtaskInput) (domain.Subtask, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	result, err := executor(ctx, r.db).ExecContext(ctx, insertSubtaskQuery, taskID, input.Title, nullableString(input.Description), string(status))
	if err != nil {
		if isMySQLError(err, mysqlErrNoReferencedRow2) {
			return domain.Subtask{}, domain.ErrTaskNotFound
		}
		return domain.Subtask{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Subtask{}, err
	}
	return r.Get(ctx, uint64(id))
}

func (r *SubtaskRepository) Update(ctx context.Context, subtaskID uint64, input domain.UpdateSubtaskInput) (domain.Subtask, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(input.Description))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP(6)")
	args = append(args, subtaskID)

	query := "UPDATE subtasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return domain.Subtask{}, err
	}
	return r.Get(ctx, subtaskID)
}

func (r *SubtaskRepository) Delete(ctx context.Context, subtaskID uint64) error {
	result, err := executor(ctx, r.db).ExecContext(ctx, deleteSubtaskQuery, subtaskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func mapSubtaskRowToDomain(row subtaskRow) domain.Subtask {
	subtask := domain.Subtask{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		value := row.Description.String
		subtask.Description = &value
	}
	return subtask
}
