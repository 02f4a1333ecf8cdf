package db

import (
	"context"
	"database/sql"
	"errors"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"time"

	"github.com/jmoiron/sqlx"
)

const selectMembershipQuery = `
SELECT
  m.id,
  m.task_id,
  m.user_id,
  m.role,
  m.created_at,
  u.username,
  u.email
FROM task_memberships m
JOIN users u ON u.id = m.user_id
`

const getMembershipQuery = selectMembershipQuery + `WHERE m.task_id = ? AND m.user_id = ?;`

const listMembershipsByTaskQuery = selectMembershipQuery + `WHERE m.task_id = ? ORDER BY m.id;`

const insertMembershipQuery = `
INSERT INTO task_memberships (task_id, user_id, role)
VALUES (?, ?, ?);
`

// The no-op update turns a unique-key collision into success without
// touching the existing role.
const insertMembershipIfMissingQuery = `
INSERT INTO task_memberships (task_id, user_id, role)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE id = id;
`

const updateMembershipRoleQuery = `UPDATE task_memberships SET role = ? WHERE task_id = ? AND user_id = ?;`

const deleteMembershipQuery = `DELETE FROM task_memberships WHERE task_id = ? AND user_id = ?;`

type MembershipRepository struct {
	db *sqlx.DB
}

type membershipRow struct {
	ID        uint64    `db:"id"`
	TaskID    uint64    `db:"task_id"`
	UserID    uint64    `db:"user_id"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	Username  string    `db:"username"`
	Email     string    `db:"email"`
}

var _ ports.MembershipRepository = (*MembershipRepository)(nil)

func NewMembershipRepository(db *sqlx.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Get(ctx context.Context, taskID, userID uint64) (domain.Membership, error) {
	var row membershipRow
	if err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, getMembershipQuery, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Membership{}, domain.ErrMembershipNotFound
		}
		return domain.Membership{}, err
	}
	return mapMembershipRowToDomain(row), nil
}

func (r *MembershipRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.Membership, error) {
	var rows []membershipRow
	if err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rows, listMembershipsByTaskQuery, taskID); err != nil {
		return nil, err
	}

	memberships := make([]domain.Membership, 0, len(rows))
	for _, row := range rows {
		memberships = append(memberships, mapMembershipRowToDomain(row))
	}
	return memberships, nil
}

// Create relies on the (task_id, user_id) unique index: a concurrent or
// repeated insert fails with ErrDuplicateMembership.
func (r *MembershipRepository) Create(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	if _, err := executor(ctx, r.db).ExecContext(ctx, insertMembershipQuery, taskID, userID, string(role)); err != nil {
		switch {
		case isMySQLError(err, mysqlErrDuplicateEntry):
			return domain.Membership{}, domain.ErrDuplicateMembership
		case isMySQLError(err, mysqlErrNoReferencedRow2):
			return domain.Membership{}, domain.ErrUserNotFound
		}
		return domain.Membership{}, err
	}
	return r.Get(ctx, taskID, userID)
}

func (r *MembershipRepository) GetOrCreate(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	if _, err := executor(ctx, r.db).ExecContext(ctx, insertMembershipIfMissingQuery, taskID, userID, string(role)); err != nil {
		if isMySQLError(err, mysqlErrNoReferencedRow2) {
			return domain.Membership{}, domain.ErrUserNotFound
		}
		return domain.Membership{}, err
	}
	return r.Get(ctx, taskID, userID)
}

func (r *MembershipRepository) UpdateRole(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	if _, err := executor(ctx, r.db).ExecContext(ctx, updateMembershipRoleQuery, string(role), taskID, userID); err != nil {
		return domain.Membership{}, err
	}
	return r.Get(ctx, taskID, userID)
}

func (r *MembershipRepository) Delete(ctx context.Context, taskID, userID uint64) error {
	result, err := executor(ctx, r.db).ExecContext(ctx, deleteMembershipQuery, taskID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMembershipNotFound
	}
	return nil
}

func mapMembershipRowToDomain(row membershipRow) domain.Membership {
	return domain.Membership{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
		User: domain.UserSummary{
			ID:       row.UserID,
			Username: row.Username,
			Email:    row.Email,
		},
	}
}
