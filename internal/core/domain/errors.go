package domain

import "errors"

var (
	// ErrTaskNotFound is returned both when the task does not exist and when
	// the caller holds no membership on it.
	ErrTaskNotFound        = errors.New("task not found")
	ErrSubtaskNotFound     = errors.New("subtask not found")
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrForbidden           = errors.New("role does not permit this action")
	ErrDuplicateMembership = errors.New("user already assigned to this task")
	ErrSelfActionForbidden = errors.New("owners cannot change or remove their own membership")
)
