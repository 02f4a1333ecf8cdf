package service

import (
	"context"
	"errors"
	"fmt"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

// accessGuard resolves the caller's membership on a task and checks it
// against the role policy. A missing membership is reported as notFound so
// that non-members cannot learn whether the resource exists.
type accessGuard struct {
	memberships ports.MembershipRepository
}

func (g accessGuard) membership(ctx context.Context, taskID, userID uint64, notFound error) (domain.Membership, error) {
	membership, err := g.memberships.Get(ctx, taskID, userID)
	if errors.Is(err, domain.ErrMembershipNotFound) {
		return domain.Membership{}, notFound
	}
	if err != nil {
		return domain.Membership{}, fmt.Errorf("load membership of user %d on task %d: %w", userID, taskID, err)
	}
	return membership, nil
}

func (g accessGuard) authorize(ctx context.Context, taskID, userID uint64, action domain.Action, notFound error) (domain.Membership, error) {
	membership, err := g.membership(ctx, taskID, userID, notFound)
	if err != nil {
		return domain.Membership{}, err
	}
	if !domain.IsAllowed(membership.Role, action) {
		return domain.Membership{}, domain.ErrForbidden
	}
	return membership, nil
}

func (g accessGuard) authorizeMembership(ctx context.Context, taskID, userID uint64, action domain.MembershipAction) (domain.Membership, error) {
	membership, err := g.membership(ctx, taskID, userID, domain.ErrTaskNotFound)
	if err != nil {
		return domain.Membership{}, err
	}
	if !domain.IsMembershipActionAllowed(membership.Role, action) {
		return domain.Membership{}, domain.ErrForbidden
	}
	return membership, nil
}
