package service

import (
	"context"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type MembershipService struct {
	membershipRepository ports.MembershipRepository
	guard                accessGuard
}

func NewMembershipService(membershipRepository ports.MembershipRepository) *MembershipService {
	return &MembershipService{
		membershipRepository: membershipRepository,
		guard:                accessGuard{memberships: membershipRepository},
	}
}

func (s *MembershipService) ListMemberships(ctx context.Context, callerID, taskID uint64) ([]domain.Membership, error) {
	if _, err := s.guard.authorizeMembership(ctx, taskID, callerID, domain.MembershipActionList); err != nil {
		return nil, err
	}
	return s.membershipRepository.ListByTask(ctx, taskID)
}

func (s *MembershipService) GetMembership(ctx context.Context, callerID, taskID, userID uint64) (domain.Membership, error) {
	if _, err := s.guard.authorizeMembership(ctx, taskID, callerID, domain.MembershipActionList); err != nil {
		return domain.Membership{}, err
	}
	return s.membershipRepository.Get(ctx, taskID, userID)
}

func (s *MembershipService) AddMember(ctx context.Context, callerID, taskID uint64, input domain.AddMemberInput) (domain.Membership, error) {
	if _, err := s.guard.authorizeMembership(ctx, taskID, callerID, domain.MembershipActionAdd); err != nil {
		return domain.Membership{}, err
	}
	return s.membershipRepository.Create(ctx, taskID, input.UserID, input.Role)
}

// UpdateMemberRole changes the role of another member. Owners can never
// target themselves, even to re-assert Owner.
func (s *MembershipService) UpdateMemberRole(ctx context.Context, callerID, taskID, userID uint64, role domain.Role) (domain.Membership, error) {
	if err := s.checkTarget(ctx, callerID, taskID, userID, domain.MembershipActionUpdateRole); err != nil {
		return domain.Membership{}, err
	}
	return s.membershipRepository.UpdateRole(ctx, taskID, userID, role)
}

// RemoveMember deletes another member. Self-removal is rejected because no
// ownership transfer exists and the task could be left without an owner.
func (s *MembershipService) RemoveMember(ctx context.Context, callerID, taskID, userID uint64) error {
	if err := s.checkTarget(ctx, callerID, taskID, userID, domain.MembershipActionRemove); err != nil {
		return err
	}
	return s.membershipRepository.Delete(ctx, taskID, userID)
}

// checkTarget evaluates caller membership, caller role, target existence and
// self-targeting, in that order.
func (s *MembershipService) checkTarget(ctx context.Context, callerID, taskID, userID uint64, action domain.MembershipAction) error {
	if _, err := s.guard.authorizeMembership(ctx, taskID, callerID, action); err != nil {
		return err
	}
	if _, err := s.membershipRepository.Get(ctx, taskID, userID); err != nil {
		return err
	}
	if userID == callerID {
		return domain.ErrSelfActionForbidden
	}
	return nil
}

var _ ports.MembershipService = (*MembershipService)(nil)
