package ports

import (
	"context"
	"tasktracker/internal/core/domain"
)

type MembershipRepository interface {
	Get(ctx context.Context, taskID, userID uint64) (domain.Membership, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Membership, error)
	Create(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error)
	GetOrCreate(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error)
	UpdateRole(ctx context.Context, taskID, userID uint64, role domain.Role) (domain.Membership, error)
	Delete(ctx context.Context, taskID, userID uint64) error
}

type MembershipService interface {
	ListMemberships(ctx context.Context, callerID, taskID uint64) ([]domain.Membership, error)
	GetMembership(ctx context.Context, callerID, taskID, userID uint64) (domain.Membership, error)
	AddMember(ctx context.Context, callerID, taskID uint64, input domain.AddMemberInput) (domain.Membership, error)
	UpdateMemberRole(ctx context.Context, callerID, taskID, userID uint64, role domain.Role) (domain.Membership, error)
	RemoveMember(ctx context.Context, callerID, taskID, userID uint64) error
}
