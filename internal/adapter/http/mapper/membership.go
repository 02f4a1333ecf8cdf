package mapper

import (
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToMembershipItems(memberships []domain.Membership) []dto.MembershipItem {
	items := make([]dto.MembershipItem, 0, len(memberships))
	for _, membership := range memberships {
		items = append(items, ToMembershipItem(membership))
	}
	return items
}

func ToMembershipItem(membership domain.Membership) dto.MembershipItem {
	return dto.MembershipItem{
		ID:   membership.ID,
		Task: membership.TaskID,
		User: dto.UserItem{
			ID:       membership.UserID,
			Username: membership.User.Username,
			Email:    membership.User.Email,
		},
		Role: string(membership.Role),
	}
}
