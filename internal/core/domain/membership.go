package domain

import "time"

type Role string

const (
	RoleOwner    Role = "Owner"
	RoleAssigned Role = "Assigned"
	RoleViewer   Role = "Viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAssigned, RoleViewer:
		return true
	}
	return false
}

// UserSummary is the read-only view of a user owned by the auth provider.
type UserSummary struct {
	ID       uint64
	Username string
	Email    string
}

type Membership struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Role      Role
	CreatedAt time.Time
	User      UserSummary
}

type AddMemberInput struct {
	UserID uint64
	Role   Role
}
