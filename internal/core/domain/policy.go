package domain

// Action is an operation on a task or on one of its subtasks.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// MembershipAction is an operation on the membership list of a task.
type MembershipAction string

const (
	MembershipActionList       MembershipAction = "list"
	MembershipActionAdd        MembershipAction = "add"
	MembershipActionUpdateRole MembershipAction = "update_role"
	MembershipActionRemove     MembershipAction = "remove"
)

var resourcePolicy = map[Role]map[Action]bool{
	RoleOwner:    {ActionRead: true, ActionUpdate: true, ActionDelete: true},
	RoleAssigned: {ActionRead: true, ActionUpdate: true},
	RoleViewer:   {ActionRead: true},
}

var membershipPolicy = map[Role]map[MembershipAction]bool{
	RoleOwner: {
		MembershipActionList:       true,
		MembershipActionAdd:        true,
		MembershipActionUpdateRole: true,
		MembershipActionRemove:     true,
	},
	RoleAssigned: {MembershipActionList: true},
	RoleViewer:   {MembershipActionList: true},
}

// IsAllowed reports whether role may perform action on a task or subtask.
// The zero Role (no membership) is never allowed anything.
func IsAllowed(role Role, action Action) bool {
	return resourcePolicy[role][action]
}

// IsMembershipActionAllowed reports whether role may perform action on the
// membership list. Self-targeting updates and removals are rejected by the
// caller even when this returns true.
func IsMembershipActionAllowed(role Role, action MembershipAction) bool {
	return membershipPolicy[role][action]
}
