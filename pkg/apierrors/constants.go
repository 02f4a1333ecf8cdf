package apierrors

// Translation keys, see pkg/translator/translation.
const (
	MsgUnauthenticated = "unauthenticated"
	MsgForbidden       = "forbidden"

	MsgInvalidTaskID            = "invalidTaskID"
	MsgInvalidSubtaskID         = "invalidSubtaskID"
	MsgInvalidUserID            = "invalidUserID"
	MsgInvalidTaskPayload       = "invalidTaskPayload"
	MsgInvalidSubtaskPayload    = "invalidSubtaskPayload"
	MsgInvalidMembershipPayload = "invalidMembershipPayload"

	MsgTaskNotFound       = "taskNotFound"
	MsgSubtaskNotFound    = "subtaskNotFound"
	MsgMembershipNotFound = "membershipNotFound"
	MsgUserNotFound       = "userNotFound"

	MsgDuplicateMembership    = "duplicateMembership"
	MsgSelfRoleChange         = "selfRoleChange"
	MsgSelfRemoval            = "selfRemoval"
	MsgForbiddenCreateSubtask = "forbiddenCreateSubtask"
	MsgForbiddenDeleteSubtask = "forbiddenDeleteSubtask"

	MsgFailListTask         = "errorListTask"
	MsgFailGetTask          = "failGetTask"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgFailListSubtasks     = "failListSubtasks"
	MsgFailGetSubtask       = "failGetSubtask"
	MsgFailCreateSubtask    = "failCreateSubtask"
	MsgFailUpdateSubtask    = "failUpdateSubtask"
	MsgFailDeleteSubtask    = "failDeleteSubtask"
	MsgFailListMemberships  = "failListMemberships"
	MsgFailGetMembership    = "failGetMembership"
	MsgFailAddMember        = "failAddMember"
	MsgFailUpdateMemberRole = "failUpdateMemberRole"
	MsgFailRemoveMember     = "failRemoveMember"
)
