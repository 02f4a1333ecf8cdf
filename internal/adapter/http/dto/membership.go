package dto

type UserItem struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type MembershipItem struct {
	ID   uint64   `json:"id"`
	Task uint64   `json:"task"`
	User UserItem `json:"user"`
	Role string   `json:"role"`
}

type AddMembershipRequest struct {
	UserID uint64  `json:"user_id" binding:"required,gt=0"`
	Role   *string `json:"role" binding:"omitempty,oneof=Owner Assigned Viewer"`
}

type UpdateMembershipRequest struct {
	Role string `json:"role" binding:"required,oneof=Owner Assigned Viewer"`
}
