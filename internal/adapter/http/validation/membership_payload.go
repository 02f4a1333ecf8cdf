package validation

import (
	"encoding/json"
	"errors"
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

var ErrInvalidMembershipPayload = errors.New("invalid membership payload")

// BuildAddMemberInput defaults the role to Assigned when it is omitted.
func BuildAddMemberInput(req dto.AddMembershipRequest, raw map[string]json.RawMessage) (domain.AddMemberInput, error) {
	if hasJSONField(raw, "role") && req.Role == nil {
		return domain.AddMemberInput{}, ErrInvalidMembershipPayload
	}

	role := domain.RoleAssigned
	if req.Role != nil {
		role = domain.Role(*req.Role)
	}
	if !role.Valid() || req.UserID == 0 {
		return domain.AddMemberInput{}, ErrInvalidMembershipPayload
	}

	return domain.AddMemberInput{UserID: req.UserID, Role: role}, nil
}

func BuildMemberRole(req dto.UpdateMembershipRequest) (domain.Role, error) {
	role := domain.Role(req.Role)
	if !role.Valid() {
		return "", ErrInvalidMembershipPayload
	}
	return role, nil
}
