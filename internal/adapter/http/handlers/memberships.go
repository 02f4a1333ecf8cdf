package handlers

import (
	"net/http"
	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/validation"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MembershipHandler struct {
	membershipService ports.MembershipService
}

func NewMembershipHandler(membershipService ports.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	memberships, err := h.membershipService.ListMemberships(c.Request.Context(), userID, taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListMemberships, nil, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMembershipItems(memberships))
}

func (h *MembershipHandler) GetMembership(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, targetID, ok := membershipPath(c)
	if !ok {
		return
	}

	membership, err := h.membershipService.GetMembership(c.Request.Context(), userID, taskID, targetID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailGetMembership, nil,
			zap.Uint64("task_id", taskID), zap.Uint64("target_user_id", targetID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMembershipItem(membership))
}

func (h *MembershipHandler) AddMember(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.AddMembershipRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidMembershipPayload)
		return
	}

	input, err := validation.BuildAddMemberInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidMembershipPayload)
		return
	}

	membership, err := h.membershipService.AddMember(c.Request.Context(), userID, taskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailAddMember, nil, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToMembershipItem(membership))
}

func (h *MembershipHandler) UpdateMemberRole(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, targetID, ok := membershipPath(c)
	if !ok {
		return
	}

	// Self-targeting is rejected whatever the body holds, so the service
	// checks run before the payload is read. They never reach the update.
	var role domain.Role
	if targetID != userID {
		var req dto.UpdateMembershipRequest
		if _, err := bindJSON(c, &req); err != nil {
			writeError(c, http.StatusBadRequest, apierrors.MsgInvalidMembershipPayload)
			return
		}

		var err error
		role, err = validation.BuildMemberRole(req)
		if err != nil {
			writeError(c, http.StatusBadRequest, apierrors.MsgInvalidMembershipPayload)
			return
		}
	}

	membership, err := h.membershipService.UpdateMemberRole(c.Request.Context(), userID, taskID, targetID, role)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateMemberRole,
			messageOverride{domain.ErrSelfActionForbidden: apierrors.MsgSelfRoleChange},
			zap.Uint64("task_id", taskID), zap.Uint64("target_user_id", targetID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToMembershipItem(membership))
}

func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, targetID, ok := membershipPath(c)
	if !ok {
		return
	}

	if err := h.membershipService.RemoveMember(c.Request.Context(), userID, taskID, targetID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailRemoveMember,
			messageOverride{domain.ErrSelfActionForbidden: apierrors.MsgSelfRemoval},
			zap.Uint64("task_id", taskID), zap.Uint64("target_user_id", targetID))
		return
	}

	c.Status(http.StatusNoContent)
}

func membershipPath(c *gin.Context) (uint64, uint64, bool) {
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return 0, 0, false
	}
	targetID, ok := pathID(c, "user_id", apierrors.MsgInvalidUserID)
	if !ok {
		return 0, 0, false
	}
	return taskID, targetID, true
}
