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

type SubtaskHandler struct {
	subtaskService ports.SubtaskService
}

func NewSubtaskHandler(subtaskService ports.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

func (h *SubtaskHandler) ListSubtasks(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	subtasks, err := h.subtaskService.ListSubtasks(c.Request.Context(), userID, taskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailListSubtasks, nil, zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItems(subtasks))
}

func (h *SubtaskHandler) CreateSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	taskID, ok := pathID(c, "id", apierrors.MsgInvalidTaskID)
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}

	input, err := validation.BuildCreateSubtaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}

	subtask, err := h.subtaskService.CreateSubtask(c.Request.Context(), userID, taskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailCreateSubtask,
			messageOverride{domain.ErrForbidden: apierrors.MsgForbiddenCreateSubtask},
			zap.Uint64("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) GetSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	subtaskID, ok := pathID(c, "id", apierrors.MsgInvalidSubtaskID)
	if !ok {
		return
	}

	subtask, err := h.subtaskService.GetSubtask(c.Request.Context(), userID, subtaskID)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailGetSubtask, nil, zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) UpdateSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	subtaskID, ok := pathID(c, "id", apierrors.MsgInvalidSubtaskID)
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}

	input, err := validation.BuildUpdateSubtaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubtaskPayload)
		return
	}

	subtask, err := h.subtaskService.UpdateSubtask(c.Request.Context(), userID, subtaskID, input)
	if err != nil {
		writeServiceError(c, err, apierrors.MsgFailUpdateSubtask, nil, zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *SubtaskHandler) DeleteSubtask(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	subtaskID, ok := pathID(c, "id", apierrors.MsgInvalidSubtaskID)
	if !ok {
		return
	}

	if err := h.subtaskService.DeleteSubtask(c.Request.Context(), userID, subtaskID); err != nil {
		writeServiceError(c, err, apierrors.MsgFailDeleteSubtask,
			messageOverride{domain.ErrForbidden: apierrors.MsgForbiddenDeleteSubtask},
			zap.Uint64("subtask_id", subtaskID))
		return
	}

	c.Status(http.StatusNoContent)
}
