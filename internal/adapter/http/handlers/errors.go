package handlers

import (
	"errors"
	"net/http"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type errorResponse struct {
	err    error
	status int
	msgKey string
}

var domainErrorResponses = []errorResponse{
	{err: domain.ErrTaskNotFound, status: http.StatusNotFound, msgKey: apierrors.MsgTaskNotFound},
	{err: domain.ErrSubtaskNotFound, status: http.StatusNotFound, msgKey: apierrors.MsgSubtaskNotFound},
	{err: domain.ErrMembershipNotFound, status: http.StatusNotFound, msgKey: apierrors.MsgMembershipNotFound},
	{err: domain.ErrForbidden, status: http.StatusForbidden, msgKey: apierrors.MsgForbidden},
	{err: domain.ErrDuplicateMembership, status: http.StatusBadRequest, msgKey: apierrors.MsgDuplicateMembership},
	{err: domain.ErrUserNotFound, status: http.StatusBadRequest, msgKey: apierrors.MsgUserNotFound},
	{err: domain.ErrSelfActionForbidden, status: http.StatusBadRequest, msgKey: apierrors.MsgForbidden},
}

// messageOverride swaps the message of a known domain error for one
// specific to the operation, e.g. the self-removal wording.
type messageOverride map[error]string

// writeServiceError maps err to its HTTP response. Unknown errors are
// logged and answered 500 with failKey.
func writeServiceError(c *gin.Context, err error, failKey string, overrides messageOverride, fields ...zap.Field) {
	for _, candidate := range domainErrorResponses {
		if !errors.Is(err, candidate.err) {
			continue
		}
		msgKey := candidate.msgKey
		if override, ok := overrides[candidate.err]; ok {
			msgKey = override
		}
		writeError(c, candidate.status, msgKey)
		return
	}

	_ = c.Error(err)
	fields = append(fields, zap.String("operation", failKey), zap.Error(err))
	zap.L().Error("service call failed", fields...)
	writeError(c, http.StatusInternalServerError, failKey)
}
