package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errEmptyBody = errors.New("empty request body")

// bindJSON decodes the body into req and runs its binding tags. The raw
// field map is returned so validation can tell an absent field from null.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, errEmptyBody
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, req); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	return raw, nil
}

// pathID parses a positive numeric path parameter, answering 400 with
// msgKey otherwise.
func pathID(c *gin.Context, param, msgKey string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest, msgKey)
		return 0, false
	}
	return id, true
}

// callerID is always set behind AuthMiddleware; a miss means the route was
// mounted without it.
func callerID(c *gin.Context) (uint64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, apierrors.MsgUnauthenticated)
	}
	return userID, ok
}

func writeError(c *gin.Context, status int, msgKey string) {
	c.JSON(status, apierrors.CreateError(status, msgKey, middleware.GetLang(c)))
}
