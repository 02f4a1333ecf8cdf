package middleware

import (
	"net/http"
	"strings"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

// AuthMiddleware resolves the bearer token into the caller's user id.
// Every request below it is rejected with 401 unless identity is
// established.
func AuthMiddleware(authenticator ports.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthenticated(c)
			return
		}

		userID, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.Error(err))
			abortUnauthenticated(c)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the id stored by AuthMiddleware.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok && userID != 0
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthenticated, GetLang(c)),
	)
}
