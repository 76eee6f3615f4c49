package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/event-planner-api/internal/application"
	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/pkg/response"
)

// Context keys set by BearerAuth.
const (
	CtxUserKey   = "currentUser"
	CtxUserIDKey = "userID"
)

// BearerAuth extracts the token from the Authorization header, resolves it to
// a user via the user service, and injects the typed user into the context.
// Every failure mode (missing header, malformed token, bad signature, expired,
// unknown or inactive subject) collapses into the same 401.
func BearerAuth(users *application.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		u, err := users.Resolve(c.Request.Context(), token, time.Now())
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "not authenticated", nil)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// CurrentUser returns the user resolved by BearerAuth, or nil when the route
// is not behind it.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
