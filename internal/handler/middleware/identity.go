package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dormgate/internal/gateway"
	"dormgate/internal/handler/httperr"
	"dormgate/internal/pkg/errs"
)

const (
	headerUserID         = "X-User-ID"
	headerUserRole       = "X-User-Role"
	headerUserBuildingID = "X-User-Building-ID"

	ctxUserID         = "user_id"
	ctxUserRole       = "user_role"
	ctxUserBuildingID = "user_building_id"

	RoleAdmin = "ADMIN"
)

// IdentityMiddleware trusts the identity headers set by the authenticating
// reverse proxy in front of this service. Authentication itself is out of
// scope here; the gateway only propagates who is acting.
type IdentityMiddleware struct{}

func NewIdentityMiddleware() *IdentityMiddleware {
	return &IdentityMiddleware{}
}

func (m *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(headerUserID)
		if userID == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing identity header"), "Unauthorized", nil)
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUserRole, c.GetHeader(headerUserRole))
		c.Set(ctxUserBuildingID, c.GetHeader(headerUserBuildingID))

		// Propagate the acting user to upstream GraphQL calls.
		ctx := gateway.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (m *IdentityMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserRole(c) != role {
			httperr.AbortWithError(c, http.StatusForbidden,
				errs.New("insufficient role"), "Forbidden", nil)
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get(ctxUserRole); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func GetUserBuildingID(c *gin.Context) string {
	if v, ok := c.Get(ctxUserBuildingID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
