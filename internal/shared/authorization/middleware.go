package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/shared/constants"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// RequirePermission aborts with 403 unless the authenticated role holds perm.
// It must run after the auth middleware.
func RequirePermission(checker Checker, perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !checker.Allowed(role, perm) {
			utils.ErrorResponse(c, http.StatusForbidden, "permission denied")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequirePermission for user management.
func RequireAdmin(checker Checker) gin.HandlerFunc {
	return RequirePermission(checker, PermManageUsers)
}
