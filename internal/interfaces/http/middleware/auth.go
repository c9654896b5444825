package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/synerjet/bendesk/internal/infrastructure/auth"
	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/constants"
	"github.com/synerjet/bendesk/internal/shared/errors"
	"github.com/synerjet/bendesk/internal/shared/logger"
	"github.com/synerjet/bendesk/internal/shared/utils"
)

// Principal is the authenticated account of a request.
type Principal struct {
	UserID   uint
	Username string
	Role     authorization.UserRole
}

type AuthMiddleware struct {
	jwtService *auth.JWTService
	cookieName string
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, cookieName string, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
		logger:     logger,
	}
}

// RequireAuth accepts the session cookie or an Authorization: Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewTokenMissingError())
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err, "path", c.Request.URL.Path)
			utils.ErrorResponseWithError(c, errors.NewTokenInvalidError())
			c.Abort()
			return
		}

		SetPrincipal(c, Principal{UserID: claims.UserID, Username: claims.Username, Role: claims.Role})
		c.Next()
	}
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader(constants.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SetPrincipal stores p under the context keys read by handlers and the
// permission middleware.
func SetPrincipal(c *gin.Context, p Principal) {
	c.Set(constants.ContextKeyUserID, p.UserID)
	c.Set(constants.ContextKeyUsername, p.Username)
	c.Set(constants.ContextKeyUserRole, string(p.Role))
}

// CurrentUser returns the principal set by RequireAuth.
func CurrentUser(c *gin.Context) (Principal, bool) {
	id, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return Principal{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return Principal{}, false
	}
	return Principal{
		UserID:   userID,
		Username: c.GetString(constants.ContextKeyUsername),
		Role:     authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}
