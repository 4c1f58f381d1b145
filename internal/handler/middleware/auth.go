package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"facility-parking/internal/domain/admin"
	"facility-parking/internal/handler/httperr"
	"facility-parking/internal/pkg/cookie"
	"facility-parking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken = errors.New("missing session token")
	errNoAdmin      = errors.New("no authenticated admin in context")
	errRoleDenied   = errors.New("role not allowed")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxAdminIDKey   = "admin_id"
	ctxAdminRoleKey = "admin_role"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth reads the session cookie first and falls back to a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		adminID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminIDKey, adminID)
		c.Set(ctxAdminRoleKey, role)
		c.Set(ctxClaimsKey, map[string]any{
			"admin_id": adminID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...admin.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAdminRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errNoAdmin, "Internal server error", nil)
			return
		}

		if !slices.Contains(roles, role) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleDenied, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}

func GetAdminRole(c *gin.Context) (admin.Role, bool) {
	adminRole, exists := c.Get(ctxAdminRoleKey)
	if !exists {
		return "", false
	}

	role, ok := adminRole.(admin.Role)
	return role, ok
}

// SetAdmin puts an authenticated admin on the context; handler tests use it in place of RequireAuth.
func SetAdmin(c *gin.Context, adminID uuid.UUID, role admin.Role) {
	c.Set(ctxAdminIDKey, adminID)
	c.Set(ctxAdminRoleKey, role)
}
