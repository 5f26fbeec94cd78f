package middleware

import (
	"net/http"
	"strings"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
	ContextUserKey   = "user"
)

// AuthMiddleware validates the bearer token and resolves the user from the
// database, so revoked and blocked accounts fail immediately regardless of
// token lifetime.
func AuthMiddleware(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, http.StatusUnauthorized, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, apperrors.ErrInvalidToken)
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			abortWith(c, http.StatusUnauthorized, apperrors.ErrInvalidToken)
			return
		}
		if !user.IsActive {
			abortWith(c, http.StatusForbidden, apperrors.ErrAccountDisabled)
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, user.Role)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// contextRole extracts the authenticated role set by AuthMiddleware.
func contextRole(c *gin.Context) (models.UserRole, bool) {
	roleVal, exists := c.Get(ContextRoleKey)
	if !exists {
		return "", false
	}

	if role, ok := roleVal.(models.UserRole); ok {
		return role, true
	}
	if roleStr, ok := roleVal.(string); ok {
		return models.UserRole(roleStr), true
	}
	return "", false
}

// RequireRoles aborts with Forbidden unless the authenticated role is one of
// the given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, ok := contextRole(c)
		if !ok || !roleSet[role] {
			abortWith(c, http.StatusForbidden, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequirePermission aborts with Forbidden unless the authenticated role is
// granted the action in the capability map.
func RequirePermission(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := contextRole(c)
		if !ok || !auth.HasPermission(role, action) {
			abortWith(c, http.StatusForbidden, apperrors.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(ContextUserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

// GetUser extracts the resolved user from the context.
func GetUser(c *gin.Context) *models.User {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func abortWith(c *gin.Context, status int, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(status, apperrors.ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Code:    appErr.Code,
	})
}
