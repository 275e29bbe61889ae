package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pharmanet/medsupply-api/internal/auth"
	"github.com/pharmanet/medsupply-api/internal/httperr"
	"github.com/pharmanet/medsupply-api/internal/models"
)

const (
	ContextUser     = "currentUser"
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextToken    = "rawToken"
)

// UserResolver loads the current user for a verified token. The resolved
// role is what the gates trust, not whatever the token was signed with.
type UserResolver interface {
	ResolveUser(ctx context.Context, id uint) (*models.User, error)
}

func Auth(
	tokens *auth.Manager,
	blacklist auth.BlacklistStore,
	users UserResolver,
) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "missing_authorization_header", "authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, "invalid_authorization_header", "expected a bearer token")
			return
		}

		tokenString := parts[1]

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, http.StatusUnauthorized, "session_expired", "session has expired, log in again")
				return
			}
			abort(c, http.StatusUnauthorized, "invalid_token", "token is invalid")
			return
		}

		revoked, err := blacklist.Contains(c.Request.Context(), tokenString)
		if err != nil {
			abort(c, http.StatusInternalServerError, "internal_error", "could not verify session")
			return
		}
		if revoked {
			abort(c, http.StatusUnauthorized, "token_revoked", "token has been logged out")
			return
		}

		user, err := users.ResolveUser(c.Request.Context(), userID)
		if err != nil {
			abort(c, http.StatusUnauthorized, "user_not_found", "account no longer exists")
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextToken, tokenString)

		c.Next()
	}
}

// RequireRole gates a route group after Auth has resolved the user.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(ContextUserRole)
		role, ok := roleVal.(string)
		if !exists || !ok || !allowed[role] {
			abort(c, http.StatusForbidden, "forbidden", "insufficient role for this operation")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, httperr.HTTPError{
		Code:    code,
		Message: message,
	})
}
