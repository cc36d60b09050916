package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"lessonhub/internal/domain/user"
	"lessonhub/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type ActorFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.Participant, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	users          ActorFinder
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator TokenValidator, users ActorFinder) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
	}
}

// RequireAuth validates the bearer token and loads the acting participant
// into the request context. Deactivated accounts are rejected even with a
// valid token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		actor, err := m.users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Unknown user",
			})
			c.Abort()
			return
		}
		if !actor.IsActive() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is deactivated",
			})
			c.Abort()
			return
		}

		c.Set(ctxActorKey, actor)
		c.Set("jwt_claims", map[string]any{
			"user_id": actor.ID().String(),
			"role":    actor.Role().String(),
		})
		c.Next()
	}
}

// RequireRole gates a route to one role. Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if actor.Role() != role {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetActor(c *gin.Context) (*user.Participant, bool) {
	value, exists := c.Get(ctxActorKey)
	if !exists {
		return nil, false
	}

	actor, ok := value.(*user.Participant)
	return actor, ok
}
