package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-reservation/internal/auth"
	"github.com/BruksfildServices01/barbershop-reservation/internal/config"
	"github.com/BruksfildServices01/barbershop-reservation/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware requires a valid bearer token and stores the caller's id
// and role in the context. Role checks are left to the use cases.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a bearer token.")
			c.Abort()
			return
		}

		actor, err := auth.ParseToken(strings.TrimSpace(parts[1]), cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token is invalid or expired.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, actor.UserID)
		c.Set(ContextUserRole, actor.Role)

		c.Next()
	}
}

// Actor returns the authenticated caller. It is the zero Actor on public
// routes.
func Actor(c *gin.Context) auth.Actor {
	id, _ := c.Get(ContextUserID)
	role, _ := c.Get(ContextUserRole)

	userID, _ := id.(uint)
	roleName, _ := role.(string)

	return auth.Actor{UserID: userID, Role: roleName}
}
