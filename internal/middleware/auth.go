package middleware

import (
	"strings"

	"vendor-report-srv/pkg/response"
	"vendor-report-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and puts the vendor scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), bearerPrefix))
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc := scope.NewScope(payload)
		if sc.UserID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		ctx = scope.SetPayloadToContext(ctx, payload)
		ctx = scope.SetScopeToContext(ctx, sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
