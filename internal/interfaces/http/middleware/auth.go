package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careline/internal/domain/identity"
	"careline/internal/infrastructure/auth"
	"careline/internal/shared/constants"
	"careline/internal/shared/logger"
	"careline/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and stores the resolved caller in the
// request context under constants.ContextKeyCaller.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCaller, identity.Caller{
			ID:        claims.UserID,
			IsMedUser: claims.IsMedUser,
		})

		c.Next()
	}
}

// CallerFromContext extracts the authenticated caller set by RequireAuth.
func CallerFromContext(c *gin.Context) (identity.Caller, bool) {
	value, exists := c.Get(constants.ContextKeyCaller)
	if !exists {
		return identity.Caller{}, false
	}
	caller, ok := value.(identity.Caller)
	return caller, ok
}
