package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"venu/internal/authz"
	"venu/internal/models/db_models"
	"venu/pkg/utils"
)

// JWTAuthMiddleware validates the bearer token and stores the acting identity
// on the request context as an authz.Caller. Handlers read it back through
// CallerFrom instead of reaching for session state.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("caller", authz.Caller{ID: userID, Role: db_models.Role(claims.Role)})
		c.Next()
	}
}

// CallerFrom returns the authenticated caller set by JWTAuthMiddleware.
// The zero Caller is returned on unauthenticated requests.
func CallerFrom(c *gin.Context) authz.Caller {
	if v, ok := c.Get("caller"); ok {
		if caller, ok := v.(authz.Caller); ok {
			return caller
		}
	}
	return authz.Caller{}
}

// RoleMiddleware lets through only callers holding one of the given roles.
func RoleMiddleware(roles ...db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := CallerFrom(c)

		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}
