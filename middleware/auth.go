package middleware

import (
	"net/http"
	"strings"

	"legalsahyog/services/auth"
	"legalsahyog/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middlewares.
const (
	CtxSubject = "subject"
	CtxEmail   = "email"
	CtxRole    = "role"
)

// JWTAuth validates the bearer token and, when roles are given, requires the
// token's role to be one of them. The authenticated identity is stored on the
// gin context.
func JWTAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if len(roles) > 0 {
			allowed := false
			for _, r := range roles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
				return
			}
		}

		c.Set(CtxSubject, claims.Subject)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// UserAuth requires a user token.
func UserAuth() gin.HandlerFunc {
	return JWTAuth(auth.RoleUser)
}

// ProviderAuth requires a provider token.
func ProviderAuth() gin.HandlerFunc {
	return JWTAuth(auth.RoleProvider)
}

// AdminAuth requires an admin token.
func AdminAuth() gin.HandlerFunc {
	return JWTAuth(auth.RoleAdmin)
}

// Subject returns the authenticated account id set by JWTAuth.
func Subject(c *gin.Context) string {
	return c.GetString(CtxSubject)
}

// Role returns the authenticated role set by JWTAuth.
func Role(c *gin.Context) string {
	return c.GetString(CtxRole)
}
