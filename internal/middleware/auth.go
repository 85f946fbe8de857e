package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CodeAdityaP/Pixel/internal/auth"
)

// bearerToken pulls the token out of the Authorization header, or ""
// when the header is absent or not in Bearer form.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware guards endpoints that require a logged-in user.
// It validates the bearer token and stores the user id in the gin
// context under "userID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		userID, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware is the identity context for cart and wishlist
// endpoints: an absent or invalid credential degrades to an anonymous
// identity (empty "userID") instead of failing, so the client falls back
// to local-only state. Every downstream handler pattern-matches once on
// anonymous vs. concrete user.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := ""
		if tokenString := bearerToken(c); tokenString != "" {
			if id, err := auth.ValidateToken(tokenString); err == nil {
				userID = id
			}
		}
		c.Set("userID", userID)
		c.Next()
	}
}
