package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/CodeAdityaP/Pixel/internal/store"
)

// AdminMiddleware allows only users with the admin role through.
// Run it after AuthMiddleware so "userID" is already set.
func AdminMiddleware(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDHex := c.GetString("userID")
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identity"})
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account lookup failed"})
			c.Abort()
			return
		}

		if user.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
