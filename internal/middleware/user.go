package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

const userIDKey = "userID"

// UserIdentity resolves the cart owner from the x-user-id header, falling
// back to the shared default user when the caller sends none.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("x-user-id")
		if userID == "" {
			userID = domain.DefaultUserID
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity resolved by UserIdentity for this request.
func UserID(c *gin.Context) string {
	if userID := c.GetString(userIDKey); userID != "" {
		return userID
	}
	return domain.DefaultUserID
}
