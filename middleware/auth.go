package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gr10greesh/E-commerce/auth"
)

// TokenHeader is the custom bearer header the storefront sends.
const TokenHeader = "auth-token"

// ValidateToken guards the cart endpoints. On success the user id is
// stored in the context under "user_id".
func ValidateToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Please authenticate using a valid token"})
			return
		}

		userID, err := auth.UserIDFromToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "errors": "Invalid or expired token"})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
