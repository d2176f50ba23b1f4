package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"PvtCall/internal/account"
)

// Auth validates a JWT from the Authorization header or, because browsers
// cannot set headers on a websocket handshake, from a ?token= query
// parameter. On success the display username lands in the gin context.
// With required=false an absent or invalid token just leaves the request
// anonymous, which is how /ws admits guests.
func Auth(secret []byte, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
				return
			}
			c.Next()
			return
		}
		claims, err := account.ParseToken(secret, token)
		if err != nil {
			if required {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token."})
				return
			}
			c.Next()
			return
		}
		c.Set("username", claims.Username)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}
