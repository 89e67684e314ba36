package auth

import (
	"net/http"
	"strings"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
	"github.com/gin-gonic/gin"
)

// TokenHeader is the legacy header the admin panel sends tokens in.
// Authorization: Bearer is accepted as well.
const TokenHeader = "x-auth-token"

// TokenFromRequest extracts the session token from a request
func TokenFromRequest(c *gin.Context) string {
	if token := c.GetHeader(TokenHeader); token != "" {
		return token
	}
	authz := c.GetHeader("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}

// RequireAuth middleware validates the admin token on API requests.
// Missing or invalid tokens get a 401 so the admin panel can purge its
// session and send the user back to the login screen.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token, authorization denied"})
			return
		}

		claims, err := ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			return
		}

		// Load user from database
		var user models.User
		if err := db.GetDB().First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token is not valid"})
			return
		}

		// Set user in context for handlers
		c.Set("user", &user)

		c.Next()
	}
}
