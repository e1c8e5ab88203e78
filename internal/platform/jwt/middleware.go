package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Gin context keys populated by AuthRequired.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
)

// AuthRequired returns a gin middleware that validates the bearer
// access token and stashes the authenticated subject into the request
// context. Handlers read the subject id from the context, never from
// the request body.
func AuthRequired(issuer *Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := issuer.Verify(tokenStr, ScopeAccess)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// SubjectID returns the authenticated user's id set by AuthRequired.
func SubjectID(c *gin.Context) (string, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok && s != ""
}
