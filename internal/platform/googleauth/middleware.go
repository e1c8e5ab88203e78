package googleauth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextClaim is the gin context key holding the verified *Claim.
const ContextClaim = "googleClaim"

// Required returns a gin middleware that verifies the bearer Google ID
// token and stashes the normalized claim into the request context.
// Downstream handlers trust the claim and do not re-verify it.
func Required(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		rawToken := strings.TrimPrefix(auth, "Bearer ")

		claim, err := verifier.Verify(c.Request.Context(), rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextClaim, claim)
		c.Next()
	}
}

// ClaimFrom returns the verified claim set by Required.
func ClaimFrom(c *gin.Context) (*Claim, bool) {
	v, ok := c.Get(ContextClaim)
	if !ok {
		return nil, false
	}
	claim, ok := v.(*Claim)
	return claim, ok
}
