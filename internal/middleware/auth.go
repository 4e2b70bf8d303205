package middleware

import (
	"GymAttendanceTracker/internal/auth"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity resolves the caller with provider and stores it on the context.
func Identity(provider auth.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := provider.Resolve(c.Request)
		if err != nil {
			log.Printf("middleware.Identity(): rejected %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by Identity.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
