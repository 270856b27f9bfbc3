package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Identity is the pre-authenticated user attached to the request by the
// auth gateway in front of this service. Authentication itself happens
// there; this middleware only consumes the result.
type Identity struct {
	ID    string
	Email string
	Role  string
}

const identityKey = "auth.identity"

const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerUserRole  = "X-User-Role"
)

func ExtractIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerUserID)
		if id != "" {
			c.Set(identityKey, Identity{
				ID:    id,
				Email: c.GetHeader(headerUserEmail),
				Role:  c.GetHeader(headerUserRole),
			})
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// RequireRoles gates a route to authenticated users holding one of the
// given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if len(allowed) > 0 && !allowed[identity.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}
