package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const identityKey = "auth_identity"

// Identity is the authenticated caller, passed explicitly into services
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// SetIdentity stores the identity on the gin context
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// GetIdentity is a helper function to extract the identity from context
func GetIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}

	identity, ok := value.(Identity)
	return identity, ok
}
