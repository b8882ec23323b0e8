// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"github.com/gin-gonic/gin"
)

// Identity represents the caller's identity as asserted by the identity provider.
// Handlers use it instead of reading gin context keys directly.
type Identity interface {
	// UserID returns the provider's subject for the caller.
	UserID() string
	// IsAuthenticated returns true if the caller presented a valid token.
	IsAuthenticated() bool
}

type identity struct {
	userID        string
	authenticated bool
}

func (i *identity) UserID() string {
	return i.userID
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, ok := c.Get(ContextUserIDKey)
	if !ok {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(string)
	if !ok || uid == "" {
		return &identity{authenticated: false}
	}

	return &identity{userID: uid, authenticated: true}
}
