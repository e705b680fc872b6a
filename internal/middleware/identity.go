package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/niramoy/clinic-booking/internal/config"
	domain "github.com/niramoy/clinic-booking/internal/domain/booking"
)

const ContextIdentity = "identity"

// OptionalIdentity attaches the authenticated identity to the context when a
// valid bearer token is present, and lets the request through either way.
// The public booking endpoint allows guests; a bad token is treated the
// same as no token.
func OptionalIdentity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerClaims(c, cfg)
		if !ok {
			c.Next()
			return
		}

		sub, okID := claims["sub"].(float64)
		if !okID {
			c.Next()
			return
		}

		email, _ := claims["email"].(string)

		c.Set(ContextIdentity, &domain.Identity{
			ID:    fmt.Sprintf("%d", uint(sub)),
			Email: email,
		})

		c.Next()
	}
}

// IdentityFrom returns the caller identity set by OptionalIdentity, or nil
// for guests.
func IdentityFrom(c *gin.Context) *domain.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(*domain.Identity); ok {
			return id
		}
	}
	return nil
}
