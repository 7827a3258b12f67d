package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/auth"
)

// IdentityKey is the gin context key under which RequireAuth stores the
// verified identity.
const IdentityKey = "identity"

// RequireAuth verifies the session token on mutating/protected routes. The
// token is taken from the Authorization header first (Bearer scheme), then
// from the session cookie; browsers that block the cross-site cookie fall
// back to the header. Every failure maps to the same 401 body.
func RequireAuth(secret, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c, cookieName)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, err := auth.Parse(secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(IdentityKey, id)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	if v, err := c.Cookie(cookieName); err == nil {
		return v
	}
	return ""
}

// CurrentIdentity returns the identity RequireAuth attached to the request.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}
