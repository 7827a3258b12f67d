package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// DefaultAllowedOrigins matches localhost/127.0.0.1 on any port (dev) plus
// the production domain. Patterns are surfaced by the health endpoint.
var DefaultAllowedOrigins = []string{
	`^http://localhost(?::\d+)?$`,
	`^http://127\.0\.0\.1(?::\d+)?$`,
	`^https?://gsschool\.edu\.np$`,
	`^https?://www\.gsschool\.edu\.np$`,
}

// CORS allows credentialed cross-origin requests from an explicit pattern
// allow-list. Requests without an Origin header (server-to-server, curl)
// pass untouched; disallowed browser origins get no CORS headers, which
// makes the browser reject the response.
func CORS(patterns []string) gin.HandlerFunc {
	allowed := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		allowed = append(allowed, regexp.MustCompile(p))
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(allowed, origin) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			h.Set("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(allowed []*regexp.Regexp, origin string) bool {
	for _, rx := range allowed {
		if rx.MatchString(origin) {
			return true
		}
	}
	return false
}
