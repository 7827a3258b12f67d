package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// the limiter store is process-global, so every test uses its own caller key
func limitedRequest(addr string) *http.Request {
	req := httptest.NewRequest("GET", "/limited", nil)
	req.RemoteAddr = addr
	return req
}

func TestRateLimitMiddleware_AllowsUnderLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(10, 2)) // generous rate
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, limitedRequest("10.1.0.1:1234"))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_BlocksWhenExceeded(t *testing.T) {
	r := gin.New()
	// very low rate to force rejections
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, limitedRequest("10.2.0.1:1234"))
	require.Equal(t, http.StatusOK, w1.Code)

	// immediate second request -> should be rate-limited
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, limitedRequest("10.2.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// wait for a token to replenish and it should pass again
	time.Sleep(2100 * time.Millisecond)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, limitedRequest("10.2.0.1:1234"))
	require.Equal(t, http.StatusOK, w3.Code)
}

func TestRateLimitMiddleware_KeysPerClientIP(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(0.5, 1))
	r.GET("/limited", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w1 := httptest.NewRecorder()
	r.ServeHTTP(w1, limitedRequest("10.3.0.1:1234"))
	require.Equal(t, http.StatusOK, w1.Code)

	// same IP immediately again => rejected
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, limitedRequest("10.3.0.1:1234"))
	require.Equal(t, http.StatusTooManyRequests, w2.Code)

	// a different IP has its own bucket
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, limitedRequest("10.3.0.2:1234"))
	require.Equal(t, http.StatusOK, w3.Code)
}
