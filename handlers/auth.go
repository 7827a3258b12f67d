package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/auth"
	"github.com/gsschool/backend/internal/config"
	"github.com/gsschool/backend/pkg/logger"
	"github.com/gsschool/backend/pkg/metrics"
	"github.com/gsschool/backend/pkg/middleware"
)

// LoginRequest is the credential pair for the single admin account.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthHandler issues and clears the session cookie. Tokens are fully
// stateless: logout only clears the cookie, an already-issued bearer token
// stays valid until its embedded expiry.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Register routes under /api/auth
func (h *AuthHandler) Register(r *gin.Engine) {
	a := r.Group("/api/auth")
	a.POST("/login", h.Login)
	a.POST("/logout", h.Logout)
	a.GET("/me", middleware.RequireAuth(h.cfg.Auth.JWTSecret, h.cfg.Auth.CookieName), h.Me)
}

// Login checks the configured admin credential and, on match, returns a
// 7-day token both as an httpOnly cookie and in the body. The body copy lets
// clients fall back to Authorization: Bearer when third-party cookies are
// blocked (frontend and backend run on different origins in production).
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username != h.cfg.Auth.AdminUsername || req.Password != h.cfg.Auth.AdminPassword {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	id := auth.Identity{Username: req.Username, Role: "admin"}
	token, err := auth.Issue(h.cfg.Auth.JWTSecret, id, h.cfg.Auth.TokenTTL)
	if err != nil {
		logger.Errorf("auth: token issue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	h.setSessionCookie(c, token, int(h.cfg.Auth.TokenTTL.Seconds()))
	metrics.LoginAttempts.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": gin.H{"username": id.Username}, "token": token})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me returns the identity of the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": id})
}

// Cross-site cookies need SameSite=None plus Secure to be accepted by
// modern browsers; in development Lax keeps plain-http logins working.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.cfg.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(h.cfg.Auth.CookieName, token, maxAge, "/", "", h.cfg.IsProduction(), true)
}
