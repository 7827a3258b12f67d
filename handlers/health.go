package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/config"
	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/internal/media"
	"github.com/gsschool/backend/internal/store"
)

// HealthHandler reports a read-only diagnostic snapshot: uptime, data
// counts, cookie and CORS configuration, upload-dir writability. It never
// requires authentication and must not fail when documents are missing.
type HealthHandler struct {
	cfg         *config.Config
	store       store.Store
	uploads     *media.DiskStore
	corsOrigins []string
	started     time.Time
}

func NewHealthHandler(cfg *config.Config, st store.Store, uploads *media.DiskStore, corsOrigins []string, started time.Time) *HealthHandler {
	return &HealthHandler{cfg: cfg, store: st, uploads: uploads, corsOrigins: corsOrigins, started: started}
}

// Register routes.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/api/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	now := time.Now()

	counts := gin.H{
		"notices": h.collectionCount(ctx, "notices"),
		"gallery": h.collectionCount(ctx, "gallery"),
	}

	pages := gin.H{}
	for _, k := range content.PageKeys() {
		if k == "footer" {
			continue
		}
		pages[k] = h.pageInfo(ctx, k)
	}

	sameSite := "lax"
	if h.cfg.IsProduction() {
		sameSite = "none"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"time":          now.UTC().Format(time.RFC3339),
		"uptimeSeconds": time.Since(h.started).Seconds(),
		"runtime":       runtime.Version(),
		"env":           h.cfg.Server.Environment,
		"data":          gin.H{"counts": counts, "pages": pages},
		"security": gin.H{
			"authCookie": h.cfg.Auth.CookieName,
			"cookieOptions": gin.H{
				"httpOnly":      true,
				"sameSite":      sameSite,
				"secure":        h.cfg.IsProduction(),
				"maxAgeSeconds": int(h.cfg.Auth.TokenTTL.Seconds()),
				"path":          "/",
			},
			"corsOrigins":     h.corsOrigins,
			"uploadsWritable": h.uploads.Writable(),
		},
	})
}

func (h *HealthHandler) collectionCount(ctx context.Context, name string) int {
	raw, err := h.store.Read(ctx, name)
	if err != nil {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return 0
	}
	return len(items)
}

func (h *HealthHandler) pageInfo(ctx context.Context, key string) gin.H {
	info := gin.H{"hasHeader": false, "images": 0}
	raw, err := h.store.Read(ctx, key)
	if err != nil {
		return info
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return info
	}
	if _, ok := doc["header"]; ok {
		info["hasHeader"] = true
	}
	if imgs, ok := doc["images"]; ok {
		var list []json.RawMessage
		if err := json.Unmarshal(imgs, &list); err == nil {
			info["images"] = len(list)
		}
	}
	return info
}
