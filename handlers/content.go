package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/internal/store"
	"github.com/gsschool/backend/pkg/logger"
	"github.com/gsschool/backend/pkg/metrics"
)

// ContentHandler serves the editable page documents. Reads are public,
// writes require the admin session.
type ContentHandler struct {
	svc *content.Service
}

func NewContentHandler(svc *content.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Register routes under /api/content. requireAuth guards the writes.
func (h *ContentHandler) Register(r *gin.Engine, requireAuth gin.HandlerFunc) {
	ct := r.Group("/api/content")
	// home and about keep their historical dedicated paths
	ct.GET("/home", h.getNamed("home"))
	ct.PUT("/home", requireAuth, h.putNamed("home"))
	ct.GET("/about", h.getNamed("about"))
	ct.PUT("/about", requireAuth, h.putNamed("about"))
	ct.GET("/page/:key", h.GetPage)
	ct.PUT("/page/:key", requireAuth, h.PutPage)
}

func (h *ContentHandler) GetPage(c *gin.Context) {
	h.getPage(c, c.Param("key"))
}

func (h *ContentHandler) PutPage(c *gin.Context) {
	h.putPage(c, c.Param("key"))
}

func (h *ContentHandler) getNamed(key string) gin.HandlerFunc {
	return func(c *gin.Context) { h.getPage(c, key) }
}

func (h *ContentHandler) putNamed(key string) gin.HandlerFunc {
	return func(c *gin.Context) { h.putPage(c, key) }
}

func (h *ContentHandler) getPage(c *gin.Context, key string) {
	doc, err := h.svc.GetPage(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

// putPage replaces the page document with the request body as-is. Page
// shapes are free-form, so the only validation is that the body is JSON.
func (h *ContentHandler) putPage(c *gin.Context, key string) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.svc.PutPage(c.Request.Context(), key, body); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		logger.Errorf("content: save %s failed: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	metrics.ContentWrites.WithLabelValues(key).Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
