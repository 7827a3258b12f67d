package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/pkg/logger"
	"github.com/gsschool/backend/pkg/metrics"
)

// NoticesHandler serves the notice board collection.
type NoticesHandler struct {
	svc *content.Service
}

func NewNoticesHandler(svc *content.Service) *NoticesHandler {
	return &NoticesHandler{svc: svc}
}

// Register routes under /api/notices. requireAuth guards create and delete.
func (h *NoticesHandler) Register(r *gin.Engine, requireAuth gin.HandlerFunc) {
	n := r.Group("/api/notices")
	n.GET("", h.List)
	n.POST("", requireAuth, h.Create)
	n.DELETE("/:id", requireAuth, h.Delete)
}

// List returns active notices, newest first. Expired notices are invisible
// to every caller; they stay in storage but there is no admin view for them.
func (h *NoticesHandler) List(c *gin.Context) {
	list, err := h.svc.ListNotices(c.Request.Context(), time.Now())
	if err != nil {
		logger.Errorf("notices: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NoticesHandler) Create(c *gin.Context) {
	var in content.NoticeInput
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	n, err := h.svc.CreateNotice(c.Request.Context(), in)
	if err != nil {
		logger.Errorf("notices: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	metrics.ContentWrites.WithLabelValues("notices").Inc()
	c.JSON(http.StatusOK, n)
}

func (h *NoticesHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteNotice(c.Request.Context(), c.Param("id")); err != nil {
		logger.Errorf("notices: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	metrics.ContentWrites.WithLabelValues("notices").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
