package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/media"
	"github.com/gsschool/backend/pkg/logger"
	"github.com/gsschool/backend/pkg/metrics"
)

// UploadHandler accepts standalone media uploads. The returned public path
// is meant to be referenced from notice image fields or page documents;
// unlike gallery uploads it records no collection entry.
type UploadHandler struct {
	uploads *media.DiskStore
}

func NewUploadHandler(uploads *media.DiskStore) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Register routes.
func (h *UploadHandler) Register(r *gin.Engine, requireAuth gin.HandlerFunc) {
	r.POST("/api/upload", requireAuth, h.Upload)
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		logger.Errorf("upload: open failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	defer f.Close()

	public, err := h.uploads.Save(c.Request.Context(), fh.Filename, f, fh.Header.Get("Content-Type"))
	if err != nil {
		logger.Errorf("upload: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	metrics.Uploads.Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true, "url": public})
}
