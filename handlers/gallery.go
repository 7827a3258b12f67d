package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/internal/media"
	"github.com/gsschool/backend/pkg/logger"
	"github.com/gsschool/backend/pkg/metrics"
)

// GalleryHandler serves the photo gallery: list is public, uploads and
// deletes require the admin session.
type GalleryHandler struct {
	svc     *content.Service
	uploads *media.DiskStore
}

func NewGalleryHandler(svc *content.Service, uploads *media.DiskStore) *GalleryHandler {
	return &GalleryHandler{svc: svc, uploads: uploads}
}

// Register routes under /api/gallery.
func (h *GalleryHandler) Register(r *gin.Engine, requireAuth gin.HandlerFunc) {
	g := r.Group("/api/gallery")
	g.GET("", h.List)
	g.POST("", requireAuth, h.Create)
	g.DELETE("/:id", requireAuth, h.Delete)
}

func (h *GalleryHandler) List(c *gin.Context) {
	list, err := h.svc.ListGallery(c.Request.Context())
	if err != nil {
		logger.Errorf("gallery: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create accepts a multipart form with an `image` file plus optional
// metadata fields, stores the file and records the item.
func (h *GalleryHandler) Create(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		logger.Errorf("gallery: open upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	defer f.Close()

	public, err := h.uploads.Save(c.Request.Context(), fh.Filename, f, fh.Header.Get("Content-Type"))
	if err != nil {
		logger.Errorf("gallery: store upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}

	item := content.GalleryItem{
		Title:       formValue(c, "title", "Image"),
		Description: c.PostForm("description"),
		Category:    formValue(c, "category", "uncategorized"),
		Image:       public,
		Date:        formValue(c, "date", time.Now().Format("2006-01-02")),
	}
	created, err := h.svc.AddGalleryItem(c.Request.Context(), item)
	if err != nil {
		logger.Errorf("gallery: save item failed: %v", err)
		// keep the uploads dir clean when the collection write failed
		_ = h.uploads.Remove(public)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	metrics.Uploads.Inc()
	metrics.ContentWrites.WithLabelValues("gallery").Inc()
	c.JSON(http.StatusOK, created)
}

// Delete removes the item; the backing file is deleted by the service when
// it lives under the managed upload area.
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteGalleryItem(c.Request.Context(), c.Param("id")); err != nil {
		logger.Errorf("gallery: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
		return
	}
	metrics.ContentWrites.WithLabelValues("gallery").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func formValue(c *gin.Context, field, fallback string) string {
	if v := c.PostForm(field); v != "" {
		return v
	}
	return fallback
}
