package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/internal/media"
)

func uploadImage(t *testing.T, app *testApp, tok, filename string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/gallery", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return app.do(req)
}

func TestGallery_UploadAndList(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	w := uploadImage(t, app, tok, "sports-day.jpg", map[string]string{
		"title":       "Sports Day",
		"description": "Annual sports day",
		"category":    "events",
		"date":        "2025-04-12",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item content.GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "Sports Day", item.Title)
	assert.Equal(t, "events", item.Category)
	assert.Equal(t, "2025-04-12", item.Date)
	require.True(t, strings.HasPrefix(item.Image, media.PublicPrefix))
	assert.True(t, strings.HasSuffix(item.Image, ".jpg"))

	// the upload landed on disk
	stored := filepath.Join(app.uploads.Dir(), filepath.Base(item.Image))
	b, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(b))

	w2 := app.do(jsonRequest("GET", "/api/gallery", ""))
	require.Equal(t, http.StatusOK, w2.Code)
	var list []content.GalleryItem
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, item.ID, list[0].ID)
}

func TestGallery_UploadDefaults(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	w := uploadImage(t, app, tok, "plain.png", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var item content.GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, "Image", item.Title)
	assert.Equal(t, "uncategorized", item.Category)
	assert.NotEmpty(t, item.Date)
}

func TestGallery_UploadWithoutFile(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	req := jsonRequest("POST", "/api/gallery", "")
	req.Header.Set("Authorization", "Bearer "+tok)
	w := app.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image file required")
}

func TestGallery_UploadRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	w := uploadImage(t, app, "", "sneaky.jpg", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	entries, err := os.ReadDir(app.uploads.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGallery_DeleteRemovesFile(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	w := uploadImage(t, app, tok, "gone.jpg", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item content.GalleryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	stored := filepath.Join(app.uploads.Dir(), filepath.Base(item.Image))
	_, err := os.Stat(stored)
	require.NoError(t, err)

	req := jsonRequest("DELETE", "/api/gallery/"+item.ID, "")
	req.Header.Set("Authorization", "Bearer "+tok)
	w2 := app.do(req)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.JSONEq(t, `{"ok":true}`, w2.Body.String())

	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	w3 := app.do(jsonRequest("GET", "/api/gallery", ""))
	assert.JSONEq(t, `[]`, w3.Body.String())
}
