package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gsschool/backend/internal/auth"
	"github.com/gsschool/backend/internal/config"
	"github.com/gsschool/backend/internal/content"
	"github.com/gsschool/backend/internal/media"
	"github.com/gsschool/backend/internal/store"
	"github.com/gsschool/backend/pkg/middleware"
)

func init() { gin.SetMode(gin.TestMode) }

// testApp wires the full route surface against a seeded temp-dir file store,
// the same way main does it.
type testApp struct {
	cfg     *config.Config
	engine  *gin.Engine
	store   *store.FileStore
	uploads *media.DiskStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "development"},
		Auth: config.AuthConfig{
			AdminUsername: "@dmin##",
			AdminPassword: "@dmin22",
			JWTSecret:     "handlers-test-secret",
			TokenTTL:      7 * 24 * time.Hour,
			CookieName:    "gs_token",
		},
	}

	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, content.Seed(context.Background(), st))

	uploads, err := media.NewDiskStore(t.TempDir(), nil)
	require.NoError(t, err)

	svc := content.NewService(st, uploads)
	requireAuth := middleware.RequireAuth(cfg.Auth.JWTSecret, cfg.Auth.CookieName)

	r := gin.New()
	NewAuthHandler(cfg).Register(r)
	NewContentHandler(svc).Register(r, requireAuth)
	NewNoticesHandler(svc).Register(r, requireAuth)
	NewGalleryHandler(svc, uploads).Register(r, requireAuth)
	NewUploadHandler(uploads).Register(r, requireAuth)
	NewHealthHandler(cfg, st, uploads, []string{"http://localhost:5173"}, time.Now()).Register(r)
	RegisterSwagger(r)

	return &testApp{cfg: cfg, engine: r, store: st, uploads: uploads}
}

// token mints a valid session token without going through the login endpoint.
func (a *testApp) token(t *testing.T) string {
	t.Helper()
	tok, err := auth.Issue(a.cfg.Auth.JWTSecret, auth.Identity{Username: a.cfg.Auth.AdminUsername, Role: "admin"}, time.Hour)
	require.NoError(t, err)
	return tok
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
