package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Snapshot(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	// one notice so the count is non-zero
	postNotice(t, app, tok, `{"title":"Hello"}`)

	w := app.do(jsonRequest("GET", "/api/health", ""))
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ok", got["status"])
	assert.Equal(t, "development", got["env"])
	assert.NotEmpty(t, got["time"])
	assert.NotEmpty(t, got["runtime"])

	data, ok := got["data"].(map[string]interface{})
	require.True(t, ok)
	counts := data["counts"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["notices"])
	assert.Equal(t, float64(0), counts["gallery"])

	pages := data["pages"].(map[string]interface{})
	assert.NotContains(t, pages, "footer")
	home := pages["home"].(map[string]interface{})
	assert.Equal(t, false, home["hasHeader"])
	about := pages["about"].(map[string]interface{})
	assert.Equal(t, true, about["hasHeader"])

	sec, ok := got["security"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gs_token", sec["authCookie"])
	assert.Equal(t, true, sec["uploadsWritable"])
	opts := sec["cookieOptions"].(map[string]interface{})
	assert.Equal(t, true, opts["httpOnly"])
	assert.Equal(t, "lax", opts["sameSite"])
	assert.Equal(t, false, opts["secure"])
	assert.Equal(t, float64(7*24*3600), opts["maxAgeSeconds"])
	origins := sec["corsOrigins"].([]interface{})
	require.Len(t, origins, 1)
	assert.Equal(t, "http://localhost:5173", origins[0])
}

func TestHealth_ProductionCookieReporting(t *testing.T) {
	app := newTestApp(t)
	app.cfg.Server.Environment = "production"

	w := app.do(jsonRequest("GET", "/api/health", ""))
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	sec := got["security"].(map[string]interface{})
	opts := sec["cookieOptions"].(map[string]interface{})
	assert.Equal(t, "none", opts["sameSite"])
	assert.Equal(t, true, opts["secure"])
}
