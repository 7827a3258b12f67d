package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsschool/backend/internal/content"
)

func postNotice(t *testing.T, app *testApp, tok, body string) content.Notice {
	t.Helper()
	req := jsonRequest("POST", "/api/notices", body)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := app.do(req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var n content.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &n))
	return n
}

func TestNotices_CreateAppliesDefaults(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	n := postNotice(t, app, tok, `{"content":"school closed tomorrow"}`)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "Notice", n.Title)
	assert.Equal(t, "info", n.Level)
	assert.Equal(t, "school closed tomorrow", n.Content)
	assert.NotEmpty(t, n.CreatedAt)

	// an empty body is a valid notice too
	n2 := postNotice(t, app, tok, "")
	assert.Equal(t, "Notice", n2.Title)
	assert.Equal(t, "info", n2.Level)
}

func TestNotices_ListNewestFirst(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	first := postNotice(t, app, tok, `{"title":"First"}`)
	second := postNotice(t, app, tok, `{"title":"Second"}`)

	w := app.do(jsonRequest("GET", "/api/notices", ""))
	require.Equal(t, http.StatusOK, w.Code)
	var list []content.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestNotices_CreateRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	w := app.do(jsonRequest("POST", "/api/notices", `{"title":"nope"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w2 := app.do(jsonRequest("GET", "/api/notices", ""))
	require.Equal(t, http.StatusOK, w2.Code)
	assert.JSONEq(t, `[]`, w2.Body.String())
}

// An expired notice disappears from the list but stays in storage.
func TestNotices_ExpiredHiddenButRetained(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	past := time.Now().Add(-time.Hour).Format(time.RFC3339)
	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	expired := postNotice(t, app, tok, `{"title":"Old","expiresAt":"`+past+`"}`)
	active := postNotice(t, app, tok, `{"title":"Current","expiresAt":"`+future+`"}`)

	w := app.do(jsonRequest("GET", "/api/notices", ""))
	require.Equal(t, http.StatusOK, w.Code)
	var list []content.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	raw, err := app.store.Read(context.Background(), "notices")
	require.NoError(t, err)
	var stored []content.Notice
	require.NoError(t, json.Unmarshal(raw, &stored))
	require.Len(t, stored, 2)
	assert.Equal(t, expired.ID, stored[1].ID)
}

func TestNotices_Delete(t *testing.T) {
	app := newTestApp(t)
	tok := app.token(t)

	n := postNotice(t, app, tok, `{"title":"Doomed"}`)

	req := jsonRequest("DELETE", "/api/notices/"+n.ID, "")
	req.Header.Set("Authorization", "Bearer "+tok)
	w := app.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w2 := app.do(jsonRequest("GET", "/api/notices", ""))
	assert.JSONEq(t, `[]`, w2.Body.String())

	// deleting an unknown id is still ok
	req3 := jsonRequest("DELETE", "/api/notices/no-such-id", "")
	req3.Header.Set("Authorization", "Bearer "+tok)
	w3 := app.do(req3)
	assert.Equal(t, http.StatusOK, w3.Code)
}
