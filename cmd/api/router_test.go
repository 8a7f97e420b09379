package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/config"
	"library-catalog/pkg/container"
)

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	t.Setenv("DB_DRIVER", config.DriverSQLite)
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "catalog.db"))
	t.Setenv("STORAGE_LOCAL_ROOT", filepath.Join(dir, "static"))
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	app, err := container.NewContainer(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(app.Cleanup)
	require.NoError(t, migrateUp(t.Context(), app))

	return SetupRouter(app)
}

func call(t *testing.T, r http.Handler, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data.ID
}

func TestRootAndHealth(t *testing.T) {
	r := newTestApp(t)

	w := call(t, r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Books Management API is running"}`, w.Body.String())

	w = call(t, r, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
	assert.Contains(t, w.Body.String(), `"cache":"disabled"`)

	w = call(t, r, http.MethodGet, "/docs", "", nil)
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
}

func TestCatalogEndToEnd(t *testing.T) {
	r := newTestApp(t)
	const jsonType = "application/json"

	w := call(t, r, http.MethodPost, "/api/v1/authors", jsonType, []byte(`{"name":"Italo Calvino"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	authorID := dataID(t, w)

	w = call(t, r, http.MethodPost, "/api/v1/categories", jsonType, []byte(`{"name":"Fabulism"}`))
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := dataID(t, w)

	body := fmt.Sprintf(`{"title":"Invisible Cities","published_year":1972,"author_id":%q,"category_id":%q}`, authorID, categoryID)
	w = call(t, r, http.MethodPost, "/api/v1/books", jsonType, []byte(body))
	require.Equal(t, http.StatusCreated, w.Code)
	bookID := dataID(t, w)

	w = call(t, r, http.MethodDelete, "/api/v1/authors/"+authorID, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "AUTHOR_HAS_BOOKS")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="cities.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w = call(t, r, http.MethodPost, "/api/v1/books/"+bookID+"/cover-image", mw.FormDataContentType(), buf.Bytes())
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data struct {
			CoverImageURL string `json:"cover_image_url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, strings.HasPrefix(env.Data.CoverImageURL, "/static/cover_images/book_"+bookID+"_"))

	w = call(t, r, http.MethodGet, env.Data.CoverImageURL, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "\x89PNG fake", w.Body.String())
}
