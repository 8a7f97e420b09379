package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/category/repository"
	"library-catalog/internal/domains/category/service"
	"library-catalog/internal/testutil"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewSQLiteRepository(testutil.NewSQLiteDB(t))
	h := NewCategoryHandler(service.NewCategoryService(repo, service.Options{RejectUnchangedName: true}))

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCategoryEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := send(r, http.MethodPost, "/api/v1/categories", `{"name":"Travel"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = send(r, http.MethodPut, "/api/v1/categories/"+created.Data.ID, `{"name":"Travel"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CATEGORY_NAME_UNCHANGED")

	w = send(r, http.MethodPut, "/api/v1/categories/"+created.Data.ID, `{"name":"Journeys"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Journeys")

	w = send(r, http.MethodGet, "/api/v1/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = send(r, http.MethodDelete, "/api/v1/categories/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = send(r, http.MethodGet, "/api/v1/categories/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
