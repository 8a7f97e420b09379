package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/testutil"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Skip  int `json:"skip"`
		Limit int `json:"limit"`
		Count int `json:"count"`
	} `json:"meta"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewSQLiteDB(t)
	h := NewAuthorHandler(service.NewAuthorService(repository.NewSQLiteRepository(db)))

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestAuthorLifecycle(t *testing.T) {
	r := setupRouter(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/authors", `{"name":"Ted Chiang","bio":"Stories"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "Ted Chiang", created.Name)

	w, _ = do(t, r, http.MethodGet, "/api/v1/authors/"+created.ID.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodPatch, "/api/v1/authors/"+created.ID.String(), `{"bio":"Exhalation"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), "Exhalation")
	assert.Contains(t, string(env.Data), "Ted Chiang")

	w, env = do(t, r, http.MethodGet, "/api/v1/authors?skip=0&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Count)
	assert.Equal(t, 10, env.Meta.Limit)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/authors/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/authors/"+created.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "AUTHOR_NOT_FOUND", env.Error.Code)
}

func TestAuthorErrors(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		code   string
	}{
		{"invalid id", http.MethodGet, "/api/v1/authors/not-a-uuid", "", http.StatusBadRequest, "INVALID_ID"},
		{"malformed body", http.MethodPost, "/api/v1/authors", `{"name":`, http.StatusBadRequest, "INVALID_BODY"},
		{"blank name", http.MethodPost, "/api/v1/authors", `{"name":"  "}`, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"bad skip", http.MethodGet, "/api/v1/authors?skip=abc", "", http.StatusBadRequest, "INVALID_QUERY"},
		{"negative limit", http.MethodGet, "/api/v1/authors?limit=-1", "", http.StatusBadRequest, "INVALID_LIMIT"},
		{"missing", http.MethodDelete, "/api/v1/authors/" + uuid.NewString(), "", http.StatusNotFound, "AUTHOR_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, env := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}

	w, _ := do(t, r, http.MethodPost, "/api/v1/authors", `{"name":"Dup"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w, env := do(t, r, http.MethodPost, "/api/v1/authors", `{"name":"Dup"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AUTHOR_NAME_EXISTS", env.Error.Code)
}
