package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/shared/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.KindNotFound, http.StatusNotFound},
		{apperr.KindDuplicateName, http.StatusBadRequest},
		{apperr.KindMissingReference, http.StatusBadRequest},
		{apperr.KindNoOpName, http.StatusBadRequest},
		{apperr.KindReferentialConflict, http.StatusBadRequest},
		{apperr.KindInvalidFileType, http.StatusBadRequest},
		{apperr.KindFileTooLarge, http.StatusBadRequest},
		{apperr.KindInvalidInput, http.StatusBadRequest},
		{apperr.KindStorageFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.kind))
		})
	}
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
	FromError(c, err)

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestFromErrorDomainError(t *testing.T) {
	w, body := serveError(t, apperr.New(apperr.KindNotFound, "BOOK_NOT_FOUND", "Book not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BOOK_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Book not found", body.Error.Message)
}

func TestFromErrorHidesDriverText(t *testing.T) {
	w, body := serveError(t, errors.New(`pq: relation "books" does not exist`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "STORAGE_FAILURE", body.Error.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}
