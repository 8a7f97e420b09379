package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/shared/apperr"
)

type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta describes the offset window a list response was cut from.
type Meta struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Count int `json:"count"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data any, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func BadRequest(c *gin.Context, code, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindDuplicateName,
		apperr.KindMissingReference,
		apperr.KindNoOpName,
		apperr.KindReferentialConflict,
		apperr.KindInvalidFileType,
		apperr.KindFileTooLarge,
		apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindStorageFailure:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err as an error envelope. Storage failures are logged
// with their cause and answered with a generic message.
func FromError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Storage(err)
	}

	status := StatusCode(appErr.Kind)
	if status >= http.StatusInternalServerError {
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
		ErrorResponse(c, status, appErr.Code, "Internal storage error")
		return
	}

	ErrorResponse(c, status, appErr.Code, appErr.Message)
}
