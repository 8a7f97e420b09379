package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperr"
)

// ParseIDParam reads a UUID path parameter.
func ParseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperr.Invalid("INVALID_ID", fmt.Errorf("%s must be a valid UUID", name))
	}
	return id, nil
}

// ParsePage reads skip and limit, defaulting to 0 and 100. Range checks are
// left to the service.
func ParsePage(c *gin.Context) (shared.Page, error) {
	page := shared.DefaultPage()

	var err error
	if page.Skip, err = queryInt(c, "skip", page.Skip); err != nil {
		return page, err
	}
	if page.Limit, err = queryInt(c, "limit", page.Limit); err != nil {
		return page, err
	}
	return page, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Invalid("INVALID_QUERY", fmt.Errorf("%s must be an integer", key))
	}
	return v, nil
}

// QueryIntPtr reads an optional integer query parameter.
func QueryIntPtr(c *gin.Context, key string) (*int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.Invalid("INVALID_QUERY", fmt.Errorf("%s must be an integer", key))
	}
	return &v, nil
}

// QueryUUIDPtr reads an optional UUID query parameter.
func QueryUUIDPtr(c *gin.Context, key string) (*uuid.UUID, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.Invalid("INVALID_QUERY", fmt.Errorf("%s must be a valid UUID", key))
	}
	return &v, nil
}

// BindJSON decodes the request body, reporting malformed JSON as InvalidInput.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.Invalid("INVALID_BODY", fmt.Errorf("request body must be valid JSON: %w", err))
	}
	return nil
}
