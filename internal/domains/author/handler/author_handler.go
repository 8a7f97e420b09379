package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/authors?skip=0&limit=100
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	page, err := utils.ParsePage(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	authors, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{
		Skip:  page.Skip,
		Limit: page.Limit,
		Count: len(authors),
	})
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// POST /api/v1/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// ════════════════════════════════════════════════════════════════
// PUT|PATCH /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req author.UpdateAuthorRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// DELETE /api/v1/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}

// RegisterRoutes mounts the author endpoints on rg.
func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authors := rg.Group("/authors")
	{
		authors.GET("", h.List)
		authors.POST("", h.Create)
		authors.GET("/:id", h.Get)
		authors.PUT("/:id", h.Update)
		authors.PATCH("/:id", h.Update)
		authors.DELETE("/:id", h.Delete)
	}
}
