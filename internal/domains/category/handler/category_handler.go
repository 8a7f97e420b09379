package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/categories?skip=0&limit=100
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) List(c *gin.Context) {
	page, err := utils.ParsePage(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	categories, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, categories, &response.Meta{
		Skip:  page.Skip,
		Limit: page.Limit,
		Count: len(categories),
	})
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	cat, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cat)
}

// ════════════════════════════════════════════════════════════════
// POST /api/v1/categories
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	cat, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, cat)
}

// ════════════════════════════════════════════════════════════════
// PUT|PATCH /api/v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req category.UpdateCategoryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	cat, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cat)
}

// ════════════════════════════════════════════════════════════════
// DELETE /api/v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Delete(c *gin.Context) {
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

// RegisterRoutes mounts the category endpoints on rg.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.GET("/:id", h.Get)
		categories.PUT("/:id", h.Update)
		categories.PATCH("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}
