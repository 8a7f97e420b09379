package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/shared/response"
	"library-catalog/internal/shared/utils"
)

const (
	coverFormField = "file"
	// multipartOverhead is what the cover body may carry beyond the file
	// itself: boundaries, part headers and other form fields.
	multipartOverhead = 1 << 20
)

type BookHandler struct {
	service      book.Service
	covers       book.CoverService
	maxCoverSize int64
}

func NewBookHandler(svc book.Service, covers book.CoverService, maxCoverSize int64) *BookHandler {
	return &BookHandler{service: svc, covers: covers, maxCoverSize: maxCoverSize}
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/books?author_id=&category_id=&published_year=&keyword=&skip=&limit=
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, books, &response.Meta{
		Skip:  filter.Page.Skip,
		Limit: filter.Page.Limit,
		Count: len(books),
	})
}

func parseFilter(c *gin.Context) (book.Filter, error) {
	var (
		filter book.Filter
		err    error
	)
	if filter.Page, err = utils.ParsePage(c); err != nil {
		return filter, err
	}
	if filter.AuthorID, err = utils.QueryUUIDPtr(c, "author_id"); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = utils.QueryUUIDPtr(c, "category_id"); err != nil {
		return filter, err
	}
	if filter.PublishedYear, err = utils.QueryIntPtr(c, "published_year"); err != nil {
		return filter, err
	}
	filter.Keyword = c.Query("keyword")
	return filter, nil
}

// ════════════════════════════════════════════════════════════════
// GET /api/v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ════════════════════════════════════════════════════════════════
// POST /api/v1/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// ════════════════════════════════════════════════════════════════
// PUT|PATCH /api/v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	var req book.UpdateBookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.FromError(c, err)
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// ════════════════════════════════════════════════════════════════
// DELETE /api/v1/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
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

// ════════════════════════════════════════════════════════════════
// POST /api/v1/books/:id/cover-image (multipart, field "file")
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) UploadCover(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	limit := h.maxCoverSize + multipartOverhead
	if c.Request.ContentLength > limit {
		response.FromError(c, h.fileTooLarge())
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)

	fh, err := c.FormFile(coverFormField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			response.FromError(c, h.fileTooLarge())
			return
		}
		if errors.Is(err, http.ErrMissingFile) {
			err = errors.New("multipart field 'file' is required")
		}
		response.FromError(c, apperr.Invalid("FILE_REQUIRED", err))
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.FromError(c, apperr.Storage(fmt.Errorf("open upload: %w", err)))
		return
	}
	defer f.Close()

	// One byte past the limit is enough to tell the service it is too large.
	data, err := io.ReadAll(io.LimitReader(f, h.maxCoverSize+1))
	if err != nil {
		response.FromError(c, apperr.Storage(fmt.Errorf("read upload: %w", err)))
		return
	}

	b, err := h.covers.Upload(c.Request.Context(), id, book.CoverUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *BookHandler) fileTooLarge() error {
	return book.ErrFileTooLarge.WithMessage("File size exceeds %d MB", h.maxCoverSize>>20)
}

// RegisterRoutes mounts the book endpoints on rg.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	{
		books.GET("", h.List)
		books.POST("", h.Create)
		books.GET("/:id", h.Get)
		books.PUT("/:id", h.Update)
		books.PATCH("/:id", h.Update)
		books.DELETE("/:id", h.Delete)
		books.POST("/:id/cover-image", h.UploadCover)
	}
}
