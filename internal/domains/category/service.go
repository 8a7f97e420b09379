package category

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared"
)

type Service interface {
	List(ctx context.Context, page shared.Page) ([]Category, error)
	Get(ctx context.Context, id uuid.UUID) (*Category, error)
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
