package author

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared"
)

type Service interface {
	List(ctx context.Context, page shared.Page) ([]Author, error)
	Get(ctx context.Context, id uuid.UUID) (*Author, error)
	Create(ctx context.Context, req CreateAuthorRequest) (*Author, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAuthorRequest) (*Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
