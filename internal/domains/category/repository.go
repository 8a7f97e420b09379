package category

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared"
)

// Repository is the persistence gateway for categories.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	// List orders by name, then id.
	List(ctx context.Context, page shared.Page) ([]Category, error)
	Update(ctx context.Context, c *Category) error
	// Delete returns ErrCategoryHasBooks when books still reference id.
	Delete(ctx context.Context, id uuid.UUID) error
}
