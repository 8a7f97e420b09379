package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence gateway for books.
type Repository interface {
	// Create inserts b. Unique violations surface as ErrDuplicateTitle and
	// foreign key violations as ErrReferenceMissing.
	Create(ctx context.Context, b *Book) error

	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	GetByTitle(ctx context.Context, title string) (*Book, error)

	// List applies filter and orders by created_at, then id.
	List(ctx context.Context, filter Filter) ([]Book, error)

	Update(ctx context.Context, b *Book) error

	Delete(ctx context.Context, id uuid.UUID) error
}
