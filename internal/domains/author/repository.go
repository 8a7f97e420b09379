package author

import (
	"context"

	"github.com/google/uuid"

	"library-catalog/internal/shared"
)

// Repository is the persistence gateway for authors. Implementations
// translate store errors into this package's errors; anything else comes
// back as a storage failure.
type Repository interface {
	// Create inserts a. Returns ErrDuplicateName on a unique violation.
	Create(ctx context.Context, a *Author) error

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetByName looks up by exact name. Returns ErrAuthorNotFound when absent.
	GetByName(ctx context.Context, name string) (*Author, error)

	// List returns authors ordered by name, then id.
	List(ctx context.Context, page shared.Page) ([]Author, error)

	// Update overwrites every column of the row with a.ID.
	Update(ctx context.Context, a *Author) error

	// Delete returns ErrAuthorHasBooks when books still reference id.
	Delete(ctx context.Context, id uuid.UUID) error
}
