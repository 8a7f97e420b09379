package book

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	List(ctx context.Context, filter Filter) ([]BookDetail, error)
	Get(ctx context.Context, id uuid.UUID) (*BookDetail, error)
	Create(ctx context.Context, req CreateBookRequest) (*BookDetail, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) (*BookDetail, error)
	// Delete removes the book and schedules its cover blob for removal.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CoverService accepts cover images for existing books.
type CoverService interface {
	// Upload checks, in order: the book exists, the content type, the file
	// extension, the size. It then stores the image and points the book at it.
	Upload(ctx context.Context, bookID uuid.UUID, upload CoverUpload) (*BookDetail, error)
}
