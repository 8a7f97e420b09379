package service

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/category"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/storage"
	"library-catalog/internal/shared/utils"
)

// Deps are the collaborators shared by the book and cover services.
type Deps struct {
	Books      book.Repository
	Authors    author.Repository
	Categories category.Repository
	Storage    storage.BlobStorage
	Queue      queue.Enqueuer
}

type bookService struct {
	deps      Deps
	validator *Validator
}

func NewBookService(deps Deps) book.Service {
	return &bookService{
		deps:      deps,
		validator: NewValidator(deps.Books, deps.Authors, deps.Categories),
	}
}

func (s *bookService) loader() *detailLoader {
	return newDetailLoader(s.deps.Authors, s.deps.Categories)
}

func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.BookDetail, error) {
	if err := filter.Page.Validate(); err != nil {
		return nil, err
	}

	books, err := s.deps.Books.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.loader().loadAll(ctx, books)
}

func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*book.BookDetail, error) {
	b, err := s.deps.Books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.loader().load(ctx, *b)
}

func (s *bookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.BookDetail, error) {
	req.Normalize()
	if err := s.validator.ValidateCreate(ctx, &req); err != nil {
		return nil, err
	}

	now := utils.Now()
	b := &book.Book{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		PublishedYear: *req.PublishedYear,
		AuthorID:      req.AuthorID,
		CategoryID:    req.CategoryID,
		CoverImageURL: req.CoverImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.deps.Books.Create(ctx, b); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", b.ID.String()).Str("title", b.Title).Msg("Book created")
	return s.loader().load(ctx, *b)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req book.UpdateBookRequest) (*book.BookDetail, error) {
	existing, err := s.deps.Books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validator.ValidateUpdate(ctx, existing, &req); err != nil {
		return nil, err
	}

	updated := *existing
	req.ApplyTo(&updated)
	updated.UpdatedAt = utils.NextAfter(existing.UpdatedAt)
	if err := s.deps.Books.Update(ctx, &updated); err != nil {
		return nil, err
	}
	if existing.CoverImageURL != nil && !sameURL(existing.CoverImageURL, updated.CoverImageURL) {
		scheduleCoverCleanup(ctx, s.deps, id, existing.CoverImageURL)
	}
	return s.loader().load(ctx, updated)
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.deps.Books.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.deps.Books.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("book_id", id.String()).Msg("Book deleted")
	scheduleCoverCleanup(ctx, s.deps, id, existing.CoverImageURL)
	return nil
}

func sameURL(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// coverKeyPrefix is the basename prefix of every cover uploaded for bookID.
func coverKeyPrefix(bookID uuid.UUID) string {
	return "book_" + bookID.String() + "_"
}

// scheduleCoverCleanup enqueues removal of the blob behind url when it is a
// cover uploaded for bookID. Client-supplied URLs and blobs of other books
// are left alone. Failures are logged; the blob is then simply orphaned.
func scheduleCoverCleanup(ctx context.Context, deps Deps, bookID uuid.UUID, url *string) {
	if url == nil || *url == "" {
		return
	}
	key, ok := deps.Storage.KeyFromURL(*url)
	if !ok {
		log.Debug().Str("url", *url).Msg("Cover URL is not managed by the configured storage")
		return
	}
	if !strings.HasPrefix(path.Base(key), coverKeyPrefix(bookID)) {
		log.Debug().Str("key", key).Str("book_id", bookID.String()).Msg("Cover blob not owned by book, skipping cleanup")
		return
	}
	if err := deps.Queue.EnqueueDeleteCover(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to enqueue cover cleanup")
	}
}
