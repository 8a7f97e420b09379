package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/shared/utils"
)

const DefaultMaxCoverSize = 10 << 20

var (
	allowedContentTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/jpg":  true,
	}
	allowedExtensions = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
	}
)

type CoverOptions struct {
	// Dir is the key prefix covers are stored under, e.g. "cover_images".
	Dir     string
	MaxSize int64
}

type coverService struct {
	deps Deps
	opts CoverOptions
}

func NewCoverService(deps Deps, opts CoverOptions) book.CoverService {
	if opts.MaxSize <= 0 {
		opts.MaxSize = DefaultMaxCoverSize
	}
	return &coverService{deps: deps, opts: opts}
}

func (s *coverService) Upload(ctx context.Context, bookID uuid.UUID, upload book.CoverUpload) (*book.BookDetail, error) {
	existing, err := s.deps.Books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	if !allowedContentTypes[strings.ToLower(strings.TrimSpace(upload.ContentType))] {
		return nil, book.ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !allowedExtensions[ext] {
		return nil, book.ErrInvalidFileType.WithMessage("Only .jpg, .jpeg and .png files are allowed")
	}

	if int64(len(upload.Data)) > s.opts.MaxSize {
		return nil, book.ErrFileTooLarge.WithMessage("File size exceeds %d MB", s.opts.MaxSize>>20)
	}

	key := s.coverKey(bookID, ext)
	url, err := s.deps.Storage.Put(ctx, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("store cover %s: %w", key, err))
	}

	updated := *existing
	updated.CoverImageURL = &url
	updated.UpdatedAt = utils.NextAfter(existing.UpdatedAt)
	if err := s.deps.Books.Update(ctx, &updated); err != nil {
		// The row was not updated, so the new blob is unreferenced.
		scheduleCoverCleanup(ctx, s.deps, bookID, &url)
		return nil, err
	}

	log.Info().
		Str("book_id", bookID.String()).
		Str("key", key).
		Int("size", len(upload.Data)).
		Msg("Cover image uploaded")

	if existing.CoverImageURL != nil && *existing.CoverImageURL != url {
		scheduleCoverCleanup(ctx, s.deps, bookID, existing.CoverImageURL)
	}

	return newDetailLoader(s.deps.Authors, s.deps.Categories).load(ctx, updated)
}

// coverKey names the blob book_{id}_{hex}{ext} under the cover directory.
func (s *coverService) coverKey(bookID uuid.UUID, ext string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return path.Join(s.opts.Dir, coverKeyPrefix(bookID)+token+ext)
}
