package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/book"
	"library-catalog/pkg/cache"
)

const bookCacheKeyPrefix = "book:"

// cachedRepository caches GetByID and evicts on Update and Delete.
type cachedRepository struct {
	book.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(inner book.Repository, c cache.Cache, ttl time.Duration) book.Repository {
	return &cachedRepository{Repository: inner, cache: c, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return bookCacheKeyPrefix + id.String()
}

func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	var b book.Book
	found, err := r.cache.Get(ctx, cacheKey(id), &b)
	if err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("Book cache read failed")
	}
	if found {
		return &b, nil
	}

	got, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey(id), got, r.ttl); err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("Book cache write failed")
	}
	return got, nil
}

func (r *cachedRepository) Update(ctx context.Context, b *book.Book) error {
	err := r.Repository.Update(ctx, b)
	r.evict(ctx, b.ID)
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.Repository.Delete(ctx, id)
	r.evict(ctx, id)
	return err
}

func (r *cachedRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("book_id", id.String()).Msg("Book cache eviction failed")
	}
}
