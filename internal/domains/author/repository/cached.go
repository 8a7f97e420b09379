package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author"
	"library-catalog/pkg/cache"
)

const authorCacheKeyPrefix = "author:"

// cachedRepository is a cache-aside layer over GetByID. Writes go to the
// inner repository first and then evict. Cache errors never fail a call.
type cachedRepository struct {
	author.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(inner author.Repository, c cache.Cache, ttl time.Duration) author.Repository {
	return &cachedRepository{Repository: inner, cache: c, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return authorCacheKeyPrefix + id.String()
}

func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	var a author.Author
	found, err := r.cache.Get(ctx, cacheKey(id), &a)
	if err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("Author cache read failed")
	}
	if found {
		return &a, nil
	}

	got, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey(id), got, r.ttl); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("Author cache write failed")
	}
	return got, nil
}

func (r *cachedRepository) Update(ctx context.Context, a *author.Author) error {
	err := r.Repository.Update(ctx, a)
	r.evict(ctx, a.ID)
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.Repository.Delete(ctx, id)
	r.evict(ctx, id)
	return err
}

func (r *cachedRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("author_id", id.String()).Msg("Author cache eviction failed")
	}
}
