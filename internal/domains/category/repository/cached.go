package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/category"
	"library-catalog/pkg/cache"
)

const categoryCacheKeyPrefix = "category:"

// cachedRepository caches GetByID; Update and Delete evict.
type cachedRepository struct {
	category.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(inner category.Repository, c cache.Cache, ttl time.Duration) category.Repository {
	return &cachedRepository{Repository: inner, cache: c, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return categoryCacheKeyPrefix + id.String()
}

func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var cat category.Category
	found, err := r.cache.Get(ctx, cacheKey(id), &cat)
	if err != nil {
		log.Warn().Err(err).Str("category_id", id.String()).Msg("Category cache read failed")
	}
	if found {
		return &cat, nil
	}

	got, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey(id), got, r.ttl); err != nil {
		log.Warn().Err(err).Str("category_id", id.String()).Msg("Category cache write failed")
	}
	return got, nil
}

func (r *cachedRepository) Update(ctx context.Context, c *category.Category) error {
	err := r.Repository.Update(ctx, c)
	r.evict(ctx, c.ID)
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.Repository.Delete(ctx, id)
	r.evict(ctx, id)
	return err
}

func (r *cachedRepository) evict(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("category_id", id.String()).Msg("Category cache eviction failed")
	}
}
