package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared"
)

type Options struct {
	RejectUnchangedName bool
}

type categoryService struct {
	repo      category.Repository
	validator *Validator
}

func NewCategoryService(repo category.Repository, opts Options) category.Service {
	return &categoryService{
		repo:      repo,
		validator: NewValidator(repo, opts.RejectUnchangedName),
	}
}

func (s *categoryService) List(ctx context.Context, page shared.Page) ([]category.Category, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page)
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.Category, error) {
	req.Normalize()
	if err := s.validator.ValidateCreate(ctx, &req); err != nil {
		return nil, err
	}

	c := &category.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	log.Info().Str("category_id", c.ID.String()).Msg("Category created")
	return c, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req category.UpdateCategoryRequest) (*category.Category, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := s.validator.ValidateUpdate(ctx, existing, &req); err != nil {
		return nil, err
	}

	updated := *existing
	req.ApplyTo(&updated)
	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("category_id", id.String()).Msg("Category deleted")
	return nil
}
