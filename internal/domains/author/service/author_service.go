package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared"
)

type authorService struct {
	repo      author.Repository
	validator *Validator
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{
		repo:      repo,
		validator: NewValidator(repo),
	}
}

func (s *authorService) List(ctx context.Context, page shared.Page) ([]author.Author, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, page)
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.Author, error) {
	req.Normalize()
	if err := s.validator.ValidateCreate(ctx, &req); err != nil {
		return nil, err
	}

	a := &author.Author{
		ID:   uuid.New(),
		Name: req.Name,
		Bio:  req.Bio,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	log.Info().Str("author_id", a.ID.String()).Msg("Author created")
	return a, nil
}

func (s *authorService) Update(ctx context.Context, id uuid.UUID, req author.UpdateAuthorRequest) (*author.Author, error) {
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

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("author_id", id.String()).Msg("Author deleted")
	return nil
}
