package service

import (
	"context"
	"errors"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared/utils"
)

// Validator checks author writes before anything is persisted.
type Validator struct {
	repo author.Repository
}

func NewValidator(repo author.Repository) *Validator {
	return &Validator{repo: repo}
}

func (v *Validator) ValidateCreate(ctx context.Context, req *author.CreateAuthorRequest) error {
	if err := req.Validate(); err != nil {
		return utils.ValidationFailed(err)
	}
	return v.checkNameFree(ctx, req.Name, nil)
}

// ValidateUpdate allows a patch that repeats the author's current name.
func (v *Validator) ValidateUpdate(ctx context.Context, existing *author.Author, req *author.UpdateAuthorRequest) error {
	if err := req.Validate(); err != nil {
		return utils.ValidationFailed(err)
	}
	if req.Name == nil {
		return nil
	}
	return v.checkNameFree(ctx, *req.Name, existing)
}

func (v *Validator) checkNameFree(ctx context.Context, name string, self *author.Author) error {
	found, err := v.repo.GetByName(ctx, name)
	switch {
	case errors.Is(err, author.ErrAuthorNotFound):
		return nil
	case err != nil:
		return err
	case self != nil && found.ID == self.ID:
		return nil
	default:
		return author.ErrDuplicateName.WithMessage("Author with name '%s' already exists", name)
	}
}
