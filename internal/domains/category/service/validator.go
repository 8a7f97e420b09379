package service

import (
	"context"
	"errors"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared/utils"
)

type Validator struct {
	repo category.Repository

	// rejectUnchangedName turns a patch repeating the current name into
	// ErrNameUnchanged instead of a silent no-op.
	rejectUnchangedName bool
}

func NewValidator(repo category.Repository, rejectUnchangedName bool) *Validator {
	return &Validator{repo: repo, rejectUnchangedName: rejectUnchangedName}
}

func (v *Validator) ValidateCreate(ctx context.Context, req *category.CreateCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return utils.ValidationFailed(err)
	}
	return v.checkNameFree(ctx, req.Name, nil)
}

func (v *Validator) ValidateUpdate(ctx context.Context, existing *category.Category, req *category.UpdateCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return utils.ValidationFailed(err)
	}
	if req.Name == nil {
		return nil
	}
	if *req.Name == existing.Name {
		if v.rejectUnchangedName {
			return category.ErrNameUnchanged
		}
		return nil
	}
	return v.checkNameFree(ctx, *req.Name, existing)
}

func (v *Validator) checkNameFree(ctx context.Context, name string, self *category.Category) error {
	found, err := v.repo.GetByName(ctx, name)
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return nil
	case err != nil:
		return err
	case self != nil && found.ID == self.ID:
		return nil
	default:
		return category.ErrDuplicateName.WithMessage("Category with name '%s' already exists", name)
	}
}
