package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared/utils"
)

// Validator checks field rules, then title uniqueness, then the author and
// category references, stopping at the first failure.
type Validator struct {
	books      book.Repository
	authors    author.Repository
	categories category.Repository
}

func NewValidator(books book.Repository, authors author.Repository, categories category.Repository) *Validator {
	return &Validator{books: books, authors: authors, categories: categories}
}

func (v *Validator) ValidateCreate(ctx context.Context, req *book.CreateBookRequest) error {
	if err := req.Validate(); err != nil {
		return utils.ValidationFailed(err)
	}
	if err := v.checkTitleFree(ctx, req.Title, uuid.Nil); err != nil {
		return err
	}
	if err := v.checkAuthor(ctx, req.AuthorID); err != nil {
		return err
	}
	return v.checkCategory(ctx, req.CategoryID)
}

// ValidateUpdate only checks references present in the patch.
func (v *Validator) ValidateUpdate(ctx context.Context, existing *book.Book, req *book.UpdateBookRequest) error {
	if err := req.Validate(); err != nil {
		return utils.ValidationFailed(err)
	}
	if req.Title != nil {
		if err := v.checkTitleFree(ctx, *req.Title, existing.ID); err != nil {
			return err
		}
	}
	if req.AuthorID != nil {
		if err := v.checkAuthor(ctx, *req.AuthorID); err != nil {
			return err
		}
	}
	if req.CategoryID != nil {
		return v.checkCategory(ctx, *req.CategoryID)
	}
	return nil
}

func (v *Validator) checkTitleFree(ctx context.Context, title string, self uuid.UUID) error {
	found, err := v.books.GetByTitle(ctx, title)
	switch {
	case errors.Is(err, book.ErrBookNotFound):
		return nil
	case err != nil:
		return err
	case found.ID == self:
		return nil
	default:
		return book.ErrDuplicateTitle.WithMessage("Book with title '%s' already exists", title)
	}
}

func (v *Validator) checkAuthor(ctx context.Context, id uuid.UUID) error {
	_, err := v.authors.GetByID(ctx, id)
	if errors.Is(err, author.ErrAuthorNotFound) {
		return book.ErrAuthorMissing
	}
	return err
}

func (v *Validator) checkCategory(ctx context.Context, id uuid.UUID) error {
	_, err := v.categories.GetByID(ctx, id)
	if errors.Is(err, category.ErrCategoryNotFound) {
		return book.ErrCategoryMissing
	}
	return err
}
