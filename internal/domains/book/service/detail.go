package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared/apperr"
)

// detailLoader attaches authors and categories to books. One loader is
// used per call so repeated references are fetched once.
type detailLoader struct {
	authors    author.Repository
	categories category.Repository

	authorCache   map[uuid.UUID]*author.Author
	categoryCache map[uuid.UUID]*category.Category
}

func newDetailLoader(authors author.Repository, categories category.Repository) *detailLoader {
	return &detailLoader{
		authors:       authors,
		categories:    categories,
		authorCache:   map[uuid.UUID]*author.Author{},
		categoryCache: map[uuid.UUID]*category.Category{},
	}
}

func (l *detailLoader) load(ctx context.Context, b book.Book) (*book.BookDetail, error) {
	a, ok := l.authorCache[b.AuthorID]
	if !ok {
		var err error
		if a, err = l.authors.GetByID(ctx, b.AuthorID); err != nil {
			return nil, danglingReference(err, "author", b)
		}
		l.authorCache[b.AuthorID] = a
	}

	c, ok := l.categoryCache[b.CategoryID]
	if !ok {
		var err error
		if c, err = l.categories.GetByID(ctx, b.CategoryID); err != nil {
			return nil, danglingReference(err, "category", b)
		}
		l.categoryCache[b.CategoryID] = c
	}

	return &book.BookDetail{Book: b, Author: *a, Category: *c}, nil
}

func (l *detailLoader) loadAll(ctx context.Context, books []book.Book) ([]book.BookDetail, error) {
	details := make([]book.BookDetail, 0, len(books))
	for _, b := range books {
		d, err := l.load(ctx, b)
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

// danglingReference reports a stored book pointing at a missing row. The
// foreign keys rule this out, so it is a storage failure, not a 404.
func danglingReference(err error, what string, b book.Book) error {
	if apperr.Is(err, apperr.KindNotFound) {
		return apperr.Storage(fmt.Errorf("book %s references missing %s: %w", b.ID, what, err))
	}
	return err
}
