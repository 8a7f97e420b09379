package book

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-catalog/internal/shared/utils"
)

const (
	MaxTitleLength    = 255
	MaxCoverURLLength = 500
)

// CreateBookRequest - POST /api/v1/books
type CreateBookRequest struct {
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	PublishedYear *int      `json:"published_year"`
	AuthorID      uuid.UUID `json:"author_id"`
	CategoryID    uuid.UUID `json:"category_id"`
	CoverImageURL *string   `json:"cover_image_url"`
}

func (r *CreateBookRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.CoverImageURL = utils.TrimPtr(r.CoverImageURL)
	if r.CoverImageURL != nil && *r.CoverImageURL == "" {
		r.CoverImageURL = nil
	}
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, MaxTitleLength)),
		validation.Field(&r.PublishedYear, validation.NotNil),
		validation.Field(&r.AuthorID, utils.NotNilUUID),
		validation.Field(&r.CategoryID, utils.NotNilUUID),
		validation.Field(&r.CoverImageURL, validation.RuneLength(0, MaxCoverURLLength)),
	)
}

// UpdateBookRequest - PUT/PATCH /api/v1/books/:id
// Nil fields are left unchanged. An empty cover_image_url clears the cover.
type UpdateBookRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	PublishedYear *int       `json:"published_year"`
	AuthorID      *uuid.UUID `json:"author_id"`
	CategoryID    *uuid.UUID `json:"category_id"`
	CoverImageURL *string    `json:"cover_image_url"`
}

func (r *UpdateBookRequest) Normalize() {
	r.Title = utils.TrimPtr(r.Title)
	r.CoverImageURL = utils.TrimPtr(r.CoverImageURL)
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.Title != nil, validation.Required, validation.RuneLength(1, MaxTitleLength))),
		validation.Field(&r.AuthorID, utils.NotNilUUID),
		validation.Field(&r.CategoryID, utils.NotNilUUID),
		validation.Field(&r.CoverImageURL, validation.RuneLength(0, MaxCoverURLLength)),
	)
}

func (r UpdateBookRequest) ApplyTo(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.Description != nil {
		b.Description = r.Description
	}
	if r.PublishedYear != nil {
		b.PublishedYear = *r.PublishedYear
	}
	if r.AuthorID != nil {
		b.AuthorID = *r.AuthorID
	}
	if r.CategoryID != nil {
		b.CategoryID = *r.CategoryID
	}
	if r.CoverImageURL != nil {
		if *r.CoverImageURL == "" {
			b.CoverImageURL = nil
		} else {
			url := *r.CoverImageURL
			b.CoverImageURL = &url
		}
	}
}
