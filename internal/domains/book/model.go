package book

import (
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared"
)

// Book is a catalog entry. Title is unique; AuthorID and CategoryID must
// reference existing rows.
type Book struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	PublishedYear int       `json:"published_year"`
	AuthorID      uuid.UUID `json:"author_id"`
	CategoryID    uuid.UUID `json:"category_id"`
	CoverImageURL *string   `json:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookDetail is a Book with its author and category materialized.
type BookDetail struct {
	Book
	Author   author.Author     `json:"author"`
	Category category.Category `json:"category"`
}

// Filter narrows a book listing. Nil and empty fields do not filter.
type Filter struct {
	AuthorID      *uuid.UUID
	CategoryID    *uuid.UUID
	PublishedYear *int
	// Keyword matches title or description, case-insensitively, as a
	// literal substring.
	Keyword string
	Page    shared.Page
}

// CoverUpload is an image submitted as a book cover.
type CoverUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
