package book

import "library-catalog/internal/shared/apperr"

var (
	ErrBookNotFound = apperr.New(apperr.KindNotFound, "BOOK_NOT_FOUND", "Book not found")

	ErrDuplicateTitle = apperr.New(apperr.KindDuplicateName, "BOOK_TITLE_EXISTS", "Book with this title already exists")

	ErrAuthorMissing   = apperr.New(apperr.KindMissingReference, "AUTHOR_REFERENCE_NOT_FOUND", "Author not found")
	ErrCategoryMissing = apperr.New(apperr.KindMissingReference, "CATEGORY_REFERENCE_NOT_FOUND", "Category not found")

	// ErrReferenceMissing covers a foreign key rejected by the store after
	// validation passed, e.g. an author deleted concurrently.
	ErrReferenceMissing = apperr.New(apperr.KindMissingReference, "REFERENCE_NOT_FOUND", "Referenced author or category not found")

	ErrInvalidFileType = apperr.New(apperr.KindInvalidFileType, "INVALID_FILE_TYPE", "Only JPEG and PNG images are allowed")
	ErrFileTooLarge    = apperr.New(apperr.KindFileTooLarge, "FILE_TOO_LARGE", "File size exceeds the allowed limit")
)
