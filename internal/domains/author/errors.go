package author

import "library-catalog/internal/shared/apperr"

var (
	ErrAuthorNotFound = apperr.New(apperr.KindNotFound, "AUTHOR_NOT_FOUND", "Author not found")

	ErrDuplicateName = apperr.New(apperr.KindDuplicateName, "AUTHOR_NAME_EXISTS", "Author with this name already exists")

	// ErrAuthorHasBooks is raised when the store refuses a delete because
	// books still reference the author.
	ErrAuthorHasBooks = apperr.New(apperr.KindReferentialConflict, "AUTHOR_HAS_BOOKS", "Cannot delete author with linked books")
)
