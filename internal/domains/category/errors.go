package category

import "library-catalog/internal/shared/apperr"

var (
	ErrCategoryNotFound = apperr.New(apperr.KindNotFound, "CATEGORY_NOT_FOUND", "Category not found")

	ErrDuplicateName = apperr.New(apperr.KindDuplicateName, "CATEGORY_NAME_EXISTS", "Category with this name already exists")

	// ErrNameUnchanged rejects an update whose name equals the current one.
	ErrNameUnchanged = apperr.New(apperr.KindNoOpName, "CATEGORY_NAME_UNCHANGED", "Category name is the same")

	ErrCategoryHasBooks = apperr.New(apperr.KindReferentialConflict, "CATEGORY_HAS_BOOKS", "Cannot delete category with linked books")
)
