package repository

import (
	"fmt"
	"strings"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/shared/utils"
)

const bookColumns = `id, title, description, published_year, author_id, category_id, cover_image_url, created_at, updated_at`

// buildWhereClause turns filter into a WHERE clause. likeOp is ILIKE on
// Postgres and LIKE on SQLite. idArg converts ids to the driver's form.
func buildWhereClause(filter book.Filter, args *utils.ArgBuilder, likeOp string, idArg func(any) any) string {
	conditions := []string{}

	if filter.AuthorID != nil {
		conditions = append(conditions, "author_id = "+args.Add(idArg(*filter.AuthorID)))
	}

	if filter.CategoryID != nil {
		conditions = append(conditions, "category_id = "+args.Add(idArg(*filter.CategoryID)))
	}

	if filter.PublishedYear != nil {
		conditions = append(conditions, "published_year = "+args.Add(*filter.PublishedYear))
	}

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := utils.ContainsPattern(keyword)
		conditions = append(conditions, "("+utils.JoinWithOr([]string{
			fmt.Sprintf(`title %s %s ESCAPE '\'`, likeOp, args.Add(pattern)),
			fmt.Sprintf(`description %s %s ESCAPE '\'`, likeOp, args.Add(pattern)),
		})+")")
	}

	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + utils.JoinWithAnd(conditions)
}

func translateReadError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case database.IsNoRows(err):
		return book.ErrBookNotFound
	default:
		return apperr.Storage(fmt.Errorf("%s: %w", op, err))
	}
}

func translateWriteError(err error, op string) error {
	if err == nil {
		return nil
	}
	switch database.ClassifyConstraint(err) {
	case database.ConstraintUnique:
		return book.ErrDuplicateTitle.Wrap(err)
	case database.ConstraintForeignKey:
		return book.ErrReferenceMissing.Wrap(err)
	default:
		return apperr.Storage(fmt.Errorf("%s: %w", op, err))
	}
}
