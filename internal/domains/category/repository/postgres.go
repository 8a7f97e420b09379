package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

const selectCategory = `SELECT id, name, description FROM categories`

func scanCategory(row pgx.Row) (*category.Category, error) {
	var c category.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
		c.ID, c.Name, c.Description,
	)
	return translateWriteError(err, "create category")
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	cat, err := scanCategory(r.pool.QueryRow(ctx, selectCategory+` WHERE id = $1`, id))
	return cat, translateReadError(err, "get category")
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	cat, err := scanCategory(r.pool.QueryRow(ctx, selectCategory+` WHERE name = $1`, name))
	return cat, translateReadError(err, "get category by name")
}

func (r *postgresRepository) List(ctx context.Context, page shared.Page) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx,
		selectCategory+` ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2`,
		page.Limit, page.Skip,
	)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list categories: %w", err))
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, apperr.Storage(fmt.Errorf("scan category: %w", err))
		}
		categories = append(categories, *cat)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(fmt.Errorf("iterate categories: %w", err))
	}
	return categories, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		c.ID, c.Name, c.Description,
	)
	if err != nil {
		return translateWriteError(err, "update category")
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translateWriteError(err, "delete category")
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// translateReadError maps "no rows" to not-found and wraps the rest.
func translateReadError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case database.IsNoRows(err):
		return category.ErrCategoryNotFound
	default:
		return apperr.Storage(fmt.Errorf("%s: %w", op, err))
	}
}

// translateWriteError maps constraint violations to domain errors.
func translateWriteError(err error, op string) error {
	if err == nil {
		return nil
	}
	switch database.ClassifyConstraint(err) {
	case database.ConstraintUnique:
		return category.ErrDuplicateName.Wrap(err)
	case database.ConstraintForeignKey:
		return category.ErrCategoryHasBooks.Wrap(err)
	default:
		return apperr.Storage(fmt.Errorf("%s: %w", op, err))
	}
}
