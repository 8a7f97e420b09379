package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/category"
	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperr"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) category.Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategoryRow(row rowScanner) (*category.Category, error) {
	var c category.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *sqliteRepository) Create(ctx context.Context, c *category.Category) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, description) VALUES (?, ?, ?)`,
		c.ID.String(), c.Name, c.Description,
	)
	return translateWriteError(err, "create category")
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	cat, err := scanCategoryRow(r.db.QueryRowContext(ctx, selectCategory+` WHERE id = ?`, id.String()))
	return cat, translateReadError(err, "get category")
}

func (r *sqliteRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	cat, err := scanCategoryRow(r.db.QueryRowContext(ctx, selectCategory+` WHERE name = ?`, name))
	return cat, translateReadError(err, "get category by name")
}

func (r *sqliteRepository) List(ctx context.Context, page shared.Page) ([]category.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		selectCategory+` ORDER BY name ASC, id ASC LIMIT ? OFFSET ?`,
		page.Limit, page.Skip,
	)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list categories: %w", err))
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		cat, err := scanCategoryRow(rows)
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

func (r *sqliteRepository) Update(ctx context.Context, c *category.Category) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		c.Name, c.Description, c.ID.String(),
	)
	if err != nil {
		return translateWriteError(err, "update category")
	}
	return requireAffected(res)
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id.String())
	if err != nil {
		return translateWriteError(err, "delete category")
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}
