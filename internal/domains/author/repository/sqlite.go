package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperr"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) author.Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthorRow(row rowScanner) (*author.Author, error) {
	var a author.Author
	if err := row.Scan(&a.ID, &a.Name, &a.Bio); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *sqliteRepository) Create(ctx context.Context, a *author.Author) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (id, name, bio) VALUES (?, ?, ?)`,
		a.ID.String(), a.Name, a.Bio,
	)
	return translateWriteError(err, "create author")
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, err := scanAuthorRow(r.db.QueryRowContext(ctx, selectAuthor+` WHERE id = ?`, id.String()))
	return a, translateReadError(err, "get author")
}

func (r *sqliteRepository) GetByName(ctx context.Context, name string) (*author.Author, error) {
	a, err := scanAuthorRow(r.db.QueryRowContext(ctx, selectAuthor+` WHERE name = ?`, name))
	return a, translateReadError(err, "get author by name")
}

func (r *sqliteRepository) List(ctx context.Context, page shared.Page) ([]author.Author, error) {
	rows, err := r.db.QueryContext(ctx,
		selectAuthor+` ORDER BY name ASC, id ASC LIMIT ? OFFSET ?`,
		page.Limit, page.Skip,
	)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list authors: %w", err))
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		a, err := scanAuthorRow(rows)
		if err != nil {
			return nil, apperr.Storage(fmt.Errorf("scan author: %w", err))
		}
		authors = append(authors, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(fmt.Errorf("iterate authors: %w", err))
	}
	return authors, nil
}

func (r *sqliteRepository) Update(ctx context.Context, a *author.Author) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE authors SET name = ?, bio = ? WHERE id = ?`,
		a.Name, a.Bio, a.ID.String(),
	)
	if err != nil {
		return translateWriteError(err, "update author")
	}
	return requireAffected(res)
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id.String())
	if err != nil {
		return translateWriteError(err, "delete author")
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}
