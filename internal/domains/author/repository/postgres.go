package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/shared"
	"library-catalog/internal/shared/apperr"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

const selectAuthor = `SELECT id, name, bio FROM authors`

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	if err := row.Scan(&a.ID, &a.Name, &a.Bio); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO authors (id, name, bio) VALUES ($1, $2, $3)`,
		a.ID, a.Name, a.Bio,
	)
	return translateWriteError(err, "create author")
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx, selectAuthor+` WHERE id = $1`, id))
	return a, translateReadError(err, "get author")
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*author.Author, error) {
	a, err := scanAuthor(r.pool.QueryRow(ctx, selectAuthor+` WHERE name = $1`, name))
	return a, translateReadError(err, "get author by name")
}

func (r *postgresRepository) List(ctx context.Context, page shared.Page) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx,
		selectAuthor+` ORDER BY name ASC, id ASC LIMIT $1 OFFSET $2`,
		page.Limit, page.Skip,
	)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list authors: %w", err))
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		a, err := scanAuthor(rows)
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

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE authors SET name = $2, bio = $3 WHERE id = $1`,
		a.ID, a.Name, a.Bio,
	)
	if err != nil {
		return translateWriteError(err, "update author")
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return translateWriteError(err, "delete author")
	}
	if tag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// translateReadError maps "no rows" to not-found and wraps the rest.
func translateReadError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case database.IsNoRows(err):
		return author.ErrAuthorNotFound
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
		return author.ErrDuplicateName.Wrap(err)
	case database.ConstraintForeignKey:
		return author.ErrAuthorHasBooks.Wrap(err)
	default:
		return apperr.Storage(fmt.Errorf("%s: %w", op, err))
	}
}
