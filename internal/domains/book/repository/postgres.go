package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/shared/utils"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (*book.Book, error) {
	var b book.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.PublishedYear,
		&b.AuthorID, &b.CategoryID, &b.CoverImageURL,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO books (`+bookColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.Title, b.Description, b.PublishedYear,
		b.AuthorID, b.CategoryID, b.CoverImageURL,
		b.CreatedAt, b.UpdatedAt,
	)
	return translateWriteError(err, "create book")
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id))
	return b, translateReadError(err, "get book")
}

func (r *postgresRepository) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE title = $1`, title))
	return b, translateReadError(err, "get book by title")
}

func (r *postgresRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	args := utils.NewPostgresArgs()
	where := buildWhereClause(filter, args, "ILIKE", func(v any) any { return v })

	query := fmt.Sprintf(`SELECT %s FROM books%s ORDER BY created_at ASC, id ASC LIMIT %s OFFSET %s`,
		bookColumns, where, args.Add(filter.Page.Limit), args.Add(filter.Page.Skip))

	rows, err := r.pool.Query(ctx, query, args.Args()...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list books: %w", err))
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, apperr.Storage(fmt.Errorf("scan book: %w", err))
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(fmt.Errorf("iterate books: %w", err))
	}
	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books
		 SET title = $2, description = $3, published_year = $4, author_id = $5,
		     category_id = $6, cover_image_url = $7, updated_at = $8
		 WHERE id = $1`,
		b.ID, b.Title, b.Description, b.PublishedYear,
		b.AuthorID, b.CategoryID, b.CoverImageURL, b.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "update book")
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return translateWriteError(err, "delete book")
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
