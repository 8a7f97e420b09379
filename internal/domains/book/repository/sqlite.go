package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/apperr"
	"library-catalog/internal/shared/utils"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository stores ids as text and timestamps as Unix microseconds.
func NewSQLiteRepository(db *sql.DB) book.Repository {
	return &sqliteRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookRow(row rowScanner) (*book.Book, error) {
	var (
		b                    book.Book
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.PublishedYear,
		&b.AuthorID, &b.CategoryID, &b.CoverImageURL,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = time.UnixMicro(createdAt).UTC()
	b.UpdatedAt = time.UnixMicro(updatedAt).UTC()
	return &b, nil
}

func idText(v any) any {
	if id, ok := v.(uuid.UUID); ok {
		return id.String()
	}
	return v
}

func (r *sqliteRepository) Create(ctx context.Context, b *book.Book) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO books (`+bookColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID.String(), b.Title, b.Description, b.PublishedYear,
		b.AuthorID.String(), b.CategoryID.String(), b.CoverImageURL,
		b.CreatedAt.UnixMicro(), b.UpdatedAt.UnixMicro(),
	)
	return translateWriteError(err, "create book")
}

func (r *sqliteRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, err := scanBookRow(r.db.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE id = ?`, id.String()))
	return b, translateReadError(err, "get book")
}

func (r *sqliteRepository) GetByTitle(ctx context.Context, title string) (*book.Book, error) {
	b, err := scanBookRow(r.db.QueryRowContext(ctx, `SELECT `+bookColumns+` FROM books WHERE title = ?`, title))
	return b, translateReadError(err, "get book by title")
}

// List matches keywords with LIKE, which SQLite folds for ASCII letters only.
func (r *sqliteRepository) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	args := utils.NewSQLiteArgs()
	where := buildWhereClause(filter, args, "LIKE", idText)

	query := fmt.Sprintf(`SELECT %s FROM books%s ORDER BY created_at ASC, id ASC LIMIT %s OFFSET %s`,
		bookColumns, where, args.Add(filter.Page.Limit), args.Add(filter.Page.Skip))

	rows, err := r.db.QueryContext(ctx, query, args.Args()...)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("list books: %w", err))
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		b, err := scanBookRow(rows)
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

func (r *sqliteRepository) Update(ctx context.Context, b *book.Book) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE books
		 SET title = ?, description = ?, published_year = ?, author_id = ?,
		     category_id = ?, cover_image_url = ?, updated_at = ?
		 WHERE id = ?`,
		b.Title, b.Description, b.PublishedYear, b.AuthorID.String(),
		b.CategoryID.String(), b.CoverImageURL, b.UpdatedAt.UnixMicro(),
		b.ID.String(),
	)
	if err != nil {
		return translateWriteError(err, "update book")
	}
	return requireAffected(res)
}

func (r *sqliteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id.String())
	if err != nil {
		return translateWriteError(err, "delete book")
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(fmt.Errorf("rows affected: %w", err))
	}
	if n == 0 {
		return book.ErrBookNotFound
	}
	return nil
}
