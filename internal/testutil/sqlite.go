// Package testutil builds real, migrated stores for package tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"library-catalog/internal/infrastructure/database"
)

// NewSQLiteDB returns a migrated SQLite database private to t.
func NewSQLiteDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.OpenSQLite(t.Context(), filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := database.NewSQLiteMigrator(db)
	require.NoError(t, err)
	require.NoError(t, m.Up(t.Context()))

	return db
}

// InsertBook writes a book row directly, bypassing the services.
func InsertBook(t testing.TB, db *sql.DB, id, title, authorID, categoryID string) {
	t.Helper()

	_, err := db.ExecContext(t.Context(),
		`INSERT INTO books (id, title, published_year, author_id, category_id, created_at, updated_at)
		 VALUES (?, ?, 2000, ?, ?, 1, 1)`,
		id, title, authorID, categoryID,
	)
	require.NoError(t, err)
}
