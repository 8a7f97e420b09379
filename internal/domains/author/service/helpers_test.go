package service

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/testutil"
)

// addBook inserts a category and a book owned by authorID.
func addBook(t *testing.T, db *sql.DB, authorID uuid.UUID) {
	t.Helper()

	catID := uuid.NewString()
	_, err := db.ExecContext(t.Context(), `INSERT INTO categories (id, name) VALUES (?, ?)`, catID, "cat-"+catID)
	require.NoError(t, err)
	testutil.InsertBook(t, db, uuid.NewString(), "book-"+catID, authorID.String(), catID)
}
