package database

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteMigrateAndConstraints(t *testing.T) {
	ctx := t.Context()

	db, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "nested", "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m, err := NewSQLiteMigrator(db)
	require.NoError(t, err)
	require.NoError(t, m.Up(ctx))

	status, err := m.Status(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, status)
	for _, s := range status {
		assert.True(t, s.Applied, "migration %d not applied", s.Version)
	}

	_, err = db.ExecContext(ctx, `INSERT INTO authors (id, name) VALUES ('a1', 'Ursula')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO authors (id, name) VALUES ('a2', 'Ursula')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))

	_, err = db.ExecContext(ctx, `INSERT INTO books (id, title, published_year, author_id, category_id, created_at, updated_at)
		VALUES ('b1', 'Earthsea', 1968, 'a1', 'missing', 1, 1)`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	_, err = db.ExecContext(ctx, `INSERT INTO categories (id, name) VALUES ('c1', 'Fantasy')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO books (id, title, published_year, author_id, category_id, created_at, updated_at)
		VALUES ('b1', 'Earthsea', 1968, 'a1', 'c1', 1, 1)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `DELETE FROM authors WHERE id = 'a1'`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))

	require.NoError(t, m.Down(ctx))
	_, err = db.ExecContext(ctx, `SELECT 1 FROM books`)
	assert.Error(t, err)
}

func TestClassifyConstraintPostgres(t *testing.T) {
	assert.Equal(t, ConstraintUnique, ClassifyConstraint(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, ConstraintForeignKey, ClassifyConstraint(&pgconn.PgError{Code: "23503"}))
	assert.Equal(t, ConstraintNone, ClassifyConstraint(&pgconn.PgError{Code: "42P01"}))
	assert.Equal(t, ConstraintNone, ClassifyConstraint(errors.New("other")))
	assert.Equal(t, ConstraintNone, ClassifyConstraint(nil))
}
