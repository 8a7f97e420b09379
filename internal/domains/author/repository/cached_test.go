package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/testutil"
	"library-catalog/pkg/cache"
)

func TestCachedRepositoryServesAndEvicts(t *testing.T) {
	ctx := t.Context()
	db := testutil.NewSQLiteDB(t)
	mem := cache.NewMemory()
	repo := NewCachedRepository(NewSQLiteRepository(db), mem, time.Minute)

	a := &author.Author{ID: uuid.New(), Name: "Borges"}
	require.NoError(t, repo.Create(ctx, a))

	_, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, mem.Len())

	// A write behind the cache's back is not seen until eviction.
	_, err = db.ExecContext(ctx, `UPDATE authors SET name = 'Jorge Luis Borges' WHERE id = ?`, a.ID.String())
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Borges", got.Name)

	a.Name = "J. L. Borges"
	require.NoError(t, repo.Update(ctx, a))
	assert.Equal(t, 0, mem.Len())
	got, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "J. L. Borges", got.Name)

	require.NoError(t, repo.Delete(ctx, a.ID))
	_, err = repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestCachedRepositoryDoesNotCacheMisses(t *testing.T) {
	mem := cache.NewMemory()
	repo := NewCachedRepository(NewSQLiteRepository(testutil.NewSQLiteDB(t)), mem, time.Minute)

	_, err := repo.GetByID(t.Context(), uuid.New())
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	assert.Equal(t, 0, mem.Len())
}
