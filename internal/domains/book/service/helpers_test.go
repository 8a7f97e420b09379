package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	authorrepo "library-catalog/internal/domains/author/repository"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/book/repository"
	"library-catalog/internal/domains/category"
	categoryrepo "library-catalog/internal/domains/category/repository"
	"library-catalog/internal/infrastructure/storage"
	"library-catalog/internal/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// recordingQueue remembers every key it was asked to delete.
type recordingQueue struct {
	mu   sync.Mutex
	keys []string
}

func (q *recordingQueue) EnqueueDeleteCover(_ context.Context, key string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = append(q.keys, key)
	return nil
}

func (q *recordingQueue) Keys() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]string(nil), q.keys...)
}

type env struct {
	deps     Deps
	fs       afero.Fs
	store    *storage.LocalStorage
	queue    *recordingQueue
	author   *author.Author
	category *category.Category
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := testutil.NewSQLiteDB(t)

	fsys := afero.NewMemMapFs()
	store := storage.NewLocalStorageFs(fsys, "/static")
	q := &recordingQueue{}

	e := &env{
		deps: Deps{
			Books:      repository.NewSQLiteRepository(db),
			Authors:    authorrepo.NewSQLiteRepository(db),
			Categories: categoryrepo.NewSQLiteRepository(db),
			Storage:    store,
			Queue:      q,
		},
		fs:       fsys,
		store:    store,
		queue:    q,
		author:   &author.Author{ID: uuid.New(), Name: "Frank Herbert"},
		category: &category.Category{ID: uuid.New(), Name: "Science Fiction"},
	}
	require.NoError(t, e.deps.Authors.Create(t.Context(), e.author))
	require.NoError(t, e.deps.Categories.Create(t.Context(), e.category))
	return e
}

func (e *env) createRequest(title string, year int) book.CreateBookRequest {
	return book.CreateBookRequest{
		Title:         title,
		PublishedYear: intPtr(year),
		AuthorID:      e.author.ID,
		CategoryID:    e.category.ID,
	}
}
