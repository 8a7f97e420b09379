package job

import (
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/storage"
)

func TestDeleteCoverHandler(t *testing.T) {
	ctx := t.Context()
	store := storage.NewLocalStorageFs(afero.NewMemMapFs(), "/static")
	h := NewDeleteCoverHandler(store)

	_, err := store.Put(ctx, "cover_images/book_1.png", []byte("png"), "image/png")
	require.NoError(t, err)

	task, err := queue.NewDeleteCoverTask("cover_images/book_1.png")
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(ctx, task))

	exists, err := store.Exists("cover_images/book_1.png")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, h.ProcessTask(ctx, task), "already deleted is fine")
}

func TestDeleteCoverHandlerSkipsRetryOnBadPayload(t *testing.T) {
	h := NewDeleteCoverHandler(storage.NewLocalStorageFs(afero.NewMemMapFs(), "/static"))

	err := h.ProcessTask(t.Context(), asynq.NewTask(queue.TypeDeleteCover, []byte("not json")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))

	task, err := queue.NewDeleteCoverTask("cover_images/")
	require.NoError(t, err)
	err = h.ProcessTask(t.Context(), task)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
}
