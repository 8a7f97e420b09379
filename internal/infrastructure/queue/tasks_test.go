package queue

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCoverTask(t *testing.T) {
	task, err := NewDeleteCoverTask("cover_images/book_1.png")
	require.NoError(t, err)
	assert.Equal(t, TypeDeleteCover, task.Type())

	p, err := ParseDeleteCoverPayload(task)
	require.NoError(t, err)
	assert.Equal(t, "cover_images/book_1.png", p.Key)
}

func TestParseDeleteCoverPayloadRejectsBadInput(t *testing.T) {
	_, err := ParseDeleteCoverPayload(asynq.NewTask(TypeDeleteCover, []byte("{")))
	assert.Error(t, err)

	_, err = ParseDeleteCoverPayload(asynq.NewTask(TypeDeleteCover, []byte(`{"key":""}`)))
	assert.Error(t, err)
}

func TestNoopEnqueuer(t *testing.T) {
	var e Enqueuer = NoopEnqueuer{}
	assert.NoError(t, e.EnqueueDeleteCover(t.Context(), "x"))
}
