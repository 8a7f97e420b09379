package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// Enqueuer schedules background work on behalf of the services.
type Enqueuer interface {
	EnqueueDeleteCover(ctx context.Context, key string) error
}

// AsynqEnqueuer publishes tasks to Redis for cmd/worker.
type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer(opt asynq.RedisClientOpt) *AsynqEnqueuer {
	return &AsynqEnqueuer{client: asynq.NewClient(opt)}
}

func (e *AsynqEnqueuer) EnqueueDeleteCover(ctx context.Context, key string) error {
	task, err := NewDeleteCoverTask(key)
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeDeleteCover, err)
	}

	log.Debug().Str("task_id", info.ID).Str("key", key).Msg("Cover cleanup enqueued")
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

// NoopEnqueuer drops every task. Used when Redis is disabled.
type NoopEnqueuer struct{}

func (NoopEnqueuer) EnqueueDeleteCover(_ context.Context, key string) error {
	log.Debug().Str("key", key).Msg("Queue disabled, cover blob left in place")
	return nil
}
