package main

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/domains/book/job"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/storage"
)

// HandlerRegistry holds every task handler the worker serves.
type HandlerRegistry struct {
	DeleteCover *job.DeleteCoverHandler
}

func newHandlerRegistry(blobs storage.BlobStorage) *HandlerRegistry {
	return &HandlerRegistry{
		DeleteCover: job.NewDeleteCoverHandler(blobs),
	}
}

func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(queue.TypeDeleteCover, r.DeleteCover)
	log.Info().Str("type", queue.TypeDeleteCover).Msg("[Worker] Handler registered")
}
