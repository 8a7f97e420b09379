package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/queue"
	"library-catalog/pkg/container"
)

// asynqServer pairs the server with the mux it serves.
type asynqServer struct {
	*asynq.Server
	mux *asynq.ServeMux
}

func setupAsynqServer(cfg *config.Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		container.RedisOpt(cfg.Redis),
		asynq.Config{
			Queues: map[string]int{
				queue.QueueMaintenance: 1,
			},
			Concurrency: cfg.Worker.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("[Asynq] Task failed")
			}),
		},
	)

	return &asynqServer{Server: srv, mux: mux}
}

// Start begins processing in the background.
func (s *asynqServer) Start() error {
	log.Info().Msg("[Worker] Starting")
	return s.Server.Start(s.mux)
}
