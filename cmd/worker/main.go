// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/config"
	"library-catalog/pkg/container"
	"library-catalog/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load")
	}
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.Redis.Enabled {
		log.Fatal().Msg("[Worker] REDIS_ENABLED must be true, the worker consumes tasks from Redis")
	}

	blobs, err := container.OpenStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("[Storage] Failed to initialize")
	}

	handlers := newHandlerRegistry(blobs)
	srv := setupAsynqServer(cfg, handlers)

	if err := startServices(ctx, cfg, blobs); err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}

	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("[Worker] Failed to start")
	}

	<-ctx.Done()
	logger.Info("[Shutdown] Gracefully stopping", nil)
	srv.Shutdown()
	logger.Info("[Shutdown] Stopped", nil)
}
