package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-catalog/internal/infrastructure/queue"
	"library-catalog/internal/infrastructure/storage"
)

// DeleteCoverHandler removes cover blobs that no book references anymore.
type DeleteCoverHandler struct {
	storage storage.BlobStorage
}

func NewDeleteCoverHandler(s storage.BlobStorage) *DeleteCoverHandler {
	return &DeleteCoverHandler{storage: s}
}

func (h *DeleteCoverHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	payload, err := queue.ParseDeleteCoverPayload(t)
	if err != nil {
		// A malformed payload will never succeed.
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	log.Info().Str("key", payload.Key).Msg("Deleting cover blob")

	if err := h.storage.Delete(ctx, payload.Key); err != nil {
		if errors.Is(err, storage.ErrInvalidKey) {
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		log.Error().Err(err).Str("key", payload.Key).Msg("Cover blob deletion failed")
		return err
	}
	return nil
}
