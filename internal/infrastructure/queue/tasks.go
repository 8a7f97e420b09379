package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TypeDeleteCover removes a cover blob that no book references anymore.
	TypeDeleteCover = "cover:delete"

	QueueMaintenance = "maintenance"
)

type DeleteCoverPayload struct {
	Key string `json:"key"`
}

func NewDeleteCoverTask(key string) (*asynq.Task, error) {
	payload, err := json.Marshal(DeleteCoverPayload{Key: key})
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", TypeDeleteCover, err)
	}
	return asynq.NewTask(TypeDeleteCover, payload,
		asynq.Queue(QueueMaintenance),
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	), nil
}

func ParseDeleteCoverPayload(task *asynq.Task) (DeleteCoverPayload, error) {
	var p DeleteCoverPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("unmarshal %s payload: %w", TypeDeleteCover, err)
	}
	if p.Key == "" {
		return p, fmt.Errorf("%s payload has empty key", TypeDeleteCover)
	}
	return p, nil
}
