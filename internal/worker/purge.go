// Package worker содержит фоновую чистку устаревших полей формы.
// Память и Redis чистятся по TTL сами, задача нужна постгресовому хранилищу.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"phone-input/internal/domain/service/field"
	"phone-input/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const TaskTypePurge = "formstate:purge"

// PurgeScheduler кладёт отложенную задачу чистки в очередь asynq.
// Задача уникальная: пока одна висит в очереди, вторая не ставится.
type PurgeScheduler struct {
	client *asynq.Client
}

func NewPurgeScheduler(client *asynq.Client) PurgeScheduler {
	return PurgeScheduler{client: client}
}

func (p PurgeScheduler) SchedulePurge(ctx context.Context, after time.Duration) error {
	task := asynq.NewTask(TaskTypePurge, nil)

	_, err := p.client.EnqueueContext(ctx, task,
		asynq.ProcessIn(after),
		asynq.Unique(after),
	)
	if err != nil && !errors.Is(err, asynq.ErrDuplicateTask) {
		return fmt.Errorf("asynq.Enqueue: %w", err)
	}

	return nil
}

// PurgeHandler обрабатывает задачу чистки.
type PurgeHandler struct {
	fields *field.Service
}

func NewPurgeHandler(fields *field.Service) PurgeHandler {
	return PurgeHandler{fields: fields}
}

func (h PurgeHandler) Handle(ctx context.Context, _ *asynq.Task) error {
	purged, err := h.fields.PurgeStale(ctx)
	if err != nil {
		return fmt.Errorf("fields.PurgeStale: %w", err)
	}

	logger(ctx).Info("stale form fields purged", slog.Int64("count", purged))

	return nil
}
