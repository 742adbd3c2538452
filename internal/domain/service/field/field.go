// Package field оркестрирует жизненный цикл значения телефонного поля:
// достать прежнее значение, прогнать ввод через чистое ядро phonefmt,
// сохранить результат. Сама логика нормализации целиком в phonefmt.
package field

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phone-input/internal/domain"
	"phone-input/internal/domain/entity"
	"phone-input/internal/domain/service/phonefmt"
	"phone-input/internal/domain/value"
)

type Store interface {
	Get(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) (entity.FormField, error)
	Put(ctx context.Context, field entity.FormField) error
	Delete(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) error
	PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PurgeScheduler откладывает чистку устаревших полей.
type PurgeScheduler interface {
	SchedulePurge(ctx context.Context, after time.Duration) error
}

type Service struct {
	store    Store
	purger   PurgeScheduler
	fieldTTL time.Duration
	now      func() time.Time
}

func NewService(store Store, purger PurgeScheduler, fieldTTL time.Duration) *Service {
	return &Service{
		store:    store,
		purger:   purger,
		fieldTTL: fieldTTL,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени; нужен тестам.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Update применяет событие ввода к полю и сохраняет новое каноническое
// значение. Отсутствующее поле эквивалентно пустому значению: первая же
// клавиша его создаёт.
func (s *Service) Update(
	ctx context.Context,
	sessionID value.SessionID,
	fieldID value.FieldID,
	raw string,
	kind phonefmt.InputKind,
) (entity.FormField, error) {
	previous := value.PhoneValue("")

	current, err := s.store.Get(ctx, sessionID, fieldID)

	switch {
	case err == nil:
		previous = current.Value
	case errors.Is(err, domain.ErrFieldNotFound):
	default:
		return entity.FormField{}, fmt.Errorf("store.Get: %w", err)
	}

	next := entity.FormField{
		SessionID: sessionID,
		FieldID:   fieldID,
		Value:     phonefmt.Next(raw, previous, kind),
		UpdatedAt: s.now(),
	}

	if err := s.store.Put(ctx, next); err != nil {
		return entity.FormField{}, fmt.Errorf("store.Put: %w", err)
	}

	if s.purger != nil {
		if err := s.purger.SchedulePurge(ctx, s.fieldTTL); err != nil {
			// Поле сохранено, отложенная чистка не критична.
			logger(ctx).Error("purger.SchedulePurge", "error", err)
		}
	}

	return next, nil
}

func (s *Service) Get(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) (entity.FormField, error) {
	current, err := s.store.Get(ctx, sessionID, fieldID)
	if err != nil {
		return entity.FormField{}, fmt.Errorf("store.Get: %w", err)
	}

	return current, nil
}

func (s *Service) Clear(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) error {
	if err := s.store.Delete(ctx, sessionID, fieldID); err != nil {
		return fmt.Errorf("store.Delete: %w", err)
	}

	return nil
}

// PurgeStale убирает поля, не обновлявшиеся дольше TTL.
func (s *Service) PurgeStale(ctx context.Context) (int64, error) {
	purged, err := s.store.PurgeBefore(ctx, s.now().Add(-s.fieldTTL))
	if err != nil {
		return 0, fmt.Errorf("store.PurgeBefore: %w", err)
	}

	return purged, nil
}
