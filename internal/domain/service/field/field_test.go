package field_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phone-input/internal/domain"
	"phone-input/internal/domain/service/field"
	"phone-input/internal/domain/service/phonefmt"
	"phone-input/internal/domain/value"
	"phone-input/internal/infrastructure/formstate"
)

type purgeSchedulerStub struct {
	mu    sync.Mutex
	calls int
}

func (p *purgeSchedulerStub) SchedulePurge(context.Context, time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return nil
}

func (p *purgeSchedulerStub) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestServiceUpdate(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := formstate.NewMemoryStore(time.Hour)
	purger := &purgeSchedulerStub{}
	svc := field.NewService(store, purger, time.Hour)

	sessionID := value.NewSessionID()
	fieldID := value.FieldID("contactPhone")

	// Первое событие создаёт поле.
	updated, err := svc.Update(ctx, sessionID, fieldID, "9991234567", phonefmt.InputKindTyped)
	rq.NoError(err)
	rq.Equal("+7(999)123-45-67", updated.Value.String())
	rq.Equal(1, purger.Calls())

	// Вставка без цифр не меняет сохранённое значение.
	updated, err = svc.Update(ctx, sessionID, fieldID, "no digits here", phonefmt.InputKindPasted)
	rq.NoError(err)
	rq.Equal("+7(999)123-45-67", updated.Value.String())

	stored, err := svc.Get(ctx, sessionID, fieldID)
	rq.NoError(err)
	rq.Equal("+7(999)123-45-67", stored.Value.String())

	// Очистка поля набором: пустой raw даёт пустое значение.
	updated, err = svc.Update(ctx, sessionID, fieldID, "", phonefmt.InputKindTyped)
	rq.NoError(err)
	rq.True(updated.Value.IsEmpty())
}

func TestServiceClear(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := formstate.NewMemoryStore(time.Hour)
	svc := field.NewService(store, nil, time.Hour)

	sessionID := value.NewSessionID()
	fieldID := value.FieldID("contactPhone")

	_, err := svc.Update(ctx, sessionID, fieldID, "+375291234567", phonefmt.InputKindTyped)
	rq.NoError(err)

	rq.NoError(svc.Clear(ctx, sessionID, fieldID))

	_, err = svc.Get(ctx, sessionID, fieldID)
	rq.ErrorIs(err, domain.ErrFieldNotFound)
}

func TestServiceUpdateSetsTimestamp(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	store := formstate.NewMemoryStore(time.Hour)
	svc := field.NewService(store, nil, time.Hour).WithClock(func() time.Time { return now })

	updated, err := svc.Update(ctx, value.NewSessionID(), "phone", "79991234567", phonefmt.InputKindTyped)
	rq.NoError(err)
	rq.Equal(now, updated.UpdatedAt)
}
