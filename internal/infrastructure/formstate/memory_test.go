package formstate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phone-input/internal/domain"
	"phone-input/internal/domain/entity"
	"phone-input/internal/domain/value"
	"phone-input/internal/infrastructure/formstate"
)

func TestMemoryStore(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := formstate.NewMemoryStore(time.Hour)

	sessionID := value.NewSessionID()
	fieldID := value.FieldID("contactPhone")

	_, err := store.Get(ctx, sessionID, fieldID)
	rq.ErrorIs(err, domain.ErrFieldNotFound)

	saved := entity.FormField{
		SessionID: sessionID,
		FieldID:   fieldID,
		Value:     "+7(999)123-45-67",
		UpdatedAt: time.Now().UTC(),
	}

	rq.NoError(store.Put(ctx, saved))

	loaded, err := store.Get(ctx, sessionID, fieldID)
	rq.NoError(err)
	rq.Equal(saved, loaded)

	// Поля изолированы по сессиям.
	_, err = store.Get(ctx, value.NewSessionID(), fieldID)
	rq.ErrorIs(err, domain.ErrFieldNotFound)

	rq.NoError(store.Delete(ctx, sessionID, fieldID))

	_, err = store.Get(ctx, sessionID, fieldID)
	rq.ErrorIs(err, domain.ErrFieldNotFound)
}

func TestMemoryStoreTTL(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	store := formstate.NewMemoryStore(10 * time.Millisecond)

	sessionID := value.NewSessionID()

	rq.NoError(store.Put(ctx, entity.FormField{
		SessionID: sessionID,
		FieldID:   "phone",
		Value:     "+7",
		UpdatedAt: time.Now(),
	}))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, sessionID, "phone")
	rq.ErrorIs(err, domain.ErrFieldNotFound)
}
