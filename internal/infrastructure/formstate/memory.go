package formstate

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"phone-input/internal/domain"
	"phone-input/internal/domain/entity"
	"phone-input/internal/domain/value"
)

const memoryCleanupInterval = time.Minute

// MemoryStore хранилище по умолчанию: значения живут в процессе,
// просроченные записи выметает go-cache.
type MemoryStore struct {
	values *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		values: cache.New(ttl, memoryCleanupInterval),
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID value.SessionID, fieldID value.FieldID) (entity.FormField, error) {
	v, ok := s.values.Get(storeKey(sessionID, fieldID))
	if !ok {
		return entity.FormField{}, domain.ErrFieldNotFound
	}

	return v.(entity.FormField), nil
}

func (s *MemoryStore) Put(_ context.Context, field entity.FormField) error {
	s.values.SetDefault(storeKey(field.SessionID, field.FieldID), field)

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID value.SessionID, fieldID value.FieldID) error {
	s.values.Delete(storeKey(sessionID, fieldID))

	return nil
}

// PurgeBefore для in-memory хранилища не нужен: TTL делает то же самое.
func (s *MemoryStore) PurgeBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}
