package formstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"phone-input/internal/domain"
	"phone-input/internal/domain/entity"
	"phone-input/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const redisKeyPrefix = "formstate:"

// RedisStore разделяемое между инстансами хранилище, срок жизни записи
// обеспечивается TTL ключа.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

type redisField struct {
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *RedisStore) Get(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) (entity.FormField, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+storeKey(sessionID, fieldID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.FormField{}, domain.ErrFieldNotFound
	}
	if err != nil {
		return entity.FormField{}, fmt.Errorf("redis.Get: %w", err)
	}

	var stored redisField

	if err := json.Unmarshal(raw, &stored); err != nil {
		return entity.FormField{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return entity.FormField{
		SessionID: sessionID,
		FieldID:   fieldID,
		Value:     value.PhoneValue(stored.Value),
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

func (s *RedisStore) Put(ctx context.Context, field entity.FormField) error {
	raw, err := json.Marshal(redisField{
		Value:     field.Value.String(),
		UpdatedAt: field.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	key := redisKeyPrefix + storeKey(field.SessionID, field.FieldID)

	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID value.SessionID, fieldID value.FieldID) error {
	if err := s.client.Del(ctx, redisKeyPrefix+storeKey(sessionID, fieldID)).Err(); err != nil {
		return fmt.Errorf("redis.Del: %w", err)
	}

	return nil
}

// PurgeBefore не нужен: Redis чистит ключи по TTL сам.
func (s *RedisStore) PurgeBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}
