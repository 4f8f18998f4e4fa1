package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

var _ ISelectionStore = (*RedisSelectionStore)(nil)

// RedisSelectionStore keeps each selection as a plain string key without
// expiry.
type RedisSelectionStore struct {
	client *redis.Client
}

func NewRedisSelectionStore(client *redis.Client) *RedisSelectionStore {
	return &RedisSelectionStore{client: client}
}

func (s *RedisSelectionStore) Get(ctx context.Context, sessionKey string) (string, bool, error) {
	cardID, err := s.client.Get(ctx, cellKey(sessionKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cardID, true, nil
}

func (s *RedisSelectionStore) Set(ctx context.Context, sessionKey, cardID string) error {
	return s.client.Set(ctx, cellKey(sessionKey), cardID, 0).Err()
}

func (s *RedisSelectionStore) Clear(ctx context.Context, sessionKey string) error {
	return s.client.Del(ctx, cellKey(sessionKey)).Err()
}
