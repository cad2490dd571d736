package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"baco/internal/domain/entities"
	"baco/internal/ports/output"
)

var _ output.NotificationStore = (*RedisStore)(nil)

// RedisStore keeps each recipient's queue under baco:notifications:<userId>.
// No TTL: entries live until the recipient dismisses them.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func queueKey(userID uint) string {
	return fmt.Sprintf("baco:notifications:%d", userID)
}

func (s *RedisStore) Load(ctx context.Context, userID uint) ([]entities.Notification, error) {
	data, err := s.client.Get(ctx, queueKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load notification queue: %w", err)
	}
	var list []entities.Notification
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("corrupt notification queue for user %d: %w", userID, err)
	}
	return list, nil
}

func (s *RedisStore) Save(ctx context.Context, userID uint, list []entities.Notification) error {
	if list == nil {
		list = []entities.Notification{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode notification queue: %w", err)
	}
	if err := s.client.Set(ctx, queueKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("save notification queue: %w", err)
	}
	return nil
}
