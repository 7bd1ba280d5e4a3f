package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"promohub/pkg/platform/sentinel"
)

// RedisStore is a Redis-backed draft store. It is the production
// implementation for deployments where wizard sessions may be resumed
// against any instance. Drafts expire with the configured TTL so
// abandoned registrations clean themselves up.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a Redis-backed draft store. The client
// lifecycle is managed by the caller.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, sessionID, stepKey string, data json.RawMessage) error {
	return s.client.Set(ctx, draftKey(sessionID, stepKey), []byte(data), s.ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, sessionID, stepKey string) (json.RawMessage, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID, stepKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string, stepKeys ...string) error {
	if len(stepKeys) == 0 {
		return nil
	}
	keys := make([]string, 0, len(stepKeys))
	for _, key := range stepKeys {
		keys = append(keys, draftKey(sessionID, key))
	}
	return s.client.Del(ctx, keys...).Err()
}
