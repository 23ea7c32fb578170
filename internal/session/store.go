package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-games-journal/internal/logger"
)

// RedisStore keeps live sessions in Redis under "session:<token id>",
// expiring together with their tokens.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}

// Save records tokenID for userID for ttl.
func (s *RedisStore) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	key := sessionKey(tokenID)
	err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), ttl).Err()
	logger.Log.Debugw("redis set", "key", key, "ttl", ttl, "error", err)
	return err
}

// Exists reports whether tokenID is still live.
func (s *RedisStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	key := sessionKey(tokenID)
	n, err := s.client.Exists(ctx, key).Result()
	logger.Log.Debugw("redis exists", "key", key, "result", n, "error", err)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete forgets tokenID. Deleting an unknown id is not an error.
func (s *RedisStore) Delete(ctx context.Context, tokenID string) error {
	key := sessionKey(tokenID)
	err := s.client.Del(ctx, key).Err()
	logger.Log.Debugw("redis del", "key", key, "error", err)
	return err
}
