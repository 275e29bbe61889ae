package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const blacklistKeyPrefix = "blacklist:"

// RedisBlacklistStore keeps revoked tokens in Redis with a TTL equal to
// the remaining token lifetime, so pruning is automatic. Preferred over
// the table-backed store for multi-instance deployments.
type RedisBlacklistStore struct {
	client *redis.Client
}

func NewRedisBlacklistStore(client *redis.Client) *RedisBlacklistStore {
	return &RedisBlacklistStore{client: client}
}

func (s *RedisBlacklistStore) Add(
	ctx context.Context,
	token string,
	expiresAt time.Time,
) error {

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	return s.client.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

func (s *RedisBlacklistStore) Contains(
	ctx context.Context,
	token string,
) (bool, error) {

	n, err := s.client.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ BlacklistStore = (*RedisBlacklistStore)(nil)
