package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "otp:"

// RedisStore keeps codes in Redis so they survive restarts and are shared
// when more than one process fronts the same store. GETDEL gives the same
// atomic take semantics as the in-memory store; TTL handles expiry.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (rs *RedisStore) Put(ctx context.Context, identity, code string, ttl time.Duration) error {
	return rs.client.Set(ctx, redisKeyPrefix+identity, code, ttl).Err()
}

func (rs *RedisStore) Take(ctx context.Context, identity string) (string, bool, error) {
	code, err := rs.client.GetDel(ctx, redisKeyPrefix+identity).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

func (rs *RedisStore) Delete(ctx context.Context, identity string) error {
	return rs.client.Del(ctx, redisKeyPrefix+identity).Err()
}
